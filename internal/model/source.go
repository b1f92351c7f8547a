// Package model defines the data structures shared by the selfprint tools.
package model

// Path represents a file system path.
type Path string

// Fragment is one physical source line, newline included.
type Fragment string

// TableName identifies one of the two fragment tables of a quine source.
type TableName string

const (
	// TableCode holds the lines before and including the opening of the
	// code table declaration.
	TableCode TableName = "code"

	// TableRest holds every line after the closing brace of the rest table.
	TableRest TableName = "rest"
)

// Table is a fragment table as it appears in a quine source file.
type Table struct {
	Name      TableName
	Fragments []Fragment
	// Terminated is false when the table has no sentinel element.
	Terminated bool
	// StartLine and EndLine are the 1-based lines of the declaration's
	// opening and closing brace.
	StartLine int
	EndLine   int
}

// Strings returns the fragments as plain strings, sentinel excluded.
func (t Table) Strings() []string {
	out := make([]string, 0, len(t.Fragments))
	for _, f := range t.Fragments {
		out = append(out, string(f))
	}

	return out
}

// Source is a quine source file read from disk.
type Source struct {
	Path    Path
	Content []byte
	Hash    string
}

// Quine is a source file split around its fragment tables.
type Quine struct {
	Source Source
	// Head holds the lines the code table must reproduce verbatim.
	Head []Fragment
	// Tail holds the lines the rest table must reproduce verbatim.
	Tail []Fragment
	// Code and Rest are the tables as currently written in the file.
	Code Table
	Rest Table
}

// Stale reports whether the stored tables differ from the surrounding text.
func (q Quine) Stale() bool {
	return !equalFragments(q.Head, q.Code.Fragments) || !equalFragments(q.Tail, q.Rest.Fragments)
}

func equalFragments(a, b []Fragment) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
