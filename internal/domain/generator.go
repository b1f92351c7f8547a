package domain

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/mouse-blink/selfprint/internal/adapter"
	m "github.com/mouse-blink/selfprint/internal/model"
	"github.com/mouse-blink/selfprint/internal/rawio"
)

var (
	// ErrTableNotFound is returned when a source lacks the code or rest table.
	ErrTableNotFound = errors.New("fragment table not found")
	// ErrTableLayout is returned when the tables are not laid out the way the
	// driver prints them.
	ErrTableLayout = errors.New("unexpected fragment table layout")
)

// Generator derives a quine's fragment tables from the text around them.
type Generator interface {
	// Split parses src and separates it into head, tail and the current tables.
	Split(src m.Source) (m.Quine, error)
	// Generate returns src with both tables rebuilt from head and tail.
	Generate(src m.Source) ([]byte, error)
}

type generator struct {
	goAdapter adapter.GoFileAdapter
}

// NewGenerator creates a Generator that parses sources with goAdapter.
func NewGenerator(goAdapter adapter.GoFileAdapter) Generator {
	return &generator{goAdapter: goAdapter}
}

func (g *generator) Split(src m.Source) (m.Quine, error) {
	fset := token.NewFileSet()

	file, err := g.goAdapter.Parse(fset, string(src.Path), src.Content)
	if err != nil {
		return m.Quine{}, fmt.Errorf("parse %s: %w", src.Path, err)
	}

	code, err := g.table(fset, file, m.TableCode)
	if err != nil {
		return m.Quine{}, err
	}

	rest, err := g.table(fset, file, m.TableRest)
	if err != nil {
		return m.Quine{}, err
	}

	lines := SplitLines(src.Content)
	if err := checkLayout(lines, code, rest); err != nil {
		return m.Quine{}, fmt.Errorf("%s: %w", src.Path, err)
	}

	return m.Quine{
		Source: src,
		Head:   toFragments(lines[:code.StartLine]),
		Tail:   toFragments(lines[rest.EndLine:]),
		Code:   code,
		Rest:   rest,
	}, nil
}

func (g *generator) Generate(src m.Source) ([]byte, error) {
	q, err := g.Split(src)
	if err != nil {
		return nil, err
	}

	return Render(q.Head, q.Tail)
}

func (g *generator) table(fset *token.FileSet, file *ast.File, name m.TableName) (m.Table, error) {
	st, err := g.goAdapter.StringTable(fset, file, string(name))
	if err != nil {
		if errors.Is(err, adapter.ErrNoStringTable) {
			return m.Table{}, fmt.Errorf("%s: %w", name, ErrTableNotFound)
		}

		return m.Table{}, err
	}

	table := m.Table{
		Name:      name,
		StartLine: st.Lbrace.Line,
		EndLine:   st.Rbrace.Line,
	}

	for _, v := range st.Values {
		if v == "" {
			table.Terminated = true

			break
		}

		table.Fragments = append(table.Fragments, m.Fragment(v))
	}

	return table, nil
}

// Render prints the quine for head and tail into memory. The result is what
// the generated program writes to standard output.
func Render(head, tail []m.Fragment) ([]byte, error) {
	var buf bytes.Buffer

	out := rawio.NewWriter(&buf)
	if err := Reproduce(out, withSentinel(head), withSentinel(tail)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// SplitLines cuts content after every newline. A final line without a
// newline is kept; no empty trailing element is produced.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// checkLayout makes sure the lines around the tables are the ones Reproduce
// prints itself: the code table opens at the end of its line, the bridge
// joins the tables and the rest table closes on a line of its own.
func checkLayout(lines []string, code, rest m.Table) error {
	if code.StartLine < 1 || rest.EndLine > len(lines) || code.EndLine >= rest.StartLine {
		return fmt.Errorf("%w: code table must precede rest table", ErrTableLayout)
	}

	if !strings.HasSuffix(lines[code.StartLine-1], "{\n") {
		return fmt.Errorf("%w: line %d: code table must open at the end of its line", ErrTableLayout, code.StartLine)
	}

	bridge := strings.Join(lines[code.EndLine-1:rest.StartLine], "")
	if want := strings.TrimPrefix(Bridge, "\"\",\n"); bridge != want {
		return fmt.Errorf("%w: lines %d-%d must read %q, got %q",
			ErrTableLayout, code.EndLine, rest.StartLine, want, bridge)
	}

	if lines[rest.EndLine-1] != strings.TrimPrefix(Closer, "\"\",\n") {
		return fmt.Errorf("%w: line %d: rest table must close on its own line", ErrTableLayout, rest.EndLine)
	}

	return nil
}

func toFragments(lines []string) []m.Fragment {
	out := make([]m.Fragment, 0, len(lines))
	for _, l := range lines {
		out = append(out, m.Fragment(l))
	}

	return out
}
