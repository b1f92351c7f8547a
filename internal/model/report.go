package model

// VerifyMode selects how a quine source is checked.
type VerifyMode string

const (
	// VerifyStatic renders the tables in memory.
	VerifyStatic VerifyMode = "static"
	// VerifyExec runs the program and captures its standard output.
	VerifyExec VerifyMode = "exec"
)

// Verdict is the outcome of checking one quine source against its output.
type Verdict struct {
	Path Path
	Hash string
	Mode VerifyMode
	// Match is true when the output equals the source byte for byte.
	Match    bool
	ExitCode int
	// FirstDiffLine is the 1-based line of the first difference, 0 on match.
	FirstDiffLine int
	Diff          string
	SourceBytes   int
	OutputBytes   int
	Err           error
}

// OK reports whether the verdict is a clean fixed point.
func (v Verdict) OK() bool {
	return v.Err == nil && v.Match && v.ExitCode == 0
}
