package domain

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mouse-blink/selfprint/internal/adapter"
	m "github.com/mouse-blink/selfprint/internal/model"
	"github.com/mouse-blink/selfprint/internal/rawio"
)

// Verifier checks that a quine source is a fixed point of its own execution.
type Verifier interface {
	// Static replays the driver over the tables stored in src.
	Static(src m.Source) m.Verdict
	// Exec runs the package containing src and compares its standard output.
	Exec(ctx context.Context, src m.Source) m.Verdict
}

type verifier struct {
	fsAdapter adapter.SourceFSAdapter
	runner    adapter.RunnerAdapter
	generator Generator
}

// NewVerifier constructs a Verifier.
func NewVerifier(fsAdapter adapter.SourceFSAdapter, runner adapter.RunnerAdapter, generator Generator) Verifier {
	return &verifier{
		fsAdapter: fsAdapter,
		runner:    runner,
		generator: generator,
	}
}

func (v *verifier) Static(src m.Source) m.Verdict {
	verdict := newVerdict(src, m.VerifyStatic)

	q, err := v.generator.Split(src)
	if err != nil {
		verdict.Err = err

		return verdict
	}

	code := q.Code.Strings()
	rest := q.Rest.Strings()

	if q.Code.Terminated {
		code = append(code, "")
	}

	if q.Rest.Terminated {
		rest = append(rest, "")
	}

	var buf bytes.Buffer
	if err := Reproduce(rawio.NewWriter(&buf), code, rest); err != nil {
		verdict.Err = err

		return verdict
	}

	return compare(verdict, src.Content, buf.Bytes())
}

func (v *verifier) Exec(ctx context.Context, src m.Source) m.Verdict {
	verdict := newVerdict(src, m.VerifyExec)

	root, err := v.fsAdapter.FindProjectRoot(src.Path)
	if err != nil {
		verdict.Err = err

		return verdict
	}

	rel, err := v.fsAdapter.RelPath(root, m.Path(filepath.Dir(string(src.Path))))
	if err != nil {
		verdict.Err = err

		return verdict
	}

	pkg := packagePath(string(rel))

	result, err := v.runner.RunGo(ctx, string(root), pkg)
	if err != nil {
		verdict.Err = err

		return verdict
	}

	verdict.ExitCode = result.ExitCode
	if result.ExitCode != 0 && len(result.Stderr) > 0 {
		verdict.Err = fmt.Errorf("%s exited with %d: %s", pkg, result.ExitCode, bytes.TrimSpace(result.Stderr))
	}

	return compare(verdict, src.Content, result.Stdout)
}

// packagePath turns a directory relative to the module root into a go run
// package argument.
func packagePath(dir string) string {
	dir = filepath.ToSlash(dir)
	if dir == "." || dir == "" {
		return "."
	}

	return "./" + dir
}

func newVerdict(src m.Source, mode m.VerifyMode) m.Verdict {
	return m.Verdict{
		Path:        src.Path,
		Hash:        src.Hash,
		Mode:        mode,
		SourceBytes: len(src.Content),
	}
}

func compare(verdict m.Verdict, source, output []byte) m.Verdict {
	verdict.OutputBytes = len(output)
	verdict.Match = bytes.Equal(source, output)

	if verdict.Match {
		return verdict
	}

	a := SplitLines(source)
	b := SplitLines(output)
	verdict.FirstDiffLine = firstDiffLine(a, b)

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: string(verdict.Path),
		ToFile:   "output",
		Context:  3,
	})
	if err == nil {
		verdict.Diff = diff
	}

	return verdict
}

func firstDiffLine(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return i + 1
		}
	}

	if len(a) == len(b) {
		return 0
	}

	return min(len(a), len(b)) + 1
}
