package domain_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/selfprint/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/selfprint/internal/controller/mocks"
	"github.com/mouse-blink/selfprint/internal/domain"
	domainmocks "github.com/mouse-blink/selfprint/internal/domain/mocks"
	"github.com/mouse-blink/selfprint/internal/logging"
	m "github.com/mouse-blink/selfprint/internal/model"
)

type workflowMocks struct {
	fs        *adaptermocks.MockSourceFSAdapter
	reports   *adaptermocks.MockReportStore
	ui        *controllermocks.MockUI
	generator *domainmocks.MockGenerator
	verifier  *domainmocks.MockVerifier
	orch      *domainmocks.MockOrchestrator
}

func quietContext() context.Context {
	return logging.WithLogger(context.Background(), logging.Discard())
}

func newWorkflowMocks(t *testing.T) (*workflowMocks, domain.Workflow) {
	t.Helper()

	mocks := &workflowMocks{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		reports:   adaptermocks.NewMockReportStore(t),
		ui:        controllermocks.NewMockUI(t),
		generator: domainmocks.NewMockGenerator(t),
		verifier:  domainmocks.NewMockVerifier(t),
		orch:      domainmocks.NewMockOrchestrator(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.reports, mocks.ui, mocks.generator, mocks.verifier, mocks.orch)

	return mocks, wf
}

// expectSources makes paths resolve to one quine source each.
func (w *workflowMocks) expectSources(roots []m.Path, sources ...m.Source) {
	paths := make([]m.Path, 0, len(sources))
	for _, src := range sources {
		paths = append(paths, src.Path)
	}

	w.fs.EXPECT().Get(roots).Return(paths, nil)

	for _, src := range sources {
		w.fs.EXPECT().ReadSource(src.Path).Return(src, nil)
		w.generator.EXPECT().Split(src).Return(m.Quine{Source: src}, nil)
	}
}

func quineSource(path string, content string) m.Source {
	return m.Source{Path: m.Path(path), Content: []byte(content), Hash: "hash-" + path}
}

func TestWorkflow_VerifyAllMatch(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	a := quineSource("a/main.go", "a")
	b := quineSource("b/main.go", "b")
	mocks.expectSources([]m.Path{"./..."}, a, b)

	mocks.verifier.EXPECT().Static(mock.Anything).RunAndReturn(func(src m.Source) m.Verdict {
		return m.Verdict{Path: src.Path, Mode: m.VerifyStatic, Match: true}
	}).Times(2)
	mocks.ui.EXPECT().DisplayVerdict(mock.Anything).Return().Times(2)
	mocks.ui.EXPECT().DisplaySummary(mock.MatchedBy(func(vs []m.Verdict) bool {
		return len(vs) == 2 && vs[0].Path == a.Path && vs[1].Path == b.Path
	})).Return(nil)

	err := wf.Verify(quietContext(), domain.VerifyArgs{Paths: []m.Path{"./..."}, Threads: 4})
	require.NoError(t, err)
}

func TestWorkflow_VerifyDefaultSource(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource(string(m.DefaultSource), "q")
	mocks.expectSources([]m.Path{m.DefaultSource}, src)

	mocks.verifier.EXPECT().Static(src).Return(m.Verdict{Path: src.Path, Match: true})
	mocks.ui.EXPECT().DisplayVerdict(mock.Anything).Return()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything).Return(nil)

	require.NoError(t, wf.Verify(quietContext(), domain.VerifyArgs{}))
}

func TestWorkflow_VerifyExecMismatchSavesReports(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "q")
	mocks.expectSources([]m.Path{"q/main.go"}, src)

	mocks.verifier.EXPECT().Static(src).Return(m.Verdict{Path: src.Path, Mode: m.VerifyStatic, Match: true})
	mocks.verifier.EXPECT().Exec(mock.Anything, src).Return(m.Verdict{Path: src.Path, Mode: m.VerifyExec, FirstDiffLine: 3})
	mocks.ui.EXPECT().DisplayVerdict(mock.Anything).Return().Times(2)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything).Return(nil)
	mocks.reports.EXPECT().SaveVerdicts(m.Path("reports"), mock.MatchedBy(func(vs []m.Verdict) bool {
		return len(vs) == 2 && vs[0].Mode == m.VerifyStatic && vs[1].Mode == m.VerifyExec
	})).Return(nil)
	mocks.reports.EXPECT().RegenerateIndex(m.Path("reports")).Return(nil)

	err := wf.Verify(quietContext(), domain.VerifyArgs{
		Paths:   []m.Path{"q/main.go"},
		Exec:    true,
		Threads: 2,
		Reports: "reports",
	})
	require.ErrorIs(t, err, domain.ErrMismatch)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestWorkflow_VerifyReportFailure(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "q")
	mocks.expectSources([]m.Path{"q/main.go"}, src)
	boom := errors.New("read-only")

	mocks.verifier.EXPECT().Static(src).Return(m.Verdict{Path: src.Path, Match: true})
	mocks.ui.EXPECT().DisplayVerdict(mock.Anything).Return()
	mocks.reports.EXPECT().SaveVerdicts(m.Path("out"), mock.Anything).Return(boom)

	err := wf.Verify(quietContext(), domain.VerifyArgs{Paths: []m.Path{"q/main.go"}, Reports: "out"})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_VerifyRespectsParallelLimit(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	var sources []m.Source
	for i := range 6 {
		sources = append(sources, quineSource(fmt.Sprintf("q%d/main.go", i), "q"))
	}

	mocks.expectSources([]m.Path{"./..."}, sources...)

	var running, peak atomic.Int32

	mocks.verifier.EXPECT().Static(mock.Anything).RunAndReturn(func(src m.Source) m.Verdict {
		n := running.Add(1)
		defer running.Add(-1)

		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}

		return m.Verdict{Path: src.Path, Match: true}
	}).Times(len(sources))
	mocks.ui.EXPECT().DisplayVerdict(mock.Anything).Return().Times(len(sources))
	mocks.ui.EXPECT().DisplaySummary(mock.Anything).Return(nil)

	require.NoError(t, wf.Verify(quietContext(), domain.VerifyArgs{Paths: []m.Path{"./..."}, Threads: 2}))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestWorkflow_NoQuines(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	plain := quineSource("plain.go", "package main\n")

	mocks.fs.EXPECT().Get([]m.Path{"./..."}).Return([]m.Path{plain.Path}, nil)
	mocks.fs.EXPECT().ReadSource(plain.Path).Return(plain, nil)
	mocks.generator.EXPECT().Split(plain).Return(m.Quine{}, fmt.Errorf("code: %w", domain.ErrTableNotFound))

	err := wf.Verify(quietContext(), domain.VerifyArgs{Paths: []m.Path{"./..."}})
	assert.ErrorIs(t, err, domain.ErrNoQuines)
}

func TestWorkflow_GenerateWritesChangedSource(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "old")
	mocks.expectSources([]m.Path{"q/main.go"}, src)

	mocks.generator.EXPECT().Generate(src).Return([]byte("new"), nil)
	mocks.fs.EXPECT().WriteFile(src.Path, []byte("new")).Return(nil)
	mocks.ui.EXPECT().DisplayGenerated(src.Path, true).Return()

	require.NoError(t, wf.Generate(quietContext(), domain.GenerateArgs{Paths: []m.Path{"q/main.go"}}))
}

func TestWorkflow_GenerateUnchanged(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "same")
	mocks.expectSources([]m.Path{"q/main.go"}, src)

	mocks.generator.EXPECT().Generate(src).Return([]byte("same"), nil)
	mocks.ui.EXPECT().DisplayGenerated(src.Path, false).Return()

	require.NoError(t, wf.Generate(quietContext(), domain.GenerateArgs{Paths: []m.Path{"q/main.go"}}))
	mocks.fs.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything)
}

func TestWorkflow_GenerateCheckReportsStale(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	fresh := quineSource("a/main.go", "a")
	stale := quineSource("b/main.go", "b")
	mocks.expectSources([]m.Path{"./..."}, fresh, stale)

	mocks.generator.EXPECT().Generate(fresh).Return([]byte("a"), nil)
	mocks.generator.EXPECT().Generate(stale).Return([]byte("b2"), nil)
	mocks.ui.EXPECT().DisplayGenerated(fresh.Path, false).Return()
	mocks.ui.EXPECT().DisplayGenerated(stale.Path, true).Return()

	err := wf.Generate(quietContext(), domain.GenerateArgs{Paths: []m.Path{"./..."}, Check: true})
	require.ErrorIs(t, err, domain.ErrStale)
	mocks.fs.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything)
}

func TestWorkflow_GenerateStdout(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "old")
	mocks.expectSources([]m.Path{"q/main.go"}, src)

	mocks.generator.EXPECT().Generate(src).Return([]byte("new"), nil)
	mocks.ui.EXPECT().DisplaySource([]byte("new")).Return(nil)

	require.NoError(t, wf.Generate(quietContext(), domain.GenerateArgs{Paths: []m.Path{"q/main.go"}, Stdout: true}))
	mocks.fs.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything)
}

func TestWorkflow_GenerateExecProvesCandidate(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "old")
	mocks.expectSources([]m.Path{"q/main.go"}, src)

	mocks.generator.EXPECT().Generate(src).Return([]byte("new"), nil)
	mocks.orch.EXPECT().CheckCandidate(mock.Anything, src, []byte("new")).
		Return(m.Verdict{Path: src.Path, Mode: m.VerifyExec, Match: true})
	mocks.fs.EXPECT().WriteFile(src.Path, []byte("new")).Return(nil)
	mocks.ui.EXPECT().DisplayGenerated(src.Path, true).Return()

	require.NoError(t, wf.Generate(quietContext(), domain.GenerateArgs{Paths: []m.Path{"q/main.go"}, Exec: true}))
}

func TestWorkflow_GenerateExecRejectsCandidate(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "old")
	mocks.expectSources([]m.Path{"q/main.go"}, src)
	failed := m.Verdict{Path: src.Path, Mode: m.VerifyExec, ExitCode: 2}

	mocks.generator.EXPECT().Generate(src).Return([]byte("new"), nil)
	mocks.orch.EXPECT().CheckCandidate(mock.Anything, src, []byte("new")).Return(failed)
	mocks.ui.EXPECT().DisplayVerdict(failed).Return()

	err := wf.Generate(quietContext(), domain.GenerateArgs{Paths: []m.Path{"q/main.go"}, Exec: true})
	require.ErrorIs(t, err, domain.ErrMismatch)
	assert.Contains(t, err.Error(), "exit status 2")
	mocks.fs.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything)
}

func TestWorkflow_GenerateError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "old")
	mocks.expectSources([]m.Path{"q/main.go"}, src)

	mocks.generator.EXPECT().Generate(src).Return(nil, domain.ErrTableLayout)

	err := wf.Generate(quietContext(), domain.GenerateArgs{Paths: []m.Path{"q/main.go"}})
	assert.ErrorIs(t, err, domain.ErrTableLayout)
}

func TestWorkflow_Inspect(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	src := quineSource("q/main.go", "q")
	q := m.Quine{Source: src, Head: []m.Fragment{"package main\n"}}

	mocks.fs.EXPECT().ReadSource(src.Path).Return(src, nil)
	mocks.generator.EXPECT().Split(src).Return(q, nil)
	mocks.ui.EXPECT().DisplayFragments(q).Return(nil)

	require.NoError(t, wf.Inspect(quietContext(), domain.InspectArgs{Path: src.Path}))
}

func TestWorkflow_InspectReadError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	boom := errors.New("missing")

	mocks.fs.EXPECT().ReadSource(m.Path("nope.go")).Return(m.Source{}, boom)

	err := wf.Inspect(quietContext(), domain.InspectArgs{Path: "nope.go"})
	assert.ErrorIs(t, err, boom)
}

func TestWorkflow_View(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	saved := []m.Verdict{{Path: "q/main.go", Mode: m.VerifyStatic, Match: true}}

	mocks.reports.EXPECT().LoadVerdicts(m.Path("reports")).Return(saved, nil)
	mocks.ui.EXPECT().DisplaySummary(saved).Return(nil)

	require.NoError(t, wf.View(quietContext(), domain.ViewArgs{Reports: "reports"}))
}

func TestWorkflow_ViewLoadError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	boom := errors.New("no such dir")

	mocks.reports.EXPECT().LoadVerdicts(m.Path("missing")).Return(nil, boom)

	err := wf.View(quietContext(), domain.ViewArgs{Reports: "missing"})
	assert.ErrorIs(t, err, boom)
}
