package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/selfprint/internal/adapter"
	"github.com/mouse-blink/selfprint/internal/controller"
	"github.com/mouse-blink/selfprint/internal/logging"
	m "github.com/mouse-blink/selfprint/internal/model"
)

var (
	// ErrMismatch is returned when at least one source is not a fixed point.
	ErrMismatch = errors.New("output does not match source")
	// ErrStale is returned by a generate check when a table is out of date.
	ErrStale = errors.New("fragment tables are out of date")
	// ErrNoQuines is returned when the given paths hold no quine source.
	ErrNoQuines = errors.New("no quine sources found")
)

// GenerateArgs configures a regeneration run.
type GenerateArgs struct {
	Paths []m.Path
	// Stdout prints the regenerated sources instead of writing them.
	Stdout bool
	// Check only reports stale sources and fails with ErrStale.
	Check bool
	// Exec proves every regenerated source in a scratch module before
	// writing it.
	Exec bool
}

// VerifyArgs configures a verification run.
type VerifyArgs struct {
	Paths []m.Path
	// Exec runs each program in addition to the in-memory replay.
	Exec    bool
	Threads int
	// Reports is the directory verdicts are saved to; empty disables saving.
	Reports m.Path
}

// InspectArgs selects the source whose tables are shown.
type InspectArgs struct {
	Path m.Path
}

// ViewArgs selects the reports directory whose verdicts are shown.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	generator   Generator
	verifier    Verifier
	orch        Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	generator Generator,
	verifier Verifier,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		generator:   generator,
		verifier:    verifier,
		orch:        orchestrator,
	}
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	logger := logging.FromContext(ctx)

	sources, err := w.quineSources(ctx, args.Paths)
	if err != nil {
		return err
	}

	var stale []m.Path

	for _, src := range sources {
		generated, err := w.generator.Generate(src)
		if err != nil {
			return fmt.Errorf("generate %s: %w", src.Path, err)
		}

		changed := !bytes.Equal(generated, src.Content)
		logger.Debug("generated", "path", src.Path, "changed", changed, "bytes", len(generated))

		if args.Stdout {
			if err := w.ui.DisplaySource(generated); err != nil {
				return err
			}

			continue
		}

		if args.Check {
			if changed {
				stale = append(stale, src.Path)
			}

			w.ui.DisplayGenerated(src.Path, changed)

			continue
		}

		if args.Exec {
			verdict := w.orch.CheckCandidate(ctx, src, generated)
			if !verdict.OK() {
				w.ui.DisplayVerdict(verdict)

				return fmt.Errorf("%s: regenerated source: %w", src.Path, mismatchErr(verdict))
			}
		}

		if changed {
			if err := w.fsAdapter.WriteFile(src.Path, generated); err != nil {
				return fmt.Errorf("write %s: %w", src.Path, err)
			}

			logger.Info("fragment tables rewritten", "path", src.Path)
		}

		w.ui.DisplayGenerated(src.Path, changed)
	}

	if len(stale) > 0 {
		return fmt.Errorf("%d file(s): %w", len(stale), ErrStale)
	}

	return nil
}

func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	logger := logging.FromContext(ctx)

	sources, err := w.quineSources(ctx, args.Paths)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	modes := []m.VerifyMode{m.VerifyStatic}
	if args.Exec {
		modes = append(modes, m.VerifyExec)
	}

	verdicts := make([]m.Verdict, len(sources)*len(modes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, src := range sources {
		for j, mode := range modes {
			slot := i*len(modes) + j

			g.Go(func() error {
				verdict := w.verifyOne(gctx, src, mode)
				verdicts[slot] = verdict

				logger.Debug("verified", "path", src.Path, "mode", mode, "match", verdict.Match)
				w.ui.DisplayVerdict(verdict)

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveVerdicts(args.Reports, verdicts); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		if err := w.reportStore.RegenerateIndex(args.Reports); err != nil {
			return fmt.Errorf("index reports: %w", err)
		}
	}

	if err := w.ui.DisplaySummary(verdicts); err != nil {
		return err
	}

	failed := 0

	for _, v := range verdicts {
		if !v.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d verification(s): %w", failed, len(verdicts), ErrMismatch)
	}

	return nil
}

func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	src, err := w.fsAdapter.ReadSource(args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	q, err := w.generator.Split(src)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("inspecting", "path", args.Path,
		"code", len(q.Code.Fragments), "rest", len(q.Rest.Fragments), "stale", q.Stale())

	return w.ui.DisplayFragments(q)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	verdicts, err := w.reportStore.LoadVerdicts(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	logging.FromContext(ctx).Debug("loaded reports", "dir", args.Reports, "count", len(verdicts))

	return w.ui.DisplaySummary(verdicts)
}

func (w *workflow) verifyOne(ctx context.Context, src m.Source, mode m.VerifyMode) m.Verdict {
	if mode == m.VerifyExec {
		return w.verifier.Exec(ctx, src)
	}

	return w.verifier.Static(src)
}

// quineSources expands paths and keeps the files that declare both fragment
// tables. Files without tables are skipped; any other parse failure is kept
// so verification reports it.
func (w *workflow) quineSources(ctx context.Context, paths []m.Path) ([]m.Source, error) {
	if len(paths) == 0 {
		paths = []m.Path{m.DefaultSource}
	}

	files, err := w.fsAdapter.Get(paths)
	if err != nil {
		return nil, err
	}

	var sources []m.Source

	for _, path := range files {
		src, err := w.fsAdapter.ReadSource(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		if _, err := w.generator.Split(src); errors.Is(err, ErrTableNotFound) {
			logging.FromContext(ctx).Debug("skipping file without fragment tables", "path", path)

			continue
		}

		sources = append(sources, src)
	}

	if len(sources) == 0 {
		return nil, ErrNoQuines
	}

	return sources, nil
}

func mismatchErr(v m.Verdict) error {
	if v.Err != nil {
		return v.Err
	}

	if v.ExitCode != 0 {
		return fmt.Errorf("exit status %d: %w", v.ExitCode, ErrMismatch)
	}

	return fmt.Errorf("first difference at line %d: %w", v.FirstDiffLine, ErrMismatch)
}
