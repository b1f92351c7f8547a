package domain

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/selfprint/internal/adapter"
	"github.com/mouse-blink/selfprint/internal/logging"
	m "github.com/mouse-blink/selfprint/internal/model"
)

// Orchestrator runs a candidate source inside a scratch copy of its module,
// so a regenerated quine can be proven before it replaces the original.
type Orchestrator interface {
	CheckCandidate(ctx context.Context, src m.Source, candidate []byte) m.Verdict
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	runner    adapter.RunnerAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and runner adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, runner adapter.RunnerAdapter) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		runner:    runner,
	}
}

func (o *orchestrator) CheckCandidate(ctx context.Context, src m.Source, candidate []byte) m.Verdict {
	verdict := m.Verdict{
		Path:        src.Path,
		Hash:        adapter.HashBytes(candidate),
		Mode:        m.VerifyExec,
		SourceBytes: len(candidate),
	}

	projectRoot, tmpDir, err := o.prepareWorkspace(src.Path)
	if tmpDir != "" {
		defer o.cleanupTempDir(ctx, tmpDir)
	}

	if err != nil {
		verdict.Err = err

		return verdict
	}

	rel, err := o.fsAdapter.RelPath(projectRoot, src.Path)
	if err != nil {
		verdict.Err = fmt.Errorf("failed to get relative source path: %w", err)

		return verdict
	}

	tmpSource := m.Path(filepath.Join(string(tmpDir), string(rel)))
	if err := o.fsAdapter.WriteFile(tmpSource, candidate); err != nil {
		verdict.Err = fmt.Errorf("failed to write candidate: %w", err)

		return verdict
	}

	pkg := packagePath(filepath.Dir(string(rel)))

	result, err := o.runner.RunGo(ctx, string(tmpDir), pkg)
	if err != nil {
		verdict.Err = err

		return verdict
	}

	verdict.ExitCode = result.ExitCode

	return compare(verdict, candidate, result.Stdout)
}

func (o *orchestrator) prepareWorkspace(sourcePath m.Path) (m.Path, m.Path, error) {
	projectRoot, err := o.fsAdapter.FindProjectRoot(sourcePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to find project root: %w", err)
	}

	tmpDir, err := o.fsAdapter.CreateTempDir("selfprint-check-*")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	if err := o.fsAdapter.CopyDir(projectRoot, tmpDir); err != nil {
		return projectRoot, tmpDir, fmt.Errorf("failed to copy project: %w", err)
	}

	return projectRoot, tmpDir, nil
}

func (o *orchestrator) cleanupTempDir(ctx context.Context, tmpDir m.Path) {
	if err := o.fsAdapter.RemoveAll(tmpDir); err != nil {
		logging.FromContext(ctx).Warn("failed to remove scratch dir", "dir", tmpDir, "error", err)
	}
}
