// Package controller provides output adapters for displaying selfprint results.
package controller

import (
	m "github.com/mouse-blink/selfprint/internal/model"
)

// UI defines how workflow results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayGenerated reports that a source was regenerated.
	DisplayGenerated(path m.Path, changed bool)
	// DisplaySource writes generated source text as is.
	DisplaySource(content []byte) error
	// DisplayVerdict reports one verification as soon as it completes. It is
	// safe for concurrent use.
	DisplayVerdict(verdict m.Verdict)
	// DisplaySummary reports every verification of a run.
	DisplaySummary(verdicts []m.Verdict) error
	// DisplayFragments shows the fragment tables of a quine source.
	DisplayFragments(quine m.Quine) error
}
