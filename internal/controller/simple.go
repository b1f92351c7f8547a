package controller

import (
	"bytes"
	"fmt"
	"sync"

	m "github.com/mouse-blink/selfprint/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text written through a cobra command.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayGenerated prints one line per regenerated file.
func (s *SimpleUI) DisplayGenerated(path m.Path, changed bool) {
	state := "unchanged"
	if changed {
		state = "updated"
	}

	s.printf("%s: %s\n", path, state)
}

// DisplaySource copies content to the command output.
func (s *SimpleUI) DisplaySource(content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.cmd.OutOrStdout().Write(content)

	return err
}

// DisplayVerdict prints the verdict and, on mismatch, its diff.
func (s *SimpleUI) DisplayVerdict(verdict m.Verdict) {
	s.printf("%-4s %-6s %s%s\n", verdictStatus(verdict), verdict.Mode, verdict.Path, verdictDetail(verdict))

	if !verdict.Match && verdict.Diff != "" {
		s.printf("%s", verdict.Diff)
	}
}

// DisplaySummary renders all verdicts as a table.
func (s *SimpleUI) DisplaySummary(verdicts []m.Verdict) error {
	if len(verdicts) == 0 {
		s.printf("No quine sources verified\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Mode", "Result", "Source", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	passed := 0

	for _, v := range verdicts {
		if v.OK() {
			passed++
		}

		table.Append([]string{
			string(v.Path),
			string(v.Mode),
			verdictStatus(v),
			fmt.Sprintf("%d", v.SourceBytes),
			fmt.Sprintf("%d", v.OutputBytes),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(verdicts)),
		"",
		fmt.Sprintf("%d ok", passed),
		"",
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayFragments renders both fragment tables.
func (s *SimpleUI) DisplayFragments(quine m.Quine) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Table", "#", "Bytes", "Literal"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, item := range fragmentItems(quine) {
		table.Append([]string{
			string(item.table),
			fmt.Sprintf("%d", item.index),
			fmt.Sprintf("%d", len(item.text)),
			item.literal(),
		})
	}

	state := "up to date"
	if quine.Stale() {
		state = "stale, run generate"
	}

	table.SetFooter([]string{
		string(quine.Source.Path),
		"",
		fmt.Sprintf("%d", len(quine.Code.Fragments)+len(quine.Rest.Fragments)),
		state,
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func verdictStatus(v m.Verdict) string {
	switch {
	case v.Err != nil:
		return "ERR"
	case v.OK():
		return "ok"
	default:
		return "FAIL"
	}
}

func verdictDetail(v m.Verdict) string {
	switch {
	case v.Err != nil:
		return ": " + v.Err.Error()
	case v.ExitCode != 0:
		return fmt.Sprintf(" (exit status %d)", v.ExitCode)
	case !v.Match:
		return fmt.Sprintf(" (first difference at line %d)", v.FirstDiffLine)
	default:
		return ""
	}
}
