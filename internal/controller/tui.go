package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/selfprint/internal/model"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	addStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	delStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// TUI implements UI for interactive terminals. Fragment tables are browsed
// in a Bubble Tea program; everything else is printed with lipgloss styles.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	err     error
	options []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayGenerated prints one styled line per regenerated file.
func (t *TUI) DisplayGenerated(path m.Path, changed bool) {
	state := dimStyle.Render("unchanged")
	if changed {
		state = okStyle.Render("updated")
	}

	t.println(fmt.Sprintf("%s %s", pathStyle.Render(string(path)), state))
}

// DisplaySource writes content unstyled so it can be copied as is.
func (t *TUI) DisplaySource(content []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := t.output.Write(content)

	return err
}

// DisplayVerdict prints the verdict and a colored diff on mismatch.
func (t *TUI) DisplayVerdict(verdict m.Verdict) {
	status := okStyle.Render("✔")
	if !verdict.OK() {
		status = failStyle.Render("✘")
	}

	line := fmt.Sprintf("%s %s %s", status, dimStyle.Render(fmt.Sprintf("%-6s", verdict.Mode)), pathStyle.Render(string(verdict.Path)))
	if detail := verdictDetail(verdict); detail != "" {
		line += failStyle.Render(detail)
	}

	t.println(line)

	if !verdict.Match && verdict.Diff != "" {
		t.println(renderDiff(verdict.Diff))
	}
}

// DisplaySummary prints the totals of a verification run.
func (t *TUI) DisplaySummary(verdicts []m.Verdict) error {
	passed := 0

	for _, v := range verdicts {
		if v.OK() {
			passed++
		}
	}

	style := okStyle
	if passed != len(verdicts) {
		style = failStyle
	}

	t.println(style.Render(fmt.Sprintf("%d/%d fixed points hold", passed, len(verdicts))))

	return nil
}

// DisplayFragments opens the fragment browser and blocks until it is closed.
func (t *TUI) DisplayFragments(quine m.Quine) error {
	if err := t.startWithModel(newFragmentsModel()); err != nil {
		return err
	}

	t.send(fragmentsMsg{quine: quine})
	t.Wait()

	return t.err
}

// Wait blocks until the running program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the running program, if any, and waits for it.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Quit()
	}

	t.Wait()
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	options := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}, t.options...)
	t.program = tea.NewProgram(model, options...)
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

func (t *TUI) println(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintln(t.output, line)
}

func renderDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case len(line) > 0 && line[0] == '+':
			lines[i] = addStyle.Render(line)
		case len(line) > 0 && line[0] == '-':
			lines[i] = delStyle.Render(line)
		case len(line) > 1 && line[:2] == "@@":
			lines[i] = dimStyle.Render(line)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
