package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const (
	labelWidth = 10
	sizeWidth  = 6
	// scrollPause is the number of ticks a long literal rests before it
	// starts to scroll.
	scrollPause = 5
)

var (
	titleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	selectedRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	selectedLabelStyle = selectedRowStyle.Bold(true).Width(labelWidth)
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(labelWidth)
	sizeStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(sizeWidth).Align(lipgloss.Right)
	literalStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	frameStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Margin(0, 1).Padding(0, 1)
	columnHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true).Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(lipgloss.Color("8"))
	hintStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Align(lipgloss.Center)
)

// fragmentDelegate renders one fragment per line: table and index, length in
// bytes, quoted literal. The selected literal scrolls when it does not fit.
type fragmentDelegate struct {
	offset int
}

func (d fragmentDelegate) Height() int                           { return 1 }
func (d fragmentDelegate) Spacing() int                          { return 0 }
func (d fragmentDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d fragmentDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	frag, ok := item.(fragmentItem)
	if !ok {
		return
	}

	label := fmt.Sprintf("%s %d", frag.table, frag.index)
	size := sizeStyle.Render(fmt.Sprintf("%dB", len(frag.text)))
	width := m.Width() - labelWidth - sizeWidth - 4

	if index == m.Index() {
		_, _ = fmt.Fprintf(w, "%s %s  %s", selectedLabelStyle.Render(label), size,
			selectedRowStyle.Render(animateScroll(frag.literal(), width, d.offset)))

		return
	}

	_, _ = fmt.Fprintf(w, "%s %s  %s", labelStyle.Render(label), size,
		literalStyle.Render(truncateToWidth(frag.literal(), width)))
}

// animateScroll returns a width-wide window into text that advances one rune
// per tick after scrollPause ticks, wrapping around with a short gap.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width || offset < scrollPause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + "   ")
	start := (offset - scrollPause) % len(runes)
	window := append(runes[start:], runes[:start]...)

	return string(window[:min(width, len(window))])
}

// truncateToWidth cuts text to width display cells, marking the cut with an
// ellipsis.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	budget := width - lipgloss.Width(ellipsis)
	used := 0

	var b strings.Builder

	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used+w > budget {
			break
		}

		b.WriteRune(r)
		used += w
	}

	return b.String() + ellipsis
}

// fragmentsModel browses the fragment tables of one quine source.
type fragmentsModel struct {
	width        int
	height       int
	list         list.Model
	delegate     fragmentDelegate
	path         string
	codeCount    int
	restCount    int
	stale        bool
	rendered     bool
	animOffset   int
	lastSelected int
}

func newFragmentsModel() fragmentsModel {
	delegate := fragmentDelegate{}
	fragList := list.New([]list.Item{}, delegate, 80, 20)
	fragList.SetShowPagination(false)
	fragList.SetShowFilter(true)
	fragList.SetShowHelp(false)
	fragList.SetShowTitle(false)
	fragList.SetShowStatusBar(false)
	fragList.FilterInput.Placeholder = "Filter fragments…"

	return fragmentsModel{
		list:         fragList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m fragmentsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m fragmentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(m.width)

	case tickMsg:
		if m.list.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.list.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.list.FilterState() != list.Filtering {
				return m, tea.Quit
			}

			fallthrough
		default:
			m.list, cmd = m.list.Update(msg)

			if m.list.Index() != m.lastSelected {
				m.lastSelected = m.list.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.list.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case fragmentsMsg:
		m = m.handleFragmentsMsg(msg)
	}

	return m, cmd
}

func (m fragmentsModel) handleFragmentsMsg(msg fragmentsMsg) fragmentsModel {
	fragments := fragmentItems(msg.quine)

	items := make([]list.Item, 0, len(fragments))
	for _, f := range fragments {
		items = append(items, f)
	}

	m.list.SetItems(items)
	m.path = string(msg.quine.Source.Path)
	m.codeCount = len(msg.quine.Code.Fragments)
	m.restCount = len(msg.quine.Rest.Fragments)
	m.stale = msg.quine.Stale()
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m fragmentsModel) View() string {
	if !m.rendered {
		return "Loading fragment tables…\n"
	}

	state := okStyle.Render("up to date")
	if m.stale {
		state = failStyle.Render("stale, run generate")
	}

	header := lipgloss.NewStyle().Padding(1, 0, 1, 2).Render(fmt.Sprintf("%s\ncode %d   rest %d   %s",
		titleStyle.Render(m.path), m.codeCount, m.restCount, state))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderTable(),
		hintStyle.Width(m.width).Render("↑/k up • ↓/j down • / filter • q quit"),
	)
}

func (m fragmentsModel) renderTable() string {
	// header (4) + hint (1) + frame (2) + column header (2)
	m.list.SetHeight(max(m.height-9, 5))

	// margin, border and padding on both sides
	width := m.width - 6
	m.list.SetWidth(width)

	columns := columnHeaderStyle.Width(width).Render(
		fmt.Sprintf("%-*s %*s  %s", labelWidth, "Fragment", sizeWidth, "Size", "Literal"))

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, columns, m.list.View()))
}
