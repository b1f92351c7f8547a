package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/selfprint/internal/model"
	"github.com/spf13/cobra"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayGenerated(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayGenerated("cmd/quine/main.go", true)
	ui.DisplayGenerated("other/main.go", false)

	want := "cmd/quine/main.go: updated\nother/main.go: unchanged\n"
	if got := buf.String(); got != want {
		t.Fatalf("DisplayGenerated() output = %q, want %q", got, want)
	}
}

func TestSimpleUI_DisplaySource(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplaySource([]byte("package main\n")); err != nil {
		t.Fatalf("DisplaySource() error = %v", err)
	}

	if got := buf.String(); got != "package main\n" {
		t.Fatalf("DisplaySource() output = %q", got)
	}
}

func TestSimpleUI_DisplayVerdict(t *testing.T) {
	tests := []struct {
		name    string
		verdict m.Verdict
		want    []string
	}{
		{
			name:    "match",
			verdict: m.Verdict{Path: "a.go", Mode: m.VerifyStatic, Match: true},
			want:    []string{"ok", "static", "a.go"},
		},
		{
			name:    "mismatch with diff",
			verdict: m.Verdict{Path: "a.go", Mode: m.VerifyExec, FirstDiffLine: 7, Diff: "@@ -7 +7 @@\n-a\n+b\n"},
			want:    []string{"FAIL", "exec", "first difference at line 7", "-a", "+b"},
		},
		{
			name:    "error",
			verdict: m.Verdict{Path: "a.go", Mode: m.VerifyExec, Err: errors.New("boom")},
			want:    []string{"ERR", "a.go: boom"},
		},
		{
			name:    "exit status",
			verdict: m.Verdict{Path: "a.go", Mode: m.VerifyExec, Match: true, ExitCode: 1},
			want:    []string{"FAIL", "exit status 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI()
			ui.DisplayVerdict(tt.verdict)

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Fatalf("output missing %q\noutput:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestSimpleUI_DisplaySummary_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	verdicts := []m.Verdict{
		{Path: "path/a.go", Mode: m.VerifyStatic, Match: true, SourceBytes: 120, OutputBytes: 120},
		{Path: "path/b.go", Mode: m.VerifyExec, Match: false, SourceBytes: 80, OutputBytes: 79},
	}

	if err := ui.DisplaySummary(verdicts); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{"path/a.go", "path/b.go", "120", "79", "TOTAL 2", "1 OK"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySummary_Empty(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplaySummary(nil); err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	if got := buf.String(); got != "No quine sources verified\n" {
		t.Fatalf("DisplaySummary() output = %q", got)
	}
}

func TestSimpleUI_DisplayFragments(t *testing.T) {
	ui, buf := newTestSimpleUI()

	quine := m.Quine{
		Source: m.Source{Path: "cmd/quine/main.go"},
		Head:   []m.Fragment{"/*\n"},
		Code:   m.Table{Name: m.TableCode, Fragments: []m.Fragment{"/*\n"}},
		Rest:   m.Table{Name: m.TableRest, Fragments: []m.Fragment{"\tprint(\"x\")\n"}},
	}

	if err := ui.DisplayFragments(quine); err != nil {
		t.Fatalf("DisplayFragments() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{`"/*\n"`, `"\tprint(\"x\")\n"`, "code", "rest", "STALE, RUN GENERATE"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}
