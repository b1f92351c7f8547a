package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/selfprint/internal/adapter"
	adaptermocks "github.com/mouse-blink/selfprint/internal/adapter/mocks"
	m "github.com/mouse-blink/selfprint/internal/model"
)

const unterminatedQuine = `package main

var code = []string{
"package main\n",
}

var rest = []string{
"",
}
`

func TestVerifier_StaticMatch(t *testing.T) {
	v := NewVerifier(nil, nil, newTestGenerator())

	verdict := v.Static(m.Source{Path: "quine.go", Content: []byte(freshQuine), Hash: "h"})

	assert.True(t, verdict.OK())
	assert.Equal(t, m.VerifyStatic, verdict.Mode)
	assert.Equal(t, "h", verdict.Hash)
	assert.Zero(t, verdict.FirstDiffLine)
	assert.Empty(t, verdict.Diff)
	assert.Equal(t, len(freshQuine), verdict.SourceBytes)
	assert.Equal(t, len(freshQuine), verdict.OutputBytes)
}

func TestVerifier_StaticMismatch(t *testing.T) {
	v := NewVerifier(nil, nil, newTestGenerator())

	verdict := v.Static(source(staleQuine))

	require.NoError(t, verdict.Err)
	assert.False(t, verdict.Match)
	assert.False(t, verdict.OK())
	assert.Equal(t, 1, verdict.FirstDiffLine)
	assert.Contains(t, verdict.Diff, "--- quine.go")
	assert.Contains(t, verdict.Diff, "+++ output")
	assert.Contains(t, verdict.Diff, "-package main")
}

func TestVerifier_StaticUnterminatedTable(t *testing.T) {
	v := NewVerifier(nil, nil, newTestGenerator())

	verdict := v.Static(source(unterminatedQuine))

	assert.ErrorIs(t, verdict.Err, ErrMissingSentinel)
	assert.False(t, verdict.OK())
}

func TestVerifier_StaticWithoutTables(t *testing.T) {
	v := NewVerifier(nil, nil, newTestGenerator())

	verdict := v.Static(source("package main\n"))

	assert.ErrorIs(t, verdict.Err, ErrTableNotFound)
}

func execFixture(t *testing.T) (*adaptermocks.MockSourceFSAdapter, *adaptermocks.MockRunnerAdapter, m.Source) {
	t.Helper()

	fs := adaptermocks.NewMockSourceFSAdapter(t)
	runner := adaptermocks.NewMockRunnerAdapter(t)
	src := m.Source{Path: "/work/cmd/quine/main.go", Content: []byte(freshQuine)}

	fs.EXPECT().FindProjectRoot(src.Path).Return(m.Path("/work"), nil)
	fs.EXPECT().RelPath(m.Path("/work"), m.Path("/work/cmd/quine")).Return(m.Path("cmd/quine"), nil)

	return fs, runner, src
}

func TestVerifier_ExecMatch(t *testing.T) {
	fs, runner, src := execFixture(t)
	runner.EXPECT().RunGo(mock.Anything, "/work", "./cmd/quine").
		Return(adapter.RunResult{Stdout: []byte(freshQuine)}, nil)

	verdict := NewVerifier(fs, runner, newTestGenerator()).Exec(context.Background(), src)

	assert.True(t, verdict.OK())
	assert.Equal(t, m.VerifyExec, verdict.Mode)
}

func TestVerifier_ExecMismatch(t *testing.T) {
	fs, runner, src := execFixture(t)
	runner.EXPECT().RunGo(mock.Anything, "/work", "./cmd/quine").
		Return(adapter.RunResult{Stdout: []byte("package main\n")}, nil)

	verdict := NewVerifier(fs, runner, newTestGenerator()).Exec(context.Background(), src)

	require.NoError(t, verdict.Err)
	assert.False(t, verdict.Match)
	assert.Equal(t, 2, verdict.FirstDiffLine)
}

func TestVerifier_ExecNonZeroExit(t *testing.T) {
	fs, runner, src := execFixture(t)
	runner.EXPECT().RunGo(mock.Anything, "/work", "./cmd/quine").
		Return(adapter.RunResult{Stderr: []byte("write 12 bytes: bad file descriptor\n"), ExitCode: 1}, nil)

	verdict := NewVerifier(fs, runner, newTestGenerator()).Exec(context.Background(), src)

	require.Error(t, verdict.Err)
	assert.Contains(t, verdict.Err.Error(), "bad file descriptor")
	assert.Equal(t, 1, verdict.ExitCode)
	assert.False(t, verdict.OK())
}

func TestVerifier_ExecRunnerError(t *testing.T) {
	fs, runner, src := execFixture(t)
	boom := errors.New("go not found")
	runner.EXPECT().RunGo(mock.Anything, "/work", "./cmd/quine").Return(adapter.RunResult{}, boom)

	verdict := NewVerifier(fs, runner, newTestGenerator()).Exec(context.Background(), src)

	assert.ErrorIs(t, verdict.Err, boom)
}

func TestVerifier_ExecNoProjectRoot(t *testing.T) {
	fs := adaptermocks.NewMockSourceFSAdapter(t)
	runner := adaptermocks.NewMockRunnerAdapter(t)
	boom := errors.New("no go.mod")
	fs.EXPECT().FindProjectRoot(m.Path("/x/main.go")).Return(m.Path(""), boom)

	verdict := NewVerifier(fs, runner, newTestGenerator()).Exec(context.Background(), m.Source{Path: "/x/main.go"})

	assert.ErrorIs(t, verdict.Err, boom)
}

func TestFirstDiffLine(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want int
	}{
		{"equal", []string{"a"}, []string{"a"}, 0},
		{"first", []string{"a"}, []string{"b"}, 1},
		{"second", []string{"a", "b"}, []string{"a", "c"}, 2},
		{"shorter output", []string{"a", "b"}, []string{"a"}, 2},
		{"longer output", []string{"a"}, []string{"a", "b"}, 2},
		{"empty output", []string{"a"}, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstDiffLine(tt.a, tt.b))
		})
	}
}
