package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/selfprint/internal/domain"
	domainmocks "github.com/mouse-blink/selfprint/internal/domain/mocks"
	"github.com/mouse-blink/selfprint/internal/logging"
	m "github.com/mouse-blink/selfprint/internal/model"
)

// useWorkflow swaps the global workflow and resets the resolved config when
// the test ends.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = wf

	t.Cleanup(func() {
		workflow = originalWorkflow
		cfg = m.DefaultConfig()
	})
}

// newTestRoot builds a root command carrying the given subcommands.
func newTestRoot(subs ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	var stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(subs...)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)

	return cmd, &stderr
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "selfprint", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"config", "log-level", "log-format", "log-journal"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing --%s flag", name)
	}
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, goFileAdapter)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, runnerAdapter)
	assert.NotNil(t, configLoader)
	assert.NotNil(t, generator)
	assert.NotNil(t, verifier)
	assert.NotNil(t, orchestrator)
	assert.NotNil(t, workflow)

	names := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"generate", "verify", "inspect", "view"})
}

func TestRootCmd_LoggerInContext(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	var got context.Context

	mockWorkflow.EXPECT().Verify(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ domain.VerifyArgs) { got = ctx }).
		Return(nil)

	cmd, _ := newTestRoot(newVerifyCmd())
	cmd.SetArgs([]string{"--log-level", "debug", "verify"})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, got)
	assert.True(t, logging.FromContext(got).Enabled(got, slog.LevelDebug))
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, stderr := newTestRoot(newVerifyCmd())
	cmd.SetArgs([]string{"--log-level", "loud", "verify"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
	assert.Contains(t, stderr.String(), "unknown log level")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	path := filepath.Join(t.TempDir(), "selfprint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: quines/a.go\nparallel: 3\nreports: out\nlog:\n  format: json\n"), 0o600))

	mockWorkflow.EXPECT().Verify(mock.Anything, domain.VerifyArgs{
		Paths:   []m.Path{"quines/a.go"},
		Threads: 3,
		Reports: "out",
	}).Return(nil)

	cmd, _ := newTestRoot(newVerifyCmd())
	cmd.SetArgs([]string{"--config", path, "verify"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_MissingExplicitConfig(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(newVerifyCmd())
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "verify"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePaths(t *testing.T) {
	t.Cleanup(func() { cfg = m.DefaultConfig() })

	assert.Equal(t, []m.Path{m.DefaultSource}, parsePaths(nil))
	assert.Equal(t, []m.Path{"a.go", "./..."}, parsePaths([]string{"a.go", "./..."}))

	cfg.Source = "other/main.go"
	assert.Equal(t, []m.Path{"other/main.go"}, parsePaths(nil))
}

func TestExecute(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() { rootCmd = originalRootCmd }()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	Execute()
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.True(t, strings.Contains(string(output), "error occurred"), "output: %s", output)
}
