// Package cmd provides the root command and CLI setup for selfprint.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/selfprint/internal/adapter"
	"github.com/mouse-blink/selfprint/internal/controller"
	"github.com/mouse-blink/selfprint/internal/domain"
	"github.com/mouse-blink/selfprint/internal/logging"
	m "github.com/mouse-blink/selfprint/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var runnerAdapter adapter.RunnerAdapter
var configLoader adapter.ConfigLoader
var generator domain.Generator
var verifier domain.Verifier
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// cfg holds the settings resolved by the root command before any subcommand
// runs.
var cfg = m.DefaultConfig()

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	runnerAdapter = adapter.NewLocalRunnerAdapter()
	configLoader = adapter.NewLocalConfigLoader()
	generator = domain.NewGenerator(goFileAdapter)
	verifier = domain.NewVerifier(fsAdapter, runnerAdapter, generator)
	orchestrator = domain.NewOrchestrator(fsAdapter, runnerAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		generator,
		verifier,
		orchestrator,
	)
}

var configFlag string
var logLevelFlag string
var logFormatFlag string
var logJournalFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfprint",
		Short: "Maintain and verify a self-printing Go program",
		Long: `Selfprint keeps the quine in cmd/quine honest. The program prints its own
source through raw write(2) calls, driven by two tables of source lines.

  selfprint generate   rebuild the tables from the code around them
  selfprint verify     check that the program's output equals its source
  selfprint inspect    browse the tables line by line
  selfprint view       show verdicts saved by verify --reports`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", adapter.DefaultConfigFile, "path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "text", "log format (text, json)")
	cmd.PersistentFlags().BoolVar(&logJournalFlag, "log-journal", false, "also send logs to the systemd journal")

	return cmd
}

// setup loads the configuration file, lets explicitly set flags override it
// and stores a logger in the command context.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	loaded, err := configLoader.Load(m.Path(configFlag), !flags.Changed("config"))
	if err != nil {
		return err
	}

	if flags.Changed("log-level") {
		loaded.Log.Level = logLevelFlag
	}

	if flags.Changed("log-format") {
		loaded.Log.Format = logFormatFlag
	}

	if flags.Changed("log-journal") {
		loaded.Log.Journal = logJournalFlag
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:   loaded.Log.Level,
		Format:  loaded.Log.Format,
		Journal: loaded.Log.Journal,
	})
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	cfg = loaded
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parsePaths converts positional arguments to paths, falling back to the
// configured source when none are given.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{cfg.Source}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
