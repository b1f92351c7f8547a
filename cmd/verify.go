package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/selfprint/internal/domain"
	m "github.com/mouse-blink/selfprint/internal/model"
)

var verifyExecFlag bool
var verifyParallelFlag int
var verifyReportsFlag string

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [files...]",
		Short: "Check that quine sources print themselves",
		Long: `Verify replays each quine's tables in memory and compares the result with the
source file. With --exec the program is also run with go run and its
standard output compared byte for byte.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			threads := cfg.Parallel
			if cmd.Flags().Changed("parallel") {
				threads = verifyParallelFlag
			}

			reports := cfg.Reports
			if cmd.Flags().Changed("reports") {
				reports = m.Path(verifyReportsFlag)
			}

			return workflow.Verify(cmd.Context(), domain.VerifyArgs{
				Paths:   parsePaths(args),
				Exec:    verifyExecFlag,
				Threads: threads,
				Reports: reports,
			})
		},
	}
	cmd.Flags().BoolVar(&verifyExecFlag, "exec", false, "also run each program and compare its output")
	cmd.Flags().IntVarP(&verifyParallelFlag, "parallel", "p", 1, "number of parallel verifications")
	cmd.Flags().StringVar(&verifyReportsFlag, "reports", "", "directory to save verdicts to as YAML")

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
