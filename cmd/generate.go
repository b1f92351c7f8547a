package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/selfprint/internal/domain"
)

var generateStdoutFlag bool
var generateCheckFlag bool
var generateExecFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Rebuild the fragment tables of quine sources",
		Long: `Generate rewrites the code and rest tables of each quine source so that they
hold the lines around them. Edit the program freely, then run generate to
restore the fixed point.

Paths may be files, directories or Go-style patterns such as ./...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Generate(cmd.Context(), domain.GenerateArgs{
				Paths:  parsePaths(args),
				Stdout: generateStdoutFlag,
				Check:  generateCheckFlag,
				Exec:   generateExecFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&generateStdoutFlag, "stdout", false, "print the regenerated source instead of writing it")
	cmd.Flags().BoolVar(&generateCheckFlag, "check", false, "only report sources whose tables are out of date")
	cmd.Flags().BoolVar(&generateExecFlag, "exec", false, "run each regenerated program in a scratch module before writing it")
	cmd.MarkFlagsMutuallyExclusive("stdout", "check")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
