package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/selfprint/internal/domain"
	m "github.com/mouse-blink/selfprint/internal/model"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the fragment tables of a quine source",
		Long:  "Inspect lists every fragment of the code and rest tables with its quoted form and reports whether the tables are stale.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Source
			if len(args) == 1 {
				path = m.Path(args[0])
			}

			return workflow.Inspect(cmd.Context(), domain.InspectArgs{Path: path})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
