package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/selfprint/internal/domain"
	m "github.com/mouse-blink/selfprint/internal/model"
)

var errNoReportsDir = errors.New("no reports directory: pass --reports or set reports in the config file")

var viewReportsFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved verification reports",
		Long:  "View verdicts saved by verify --reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports := cfg.Reports
			if cmd.Flags().Changed("reports") {
				reports = m.Path(viewReportsFlag)
			}

			if reports == "" {
				return errNoReportsDir
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reports})
		},
	}
	cmd.Flags().StringVar(&viewReportsFlag, "reports", "", "directory holding saved verdicts")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
