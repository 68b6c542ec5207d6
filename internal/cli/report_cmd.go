package cli

import (
	"fmt"
	"time"

	"github.com/harborworks/tidelog/internal/cli/formatter"
	"github.com/harborworks/tidelog/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var dateFlag, userFlag, outDir string
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compile the daily time tracking report",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Clock.Now()

			date := now
			if dateFlag != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateFlag, now.Location())
				if err != nil {
					return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD): %w", dateFlag, err)
				}
				date = parsed
			}

			content := report.Compile(app.Directory, app.reportEntries(), report.Options{
				Date:   date,
				UserID: userFlag,
				Now:    now,
			})

			if printOnly {
				fmt.Fprintln(cmd.OutOrStdout(), content)
				return nil
			}

			path, err := report.WriteArtifact(outDir, date, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", formatter.Bold(path))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Report day as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&userFlag, "user", "", "Restrict the report to one user")
	cmd.Flags().StringVar(&outDir, "out", ".", "Directory the report file is written to")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the report instead of writing a file")

	return cmd
}
