package cli

import (
	"fmt"

	"github.com/harborworks/tidelog/internal/cli/formatter"
	"github.com/harborworks/tidelog/internal/domain"
	"github.com/spf13/cobra"
)

func newEntriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Inspect and manage recorded time entries",
	}

	cmd.AddCommand(
		newEntriesListCmd(app),
		newEntriesRemoveCmd(app),
	)

	return cmd
}

func newEntriesListCmd(app *App) *cobra.Command {
	var userFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded time entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.reportEntries()
			if userFlag != "" {
				filtered := make([]domain.TimeEntry, 0, len(entries))
				for _, e := range entries {
					if e.UserID == userFlag {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderBox("Time Entries",
					formatter.EntriesTable(app.Directory, entries, app.Clock.Now())))
			return nil
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "Filter by user")

	return cmd
}

func newEntriesRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a recorded time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Store.Remove(args[0]) {
				return fmt.Errorf("no entry with ID %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", args[0])
			return nil
		},
	}
}

func newProjectsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List the project directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderBox("Projects", formatter.ProjectsTable(app.Directory)))
			return nil
		},
	}
}
