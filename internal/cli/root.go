package cli

import (
	"github.com/harborworks/tidelog/internal/domain"
	"github.com/harborworks/tidelog/internal/repository"
	"github.com/harborworks/tidelog/internal/store"
	"github.com/harborworks/tidelog/internal/tracker"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// App holds the shared service instances used by CLI commands and the
// dashboard. There is exactly one Tracker and one EntryStore per process;
// every command and view works against these instances.
type App struct {
	Directory *domain.Directory
	Store     *store.EntryStore
	Tracker   *tracker.Tracker
	Users     repository.UserRepo
	Clock     clockwork.Clock

	// UserID is the acting user, resolved at startup.
	UserID string

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// reportEntries returns the store snapshot plus the currently open entry,
// if any, so an in-progress session counts as ongoing-until-now.
func (a *App) reportEntries() []domain.TimeEntry {
	entries := a.Store.All()
	if open := a.Tracker.Current(); open != nil {
		entries = append(entries, *open)
	}
	return entries
}

// NewRootCmd creates the top-level "tidelog" command and registers all
// subcommands against the provided App. Running the bare command on an
// interactive terminal opens the dashboard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tidelog",
		Short: "Project time tracking and daily reporting",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newReportCmd(app),
		newEntriesCmd(app),
		newUsersCmd(app),
		newProjectsCmd(app),
		newDashboardCmd(app),
	)

	return root
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(app)
		},
	}
}
