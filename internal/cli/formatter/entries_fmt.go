package formatter

import (
	"time"

	"github.com/harborworks/tidelog/internal/domain"
	"github.com/harborworks/tidelog/internal/report"
)

// EntriesTable renders the admin time-entry table. Open entries show an
// "Ongoing" end cell and are measured against now.
func EntriesTable(dir *domain.Directory, entries []domain.TimeEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No time entries recorded.")
	}

	headers := []string{"ID", "PROJECT", "ACTIVITY", "USER", "START", "END", "DURATION"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		name := e.ProjectID
		if p, ok := dir.ByID(e.ProjectID); ok {
			name = p.Name
		}
		end := StyleGreen.Render("Ongoing")
		if e.EndTime != nil {
			end = Timestamp(*e.EndTime)
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			StyleFg.Render(name),
			Dim(e.Activity),
			StyleFg.Render(e.UserID),
			Timestamp(e.StartTime),
			end,
			report.FormatDuration(e.Duration(now)),
		})
	}
	return RenderTable(headers, rows)
}

// UsersTable renders the user administration table.
func UsersTable(users []*domain.User) string {
	if len(users) == 0 {
		return Dim("No users.")
	}

	headers := []string{"ID", "NAME", "EMAIL", "ROLE"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			StyleFg.Render(u.ID),
			Bold(u.Name),
			Dim(u.Email),
			RolePill(u.Role),
		})
	}
	return RenderTable(headers, rows)
}

// ProjectsTable renders the project directory listing.
func ProjectsTable(dir *domain.Directory) string {
	headers := []string{"ID", "NAME"}
	rows := make([][]string, 0, dir.Len())
	for _, p := range dir.Projects() {
		rows = append(rows, []string{StyleFg.Render(p.ID), Bold(p.Name)})
	}
	return RenderTable(headers, rows)
}

// DayTotals renders the per-project totals block shown on activity tabs.
func DayTotals(dir *domain.Directory, totals map[string]time.Duration) string {
	if len(totals) == 0 {
		return Dim("No time tracked today.")
	}
	headers := []string{"PROJECT", "TRACKED"}
	var rows [][]string
	for _, p := range dir.Projects() {
		d, ok := totals[p.ID]
		if !ok {
			continue
		}
		rows = append(rows, []string{Bold(p.Name), StyleGreen.Render(report.FormatDuration(d))})
	}
	return RenderTable(headers, rows)
}
