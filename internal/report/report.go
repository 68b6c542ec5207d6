// Package report compiles closed (and currently open) time entries into the
// daily per-project text report. Compilation is pure: entries and options in,
// string out. Writing the artifact to disk lives in a separate adapter so the
// compiler stays testable without touching the filesystem.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/harborworks/tidelog/internal/domain"
)

// footer is the fixed approval-signature line every report ends with.
const footer = "Approved by Site Manager: ____________________"

// Options control which entries a compilation covers.
type Options struct {
	// Date is the reference day; entries whose StartTime falls on the same
	// calendar day (in Date's location) are included.
	Date time.Time
	// UserID, when non-empty, restricts the report to one user's entries.
	UserID string
	// Now is the sampling instant used to measure open entries.
	Now time.Time
}

// Compile renders the daily report for the given directory and entries.
// Projects appear in directory order; projects with no matching entries are
// omitted. An open entry counts as ongoing until Options.Now, so its share
// grows every time the report is regenerated.
func Compile(dir *domain.Directory, entries []domain.TimeEntry, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily Time Tracking Report - %s\n\n", opts.Date.Format("Mon Jan 02 2006"))

	totals := Totals(dir, entries, opts)
	for _, p := range dir.Projects() {
		d, ok := totals[p.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", p.Name, FormatDuration(d))
	}

	b.WriteString("\n" + footer)
	return b.String()
}

// Totals sums entry durations per project for the reference day. Only
// projects with at least one matching entry appear in the result.
func Totals(dir *domain.Directory, entries []domain.TimeEntry, opts Options) map[string]time.Duration {
	totals := make(map[string]time.Duration)
	for _, e := range entries {
		if !matches(e, opts) {
			continue
		}
		if _, ok := dir.ByID(e.ProjectID); !ok {
			continue
		}
		totals[e.ProjectID] += e.Duration(opts.Now)
	}
	return totals
}

// matches reports whether the entry belongs to the reference day and user.
// An entry spanning midnight is attributed entirely to its start day.
func matches(e domain.TimeEntry, opts Options) bool {
	if opts.UserID != "" && e.UserID != opts.UserID {
		return false
	}
	return sameDay(e.StartTime.In(opts.Date.Location()), opts.Date)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDuration renders a duration as whole hours and remaining whole
// minutes, both floored, e.g. "1h 30m" or "0h 45m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", h, m)
}
