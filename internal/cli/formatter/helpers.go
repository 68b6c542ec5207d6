package formatter

import (
	"fmt"
	"time"

	"github.com/harborworks/tidelog/internal/domain"
	"github.com/harborworks/tidelog/internal/tracker"
)

// HumanDate returns a human-friendly absolute date string relative to now.
func HumanDate(t time.Time, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// Timestamp renders an absolute wall-clock time for table cells.
func Timestamp(t time.Time) string {
	return t.Format("Jan 2 15:04")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Elapsed renders a running duration as H:MM:SS for the live header.
func Elapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total%3600/60, total%60)
}

// TrackingPill returns a colored indicator for the tracker state.
func TrackingPill(state tracker.State) string {
	if state == tracker.Tracking {
		return StyleGreen.Render("● Tracking")
	}
	return StyleDim.Render("○ Idle")
}

// RolePill returns a colored role label for the user table.
func RolePill(role domain.UserRole) string {
	switch role {
	case domain.RoleAdmin:
		return StyleRed.Render(string(role))
	case domain.RoleManager:
		return StyleYellow.Render(string(role))
	case domain.RoleEngineer:
		return StyleBlue.Render(string(role))
	default:
		return StyleDim.Render(string(role))
	}
}
