package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/harborworks/tidelog/internal/domain"
)

// Entry options
type EntryOption func(*domain.TimeEntry)

func WithUser(userID string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.UserID = userID
	}
}

func WithActivity(activity string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Activity = activity
	}
}

func WithStart(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.StartTime = t
	}
}

// WithEnd closes the entry at the given time.
func WithEnd(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.EndTime = &t
	}
}

// StillOpen leaves the entry without an end time.
func StillOpen() EntryOption {
	return func(e *domain.TimeEntry) {
		e.EndTime = nil
	}
}

// NewTestEntry returns a closed one-hour entry for the given project,
// started an hour ago. Options override the defaults.
func NewTestEntry(projectID string, opts ...EntryOption) domain.TimeEntry {
	start := time.Now().Add(-time.Hour).Truncate(time.Second)
	end := start.Add(time.Hour)
	e := domain.TimeEntry{
		ID:        uuid.New().String(),
		UserID:    "admin",
		ProjectID: projectID,
		Activity:  string(domain.TabEngineering),
		StartTime: start,
		EndTime:   &end,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestDirectory returns a small fixed directory used across tests.
func NewTestDirectory() *domain.Directory {
	return domain.NewDirectory([]domain.Project{
		{ID: "1", Name: "Deck"},
		{ID: "2", Name: "Marina"},
	})
}
