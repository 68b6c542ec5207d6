package domain

import "time"

// TimeEntry is one tracked work session bound to a project and an activity
// label. An entry with a nil EndTime is open (in progress); once EndTime is
// set the entry is closed and immutable, except for explicit admin deletion.
type TimeEntry struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	ProjectID string     `json:"projectId"`
	Activity  string     `json:"activity"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// Open reports whether the entry is still in progress.
func (e *TimeEntry) Open() bool {
	return e.EndTime == nil
}

// Duration returns the elapsed time of the entry. Open entries are measured
// against asOf, so their duration grows with every re-sampling.
func (e *TimeEntry) Duration(asOf time.Time) time.Duration {
	end := asOf
	if e.EndTime != nil {
		end = *e.EndTime
	}
	return end.Sub(e.StartTime)
}

// Close returns a closed copy of the entry with EndTime set to endedAt.
// The receiver is left untouched. End times are clamped to StartTime so a
// closed entry never reports a negative duration.
func (e *TimeEntry) Close(endedAt time.Time) TimeEntry {
	if endedAt.Before(e.StartTime) {
		endedAt = e.StartTime
	}
	closed := *e
	closed.EndTime = &endedAt
	return closed
}
