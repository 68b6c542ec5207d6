// Package tracker mediates the single active work session.
//
// Exactly one Tracker instance exists per process; every consumer receives it
// by injection. The tracker is not internally locked: all calls must come
// from the single goroutine driving the UI or command flow.
package tracker

import (
	"time"

	"github.com/google/uuid"
	"github.com/harborworks/tidelog/internal/domain"
	"github.com/jonboulle/clockwork"
)

// State is the tracker's session state.
type State int

const (
	// Idle means no open entry is held.
	Idle State = iota
	// Tracking means exactly one open entry is held.
	Tracking
)

func (s State) String() string {
	if s == Tracking {
		return "tracking"
	}
	return "idle"
}

// Transition describes one state change, delivered to subscribers.
// Entry is the held entry after a start, or the closed entry after a stop.
type Transition struct {
	From  State
	To    State
	Entry domain.TimeEntry
}

// Store is the durable home the tracker appends closed entries to.
type Store interface {
	Append(e domain.TimeEntry)
}

// Tracker owns the Idle/Tracking state machine. At most one open entry
// exists at any time; the open entry lives only in tracker memory and is
// abandoned at process teardown.
type Tracker struct {
	clock     clockwork.Clock
	store     Store
	current   *domain.TimeEntry
	activeTab domain.Tab
	listeners []func(Transition)
}

// New creates a Tracker over the given store and clock.
func New(store Store, clock clockwork.Clock) *Tracker {
	return &Tracker{
		clock:     clock,
		store:     store,
		activeTab: domain.TabSales,
	}
}

// Subscribe registers a listener for state transitions.
func (t *Tracker) Subscribe(fn func(Transition)) {
	t.listeners = append(t.listeners, fn)
}

// State returns the current tracker state.
func (t *Tracker) State() State {
	if t.current != nil {
		return Tracking
	}
	return Idle
}

// Current returns a copy of the held open entry, or nil when idle.
func (t *Tracker) Current() *domain.TimeEntry {
	if t.current == nil {
		return nil
	}
	e := *t.current
	return &e
}

// ActiveTab returns the current display context.
func (t *Tracker) ActiveTab() domain.Tab {
	return t.activeTab
}

// Elapsed returns how long the open entry has been running, or zero when idle.
func (t *Tracker) Elapsed() time.Duration {
	if t.current == nil {
		return 0
	}
	return t.current.Duration(t.clock.Now())
}

// Start opens a new session for the given project. An empty projectID is a
// precondition failure and the call is silently ignored; the boundary layer
// is expected to disable the start action until a project is selected.
// Starting while already tracking closes the running session first.
func (t *Tracker) Start(projectID, activity, userID string) {
	if projectID == "" {
		return
	}
	if t.current != nil {
		t.Stop()
	}

	entry := domain.TimeEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProjectID: projectID,
		Activity:  activity,
		StartTime: t.clock.Now(),
	}
	t.current = &entry
	t.notify(Transition{From: Idle, To: Tracking, Entry: entry})
}

// Stop closes the held entry and appends the closed copy to the store.
// Stopping while idle is a no-op; it never signals failure.
func (t *Tracker) Stop() {
	if t.current == nil {
		return
	}
	closed := t.current.Close(t.clock.Now())
	t.current = nil
	t.store.Append(closed)
	t.notify(Transition{From: Tracking, To: Idle, Entry: closed})
}

// SwitchTab changes the active display context. A context change always
// closes the running session first; it never silently abandons an open entry.
func (t *Tracker) SwitchTab(tab domain.Tab) {
	if !tab.Valid() {
		return
	}
	t.Stop()
	t.activeTab = tab
}

func (t *Tracker) notify(tr Transition) {
	for _, fn := range t.listeners {
		fn(tr)
	}
}
