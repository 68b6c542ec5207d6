// Package store holds the durable collection of closed time entries.
//
// The collection is persisted as one JSON document in the app_state table,
// rewritten in full on every mutation. Durability is best effort: if a write
// fails the in-memory collection stays authoritative for the rest of the
// process lifetime and the durable copy may fall behind (at most eventually
// durable, not exactly once).
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/harborworks/tidelog/internal/db"
	"github.com/harborworks/tidelog/internal/domain"
)

// stateKey is the well-known app_state key holding the entry collection.
const stateKey = "time_entries"

// EntryStore is the sole source of truth for closed time entries.
// It is not internally locked: all calls must come from the single
// goroutine that owns the session state.
type EntryStore struct {
	db      db.DBTX
	logger  *slog.Logger
	entries []domain.TimeEntry
}

// NewEntryStore loads the persisted collection and returns the store.
// Missing or corrupt persisted state is treated as an empty history.
func NewEntryStore(database db.DBTX, logger *slog.Logger) *EntryStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &EntryStore{db: database, logger: logger}
	s.entries = s.load()
	return s
}

func (s *EntryStore) load() []domain.TimeEntry {
	var raw string
	err := s.db.QueryRowContext(context.Background(),
		`SELECT value FROM app_state WHERE key = ?`, stateKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.logger.Warn("loading time entries failed, starting with empty history", "error", err)
		return nil
	}

	var entries []domain.TimeEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("persisted time entries are malformed, starting with empty history", "error", err)
		return nil
	}
	return entries
}

// Append adds one closed entry and re-persists the whole collection.
// Persistence failures are logged, never returned.
func (s *EntryStore) Append(e domain.TimeEntry) {
	s.entries = append(s.entries, e)
	s.persist()
}

// All returns a snapshot of the collection in insertion order. EndTime
// values are copied too, so writing through a snapshot never reaches the
// stored entries.
func (s *EntryStore) All() []domain.TimeEntry {
	out := make([]domain.TimeEntry, len(s.entries))
	for i, e := range s.entries {
		if e.EndTime != nil {
			end := *e.EndTime
			e.EndTime = &end
		}
		out[i] = e
	}
	return out
}

// Len returns the number of stored entries.
func (s *EntryStore) Len() int {
	return len(s.entries)
}

// Remove deletes one entry by ID and re-persists. It reports whether an
// entry was removed. This is the admin deletion path; the session tracker
// never removes entries.
func (s *EntryStore) Remove(id string) bool {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

func (s *EntryStore) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		s.logger.Error("serializing time entries", "error", err)
		return
	}

	_, err = s.db.ExecContext(context.Background(),
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		stateKey, string(data))
	if err != nil {
		s.logger.Error("persisting time entries, in-memory collection remains authoritative", "error", err)
	}
}
