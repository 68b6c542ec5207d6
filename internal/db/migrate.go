package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedUsers(db); err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	return nil
}

// seedUsers inserts the initial user directory into an empty users table.
func seedUsers(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []struct{ id, name, email, role string }{
		{"1", "John Doe", "john@example.com", "Admin"},
		{"2", "Jane Smith", "jane@example.com", "Engineer"},
		{"3", "Bob Johnson", "bob@example.com", "Manager"},
	}
	for _, u := range seed {
		if _, err := db.Exec(
			`INSERT INTO users (id, name, email, role) VALUES (?, ?, ?, ?)`,
			u.id, u.name, u.email, u.role,
		); err != nil {
			return fmt.Errorf("inserting seed user %s: %w", u.id, err)
		}
	}
	return nil
}

var migrations = []string{
	// app_state is a small key/value table. The time-entry collection is
	// persisted as one JSON document under a well-known key, mirroring the
	// single-record layout the rest of the system expects.
	`CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id    TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		email TEXT NOT NULL,
		role  TEXT NOT NULL
		      CHECK(role IN ('Admin','Engineer','Manager'))
	)`,
}
