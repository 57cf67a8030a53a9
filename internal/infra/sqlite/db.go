// Package sqlite implements persistent storage for the engagement backend
// using database/sql over the pure-Go modernc.org/sqlite driver.
//
// All mutating operations run inside transactions on a single write
// connection, so mutations on shared entities (a user's balance, a reward's
// stock counter) are globally serialized. Balance checks and stock guards
// execute inside the same transaction as their writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the sqlite handle with typed operations for each store.
type DB struct {
	sql *sql.DB
}

// Open creates or opens the database under dir and applies migrations.
func Open(dir string) (*DB, error) {
	path := filepath.Join(dir, "turismocol.db")
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	handle, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One connection: sqlite allows a single writer, and funneling every
	// statement through one conn turns that into whole-transaction
	// serialization instead of SQLITE_BUSY errors.
	handle.SetMaxOpenConns(1)

	db := &DB{sql: handle}
	if err := db.migrate(); err != nil {
		handle.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the underlying handle.
func (db *DB) Close() error { return db.sql.Close() }

// migrate applies the schema. Each string is a single SQL statement
// (SQLite executes one at a time).
func (db *DB) migrate() error {
	for _, stmt := range Migrations() {
		if _, err := db.sql.Exec(stmt); err != nil {
			return fmt.Errorf("exec %.40q: %w", stmt, err)
		}
	}
	return nil
}

// Migrations returns the schema migration statements.
func Migrations() []string {
	return []string{
		// User preference profiles
		`CREATE TABLE IF NOT EXISTS users (
			id                    TEXT PRIMARY KEY,
			name                  TEXT NOT NULL,
			email                 TEXT NOT NULL,
			preferred_categories  TEXT NOT NULL DEFAULT '[]',
			preferred_departments TEXT NOT NULL DEFAULT '[]',
			age_range             TEXT NOT NULL DEFAULT '',
			travel_style          TEXT NOT NULL DEFAULT '',
			created_at            TEXT NOT NULL
		)`,

		// Destination catalog (RNT registry extract + user submissions)
		`CREATE TABLE IF NOT EXISTS destinations (
			rnt           TEXT PRIMARY KEY,
			razon_social  TEXT NOT NULL,
			categoria     TEXT NOT NULL,
			subcategoria  TEXT NOT NULL DEFAULT '',
			nomdep        TEXT NOT NULL,
			nombre_muni   TEXT NOT NULL,
			habitaciones  INTEGER NOT NULL DEFAULT 0,
			camas         INTEGER NOT NULL DEFAULT 0,
			empleados     INTEGER NOT NULL DEFAULT 0,
			submitted_by  TEXT NOT NULL DEFAULT '',
			status        TEXT NOT NULL DEFAULT 'approved',
			approved_at   TEXT,
			created_at    TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_destinations_dep ON destinations(nomdep, nombre_muni)`,
		`CREATE INDEX IF NOT EXISTS idx_destinations_status ON destinations(status)`,
		`CREATE INDEX IF NOT EXISTS idx_destinations_submitter ON destinations(submitted_by)`,

		// Append-only interaction log
		`CREATE TABLE IF NOT EXISTS interactions (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			rnt        TEXT NOT NULL,
			action     TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_user ON interactions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_interactions_rnt ON interactions(rnt)`,

		// Append-only points ledger — the single source of truth for balances
		`CREATE TABLE IF NOT EXISTS point_transactions (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    TEXT NOT NULL,
			delta      INTEGER NOT NULL,
			reason     TEXT NOT NULL,
			ref        TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_user ON point_transactions(user_id, id)`,

		// Partner rewards with finite stock
		`CREATE TABLE IF NOT EXISTS rewards (
			id                  TEXT PRIMARY KEY,
			title               TEXT NOT NULL,
			description         TEXT NOT NULL DEFAULT '',
			points_required     INTEGER NOT NULL,
			partner             TEXT NOT NULL DEFAULT '',
			partner_contact     TEXT NOT NULL DEFAULT '',
			max_redemptions     INTEGER NOT NULL,
			current_redemptions INTEGER NOT NULL DEFAULT 0,
			terms               TEXT NOT NULL DEFAULT '',
			created_at          TEXT NOT NULL,
			CHECK (current_redemptions <= max_redemptions)
		)`,

		// Redemption records
		`CREATE TABLE IF NOT EXISTS redemptions (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			reward_id  TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_redemptions_user ON redemptions(user_id)`,
	}
}

// now returns the canonical stored timestamp format.
func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// parseTime parses a stored timestamp, tolerating the second-precision form.
func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
