package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/turismocol/turismocol/internal/domain"
)

// ─── User Operations ────────────────────────────────────────────────────────

// UpsertUser inserts or replaces a user's preference profile.
func (db *DB) UpsertUser(u *domain.User) error {
	cats, err := json.Marshal(u.PreferredCategories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	deps, err := json.Marshal(u.PreferredDepartments)
	if err != nil {
		return fmt.Errorf("marshal departments: %w", err)
	}

	createdAt := now()
	if !u.CreatedAt.IsZero() {
		createdAt = u.CreatedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err = db.sql.Exec(`
		INSERT INTO users (id, name, email, preferred_categories, preferred_departments, age_range, travel_style, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name                  = excluded.name,
			email                 = excluded.email,
			preferred_categories  = excluded.preferred_categories,
			preferred_departments = excluded.preferred_departments,
			age_range             = excluded.age_range,
			travel_style          = excluded.travel_style
	`, u.ID, u.Name, u.Email, string(cats), string(deps), u.AgeRange, u.TravelStyle, createdAt)
	if err != nil {
		return err
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = parseTime(createdAt)
	}
	return nil
}

// GetUser retrieves a user by id. Returns domain.ErrUnknownUser if absent.
func (db *DB) GetUser(id string) (*domain.User, error) {
	var (
		u          domain.User
		cats, deps string
		createdStr string
	)
	err := db.sql.QueryRow(`
		SELECT id, name, email, preferred_categories, preferred_departments, age_range, travel_style, created_at
		FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &cats, &deps, &u.AgeRange, &u.TravelStyle, &createdStr)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUnknownUser
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(cats), &u.PreferredCategories); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}
	if err := json.Unmarshal([]byte(deps), &u.PreferredDepartments); err != nil {
		return nil, fmt.Errorf("unmarshal departments: %w", err)
	}
	u.CreatedAt = parseTime(createdStr)
	return &u, nil
}

// CountUsers returns the number of registered users.
func (db *DB) CountUsers() (int64, error) {
	var n int64
	err := db.sql.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
