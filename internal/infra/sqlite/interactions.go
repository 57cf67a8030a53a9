package sqlite

import (
	"github.com/turismocol/turismocol/internal/domain"
)

// ─── Interaction Operations ─────────────────────────────────────────────────

// InsertInteraction appends an interaction record. Repeated actions are
// intentionally not deduplicated.
func (db *DB) InsertInteraction(in *domain.Interaction) error {
	createdAt := now()
	_, err := db.sql.Exec(`
		INSERT INTO interactions (id, user_id, rnt, action, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, in.ID, in.UserID, in.RNT, string(in.Action), createdAt)
	if err != nil {
		return err
	}
	in.CreatedAt = parseTime(createdAt)
	return nil
}

// ListInteractionsByUser returns a user's full interaction history,
// oldest first.
func (db *DB) ListInteractionsByUser(userID string) ([]domain.Interaction, error) {
	rows, err := db.sql.Query(`
		SELECT id, user_id, rnt, action, created_at FROM interactions
		WHERE user_id = ?
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Interaction
	for rows.Next() {
		var in domain.Interaction
		var action, createdStr string
		if err := rows.Scan(&in.ID, &in.UserID, &in.RNT, &action, &createdStr); err != nil {
			return nil, err
		}
		in.Action = domain.Action(action)
		in.CreatedAt = parseTime(createdStr)
		out = append(out, in)
	}
	return out, rows.Err()
}

// CountInteractions returns the total number of recorded interactions.
func (db *DB) CountInteractions() (int64, error) {
	var n int64
	err := db.sql.QueryRow(`SELECT COUNT(*) FROM interactions`).Scan(&n)
	return n, err
}

// PopularDestination pairs a destination with its interaction count.
type PopularDestination struct {
	Destination domain.Destination `json:"destination"`
	Count       int64              `json:"interaction_count"`
}

// PopularDestinations ranks destinations by view/like interaction volume,
// descending, ties broken by RNT for determinism.
func (db *DB) PopularDestinations(limit int) ([]PopularDestination, error) {
	rows, err := db.sql.Query(`
		SELECT i.rnt, COUNT(*) AS n
		FROM interactions i
		JOIN destinations d ON d.rnt = i.rnt AND d.status = 'approved'
		WHERE i.action IN ('view', 'like')
		GROUP BY i.rnt
		ORDER BY n DESC, i.rnt
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type entry struct {
		rnt string
		n   int64
	}
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.rnt, &e.n); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]PopularDestination, 0, len(entries))
	for _, e := range entries {
		d, err := db.GetDestination(e.rnt)
		if err != nil {
			return nil, err
		}
		out = append(out, PopularDestination{Destination: *d, Count: e.n})
	}
	return out, nil
}
