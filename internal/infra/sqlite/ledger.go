package sqlite

import (
	"fmt"

	"github.com/turismocol/turismocol/internal/domain"
)

// ─── Points Ledger Operations ───────────────────────────────────────────────
// The ledger is append-only. Balance is SUM(delta) — never a stored column.
// Debit checks the balance inside the same transaction that appends the
// entry, so a concurrent debit can never observe a stale balance.

// Credit appends a positive ledger entry. Credits are unconditional.
func (db *DB) Credit(userID string, amount int64, reason domain.TransactionReason, ref string) (*domain.PointTransaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return db.appendEntry(userID, amount, reason, ref)
}

// Debit appends a negative ledger entry after verifying sufficiency against
// the live balance.
func (db *DB) Debit(userID string, amount int64, reason domain.TransactionReason, ref string) (*domain.PointTransaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := db.sql.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var balance int64
	if err := tx.QueryRow(
		`SELECT COALESCE(SUM(delta), 0) FROM point_transactions WHERE user_id = ?`, userID,
	).Scan(&balance); err != nil {
		return nil, err
	}
	if balance < amount {
		return nil, domain.ErrInsufficientBalance
	}

	createdAt := now()
	res, err := tx.Exec(`
		INSERT INTO point_transactions (user_id, delta, reason, ref, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, -amount, string(reason), ref, createdAt)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.PointTransaction{
		ID:        id,
		UserID:    userID,
		Delta:     -amount,
		Reason:    reason,
		Ref:       ref,
		CreatedAt: parseTime(createdAt),
	}, nil
}

// Balance returns SUM(delta) for the user; 0 for a user with no entries.
func (db *DB) Balance(userID string) (int64, error) {
	var balance int64
	err := db.sql.QueryRow(
		`SELECT COALESCE(SUM(delta), 0) FROM point_transactions WHERE user_id = ?`, userID,
	).Scan(&balance)
	return balance, err
}

// History returns the user's ledger entries, most recent first, timestamp
// ties broken by the monotonically increasing entry id.
func (db *DB) History(userID string, limit int) ([]domain.PointTransaction, error) {
	rows, err := db.sql.Query(`
		SELECT id, user_id, delta, reason, ref, created_at
		FROM point_transactions
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PointTransaction
	for rows.Next() {
		var (
			t                  domain.PointTransaction
			reason, createdStr string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Delta, &reason, &t.Ref, &createdStr); err != nil {
			return nil, err
		}
		t.Reason = domain.TransactionReason(reason)
		t.CreatedAt = parseTime(createdStr)
		out = append(out, t)
	}
	return out, rows.Err()
}

// appendEntry inserts a ledger row with no balance precondition.
func (db *DB) appendEntry(userID string, delta int64, reason domain.TransactionReason, ref string) (*domain.PointTransaction, error) {
	createdAt := now()
	res, err := db.sql.Exec(`
		INSERT INTO point_transactions (user_id, delta, reason, ref, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, delta, string(reason), ref, createdAt)
	if err != nil {
		return nil, fmt.Errorf("append ledger entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.PointTransaction{
		ID:        id,
		UserID:    userID,
		Delta:     delta,
		Reason:    reason,
		Ref:       ref,
		CreatedAt: parseTime(createdAt),
	}, nil
}
