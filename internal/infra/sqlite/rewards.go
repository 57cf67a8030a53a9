package sqlite

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/turismocol/turismocol/internal/domain"
)

// ─── Reward Operations ──────────────────────────────────────────────────────

// UpsertReward inserts or updates a reward definition. The redemption counter
// is preserved on update: stock already consumed cannot be reset by a
// catalog refresh.
func (db *DB) UpsertReward(r *domain.Reward) error {
	createdAt := now()
	_, err := db.sql.Exec(`
		INSERT INTO rewards (id, title, description, points_required, partner, partner_contact,
			max_redemptions, current_redemptions, terms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title           = excluded.title,
			description     = excluded.description,
			points_required = excluded.points_required,
			partner         = excluded.partner,
			partner_contact = excluded.partner_contact,
			max_redemptions = excluded.max_redemptions,
			terms           = excluded.terms
	`, r.ID, r.Title, r.Description, r.PointsRequired, r.Partner, r.PartnerContact,
		r.MaxRedemptions, r.CurrentRedemptions, r.Terms, createdAt)
	return err
}

// GetReward retrieves a reward by id. Returns domain.ErrUnknownReward if absent.
func (db *DB) GetReward(id string) (*domain.Reward, error) {
	r, err := scanReward(db.sql.QueryRow(
		`SELECT `+rewardColumns+` FROM rewards WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrUnknownReward
	}
	return r, err
}

// ListRewards returns the full catalog ordered by points required, then id.
func (db *DB) ListRewards() ([]domain.Reward, error) {
	rows, err := db.sql.Query(
		`SELECT ` + rewardColumns + ` FROM rewards ORDER BY points_required, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Reward
	for rows.Next() {
		r, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// RedeemReward executes the redemption state machine as one transaction:
// stock guard, balance-checked debit, stock increment, redemption record.
// Any failure rolls the whole unit back — a failed redemption is a pure
// no-op on both ledger and stock.
func (db *DB) RedeemReward(userID, rewardID string) (*domain.Redemption, *domain.Reward, error) {
	tx, err := db.sql.Begin()
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	reward, err := scanReward(tx.QueryRow(
		`SELECT `+rewardColumns+` FROM rewards WHERE id = ?`, rewardID))
	if err == sql.ErrNoRows {
		return nil, nil, domain.ErrUnknownReward
	}
	if err != nil {
		return nil, nil, err
	}
	if reward.CurrentRedemptions >= reward.MaxRedemptions {
		return nil, nil, domain.ErrRewardExhausted
	}

	var balance int64
	if err := tx.QueryRow(
		`SELECT COALESCE(SUM(delta), 0) FROM point_transactions WHERE user_id = ?`, userID,
	).Scan(&balance); err != nil {
		return nil, nil, err
	}
	if balance < reward.PointsRequired {
		return nil, nil, domain.ErrInsufficientBalance
	}

	createdAt := now()
	if _, err := tx.Exec(`
		INSERT INTO point_transactions (user_id, delta, reason, ref, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, -reward.PointsRequired, string(domain.ReasonRedemption), rewardID, createdAt); err != nil {
		return nil, nil, err
	}

	// Guarded increment: the WHERE clause re-checks stock so the counter can
	// never pass max even if this code path is ever reached concurrently.
	res, err := tx.Exec(`
		UPDATE rewards SET current_redemptions = current_redemptions + 1
		WHERE id = ? AND current_redemptions < max_redemptions
	`, rewardID)
	if err != nil {
		return nil, nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, domain.ErrRewardExhausted
	}

	redemption := &domain.Redemption{
		ID:        uuid.NewString(),
		UserID:    userID,
		RewardID:  rewardID,
		CreatedAt: parseTime(createdAt),
	}
	if _, err := tx.Exec(`
		INSERT INTO redemptions (id, user_id, reward_id, created_at)
		VALUES (?, ?, ?, ?)
	`, redemption.ID, userID, rewardID, createdAt); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	reward.CurrentRedemptions++
	return redemption, reward, nil
}

const rewardColumns = `id, title, description, points_required, partner, partner_contact,
	max_redemptions, current_redemptions, terms, created_at`

func scanReward(row rowScanner) (*domain.Reward, error) {
	var (
		r          domain.Reward
		createdStr string
	)
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.PointsRequired, &r.Partner,
		&r.PartnerContact, &r.MaxRedemptions, &r.CurrentRedemptions, &r.Terms, &createdStr)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = parseTime(createdStr)
	return &r, nil
}
