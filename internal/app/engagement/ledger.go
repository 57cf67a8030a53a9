// Package engagement implements the point-earning side of the backend:
// the ledger service, the interaction tracker and reward redemption.
// Levels are derived from the ledger on every read, never stored.
package engagement

import (
	"github.com/turismocol/turismocol/internal/domain"
	"github.com/turismocol/turismocol/internal/infra/observability"
	"github.com/turismocol/turismocol/internal/infra/sqlite"
)

// LedgerService exposes the points ledger and the derived level block.
type LedgerService struct {
	db *sqlite.DB
}

// NewLedgerService creates a ledger service.
func NewLedgerService(db *sqlite.DB) *LedgerService {
	return &LedgerService{db: db}
}

// Credit appends a positive ledger entry.
func (s *LedgerService) Credit(userID string, amount int64, reason domain.TransactionReason, ref string) (*domain.PointTransaction, error) {
	tx, err := s.db.Credit(userID, amount, reason, ref)
	if err != nil {
		return nil, err
	}
	observability.PointsAwarded.Add(float64(amount))
	return tx, nil
}

// Debit appends a negative ledger entry, checked against the live balance.
func (s *LedgerService) Debit(userID string, amount int64, reason domain.TransactionReason, ref string) (*domain.PointTransaction, error) {
	return s.db.Debit(userID, amount, reason, ref)
}

// Balance returns the user's current point balance.
func (s *LedgerService) Balance(userID string) (int64, error) {
	return s.db.Balance(userID)
}

// History returns the user's ledger entries, most recent first.
func (s *LedgerService) History(userID string, limit int) ([]domain.PointTransaction, error) {
	return s.db.History(userID, limit)
}

// PointsSummary is the full points block for a user: balance, derived level
// and recent history.
type PointsSummary struct {
	UserID  string                   `json:"user_id"`
	Balance int64                    `json:"balance"`
	Level   domain.LevelInfo         `json:"level"`
	History []domain.PointTransaction `json:"history"`
}

// Summary assembles balance, level and recent history in one read. The level
// is recomputed from the balance, so it can never drift from the ledger.
func (s *LedgerService) Summary(userID string, historyLimit int) (*PointsSummary, error) {
	balance, err := s.db.Balance(userID)
	if err != nil {
		return nil, err
	}
	history, err := s.db.History(userID, historyLimit)
	if err != nil {
		return nil, err
	}
	return &PointsSummary{
		UserID:  userID,
		Balance: balance,
		Level:   domain.LevelOf(balance),
		History: history,
	}, nil
}
