package domain

import "time"

// ─── Points Ledger Types ────────────────────────────────────────────────────
// The ledger is append-only. A user's balance is always the sum of their
// transaction deltas — never stored as a separately mutable field, so the
// displayed balance cannot drift from the ledger.

// TransactionReason is the business reason for a ledger entry.
type TransactionReason string

const (
	ReasonView       TransactionReason = "view"
	ReasonLike       TransactionReason = "like"
	ReasonSave       TransactionReason = "save"
	ReasonSubmission TransactionReason = "submission"
	ReasonApproval   TransactionReason = "approval"
	ReasonRedemption TransactionReason = "redemption"
)

// PointTransaction is a single row in the points ledger. The autoincrement ID
// doubles as the ordering tie-break for entries sharing a timestamp.
type PointTransaction struct {
	ID        int64             `json:"id"`
	UserID    string            `json:"user_id"`
	Delta     int64             `json:"delta"`
	Reason    TransactionReason `json:"reason"`
	Ref       string            `json:"ref,omitempty"`
	CreatedAt time.Time         `json:"timestamp"`
}

// PointValues fixes how many points each event is worth. The like/save split
// varied across client revisions; these defaults settle it (like=3, save=2)
// and are overridable via configuration.
type PointValues struct {
	View            int64 `toml:"view"`
	Save            int64 `toml:"save"`
	Like            int64 `toml:"like"`
	SubmissionBonus int64 `toml:"submission_bonus"`
	ApprovalBonus   int64 `toml:"approval_bonus"`
}

// DefaultPointValues returns the standard point table.
func DefaultPointValues() PointValues {
	return PointValues{
		View:            1,
		Save:            2,
		Like:            3,
		SubmissionBonus: 10,
		ApprovalBonus:   25,
	}
}

// ForAction returns the point value of an action, 0 for unrewarded kinds.
func (p PointValues) ForAction(a Action) int64 {
	switch a {
	case ActionView:
		return p.View
	case ActionSave:
		return p.Save
	case ActionLike:
		return p.Like
	}
	return 0
}
