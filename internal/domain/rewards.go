package domain

import "time"

// ─── Reward Types ───────────────────────────────────────────────────────────

// Reward is a partner offer users spend points on. Stock is finite:
// current_redemptions ≤ max_redemptions at all times.
type Reward struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	PointsRequired     int64     `json:"points_required"`
	Partner            string    `json:"partner"`
	PartnerContact     string    `json:"partner_contact"`
	MaxRedemptions     int64     `json:"max_redemptions"`
	CurrentRedemptions int64     `json:"current_redemptions"`
	Terms              string    `json:"terms"`
	CreatedAt          time.Time `json:"created_at"`
}

// Availability returns the number of redemptions left.
func (r *Reward) Availability() int64 {
	return r.MaxRedemptions - r.CurrentRedemptions
}

// Redemption links a user to a reward they exchanged points for.
type Redemption struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RewardID  string    `json:"reward_id"`
	CreatedAt time.Time `json:"timestamp"`
}
