package engagement

import (
	"github.com/turismocol/turismocol/internal/domain"
	"github.com/turismocol/turismocol/internal/infra/observability"
	"github.com/turismocol/turismocol/internal/infra/sqlite"
)

// RewardService exposes the rewards catalog and executes redemptions.
type RewardService struct {
	db *sqlite.DB
}

// NewRewardService creates a reward service.
func NewRewardService(db *sqlite.DB) *RewardService {
	return &RewardService{db: db}
}

// List returns the reward catalog; availability is computed per reward.
func (s *RewardService) List() ([]domain.Reward, error) {
	return s.db.ListRewards()
}

// RedeemResult is returned on a successful redemption. PartnerContact is the
// string the caller displays so the user can claim the reward.
type RedeemResult struct {
	Redemption     *domain.Redemption `json:"redemption"`
	Reward         *domain.Reward     `json:"reward"`
	PartnerContact string             `json:"partner_contact"`
	NewBalance     int64              `json:"new_balance"`
}

// Redeem exchanges points for a reward. The stock guard, the balance-checked
// debit, the stock increment and the redemption record commit as one storage
// transaction — a failure at any step is a pure no-op.
func (s *RewardService) Redeem(userID, rewardID string) (*RedeemResult, error) {
	redemption, reward, err := s.db.RedeemReward(userID, rewardID)
	if err != nil {
		observability.RedemptionsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	observability.RedemptionsTotal.WithLabelValues("success").Inc()

	balance, err := s.db.Balance(userID)
	if err != nil {
		return nil, err
	}
	return &RedeemResult{
		Redemption:     redemption,
		Reward:         reward,
		PartnerContact: reward.PartnerContact,
		NewBalance:     balance,
	}, nil
}
