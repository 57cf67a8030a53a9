package engagement

import (
	"github.com/google/uuid"

	"github.com/turismocol/turismocol/internal/domain"
	"github.com/turismocol/turismocol/internal/infra/observability"
	"github.com/turismocol/turismocol/internal/infra/sqlite"
)

// TrackerService records user actions against destinations and runs the
// explicit two-step reward pipeline: append the interaction, then evaluate
// the point-value table and credit the ledger. Keeping the steps separate
// lets the point table evolve independently of the interaction schema.
type TrackerService struct {
	db     *sqlite.DB
	ledger *LedgerService
	points domain.PointValues
}

// NewTrackerService creates a tracker using the given point-value table.
func NewTrackerService(db *sqlite.DB, ledger *LedgerService, points domain.PointValues) *TrackerService {
	return &TrackerService{db: db, ledger: ledger, points: points}
}

// SetPreferences validates and stores a user profile. Existing profiles are
// replaced; the ledger and interaction history are untouched.
func (s *TrackerService) SetPreferences(u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := u.Validate(); err != nil {
		return err
	}
	return s.db.UpsertUser(u)
}

// RecordResult pairs the stored interaction with the points it earned.
type RecordResult struct {
	Interaction  *domain.Interaction `json:"interaction"`
	PointsEarned int64               `json:"points_earned"`
}

// Record validates and appends an interaction, then credits the action's
// point value when nonzero.
func (s *TrackerService) Record(userID, rnt string, action domain.Action) (*RecordResult, error) {
	if !domain.ValidAction(action) {
		return nil, domain.ErrInvalidAction
	}
	if _, err := s.db.GetUser(userID); err != nil {
		return nil, err
	}
	if _, err := s.db.GetDestination(rnt); err != nil {
		return nil, err
	}

	interaction := &domain.Interaction{
		ID:     uuid.NewString(),
		UserID: userID,
		RNT:    rnt,
		Action: action,
	}
	if err := s.db.InsertInteraction(interaction); err != nil {
		return nil, err
	}
	observability.InteractionsTotal.WithLabelValues(string(action)).Inc()

	result := &RecordResult{Interaction: interaction}
	if earned := s.points.ForAction(action); earned > 0 {
		if _, err := s.ledger.Credit(userID, earned, domain.TransactionReason(action), interaction.ID); err != nil {
			return nil, err
		}
		result.PointsEarned = earned
	}
	return result, nil
}

// SubmitResult pairs a pending submission with its submission bonus.
type SubmitResult struct {
	Destination  *domain.Destination `json:"destination"`
	PointsEarned int64               `json:"points_earned"`
}

// Submit stores a user-drafted destination as pending and credits the
// submission bonus unconditionally.
func (s *TrackerService) Submit(userID string, draft *domain.Destination) (*SubmitResult, error) {
	if _, err := s.db.GetUser(userID); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	draft.SubmittedBy = userID
	draft.Status = domain.StatusPending
	draft.ApprovedAt = nil
	if err := s.db.InsertDestination(draft); err != nil {
		return nil, err
	}
	observability.SubmissionsTotal.WithLabelValues("pending").Inc()

	result := &SubmitResult{Destination: draft}
	if bonus := s.points.SubmissionBonus; bonus > 0 {
		if _, err := s.ledger.Credit(userID, bonus, domain.ReasonSubmission, draft.RNT); err != nil {
			return nil, err
		}
		result.PointsEarned = bonus
	}
	return result, nil
}

// Approve is the moderation collaborator's entrypoint: it transitions a
// pending submission to approved and credits the approval bonus to the
// submitter. Re-approving is rejected, so the bonus is paid exactly once.
func (s *TrackerService) Approve(rnt string) (*domain.Destination, error) {
	d, err := s.db.SetSubmissionStatus(rnt, domain.StatusApproved)
	if err != nil {
		return nil, err
	}
	observability.SubmissionsTotal.WithLabelValues("approved").Inc()

	if bonus := s.points.ApprovalBonus; bonus > 0 && d.SubmittedBy != "" {
		if _, err := s.ledger.Credit(d.SubmittedBy, bonus, domain.ReasonApproval, rnt); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Reject transitions a pending submission to rejected. No points move.
func (s *TrackerService) Reject(rnt string) (*domain.Destination, error) {
	d, err := s.db.SetSubmissionStatus(rnt, domain.StatusRejected)
	if err != nil {
		return nil, err
	}
	observability.SubmissionsTotal.WithLabelValues("rejected").Inc()
	return d, nil
}

// ListSubmitted returns the destinations a user has submitted, any status.
func (s *TrackerService) ListSubmitted(userID string) ([]domain.Destination, error) {
	if _, err := s.db.GetUser(userID); err != nil {
		return nil, err
	}
	return s.db.ListSubmittedBy(userID)
}
