package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turismocol/turismocol/internal/domain"
)

// ─── Engagement endpoints ───────────────────────────────────────────────────
//
// POST /api/users/preferences              — create or replace a user profile
// POST /api/users/interactions             — record a view/like/save action
// GET  /api/points/{userID}                — balance, level, recent history
// GET  /api/rewards                        — reward catalog with availability
// POST /api/rewards/redeem                 — exchange points for a reward
// POST /api/user-destinations              — submit a destination for review
// GET  /api/user-destinations/{userID}     — a user's submissions, any status
// POST /api/user-destinations/{rnt}/approve
// POST /api/user-destinations/{rnt}/reject

// handleSetPreferences creates or replaces a user profile.
// POST /api/users/preferences
func (s *Server) handleSetPreferences(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := decode(r, &user); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	if err := s.tracker.SetPreferences(&user); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "preferences saved",
		"user_id": user.ID,
	})
}

// handleRecordInteraction records a user action on a destination and returns
// the points it earned.
// POST /api/users/interactions
func (s *Server) handleRecordInteraction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
		RNT    string `json:"destination_rnt"`
		Action string `json:"action"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	result, err := s.tracker.Record(req.UserID, req.RNT, domain.Action(req.Action))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handlePointsSummary returns balance, level and recent ledger history.
// GET /api/points/{userID}
func (s *Server) handlePointsSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	summary, err := s.ledger.Summary(userID, s.limits.HistoryLimit)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// handleListRewards returns the reward catalog.
// GET /api/rewards
func (s *Server) handleListRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := s.rewards.List()
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rewards": rewards,
	})
}

// handleRedeemReward exchanges points for a reward.
// POST /api/rewards/redeem
func (s *Server) handleRedeemReward(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"user_id"`
		RewardID string `json:"reward_id"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	result, err := s.rewards.Redeem(req.UserID, req.RewardID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleSubmitDestination stores a user-drafted destination as pending.
// POST /api/user-destinations
func (s *Server) handleSubmitDestination(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string             `json:"user_id"`
		Destination domain.Destination `json:"destination"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	result, err := s.tracker.Submit(req.UserID, &req.Destination)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// handleListSubmissions returns a user's submissions in any status.
// GET /api/user-destinations/{userID}
func (s *Server) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	submissions, err := s.tracker.ListSubmitted(userID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"destinations": submissions,
	})
}

// handleApproveSubmission transitions a pending submission to approved and
// credits the submitter's approval bonus.
// POST /api/user-destinations/{rnt}/approve
func (s *Server) handleApproveSubmission(w http.ResponseWriter, r *http.Request) {
	rnt := chi.URLParam(r, "rnt")
	d, err := s.tracker.Approve(rnt)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"destination": d,
	})
}

// handleRejectSubmission transitions a pending submission to rejected.
// POST /api/user-destinations/{rnt}/reject
func (s *Server) handleRejectSubmission(w http.ResponseWriter, r *http.Request) {
	rnt := chi.URLParam(r, "rnt")
	d, err := s.tracker.Reject(rnt)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"destination": d,
	})
}

// handleRecommendations returns a personalized destination ranking.
// GET /api/recommendations/{userID}?limit
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	recs, err := s.recommender.Recommend(userID, s.pageSize(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":         userID,
		"recommendations": recs,
	})
}
