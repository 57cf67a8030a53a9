// Package recommend ranks catalog destinations for a user by combining
// stated preferences with behavioral affinity from the interaction log.
// Pure read path: no side effects, no caching, deterministic output.
package recommend

import (
	"github.com/turismocol/turismocol/internal/domain"
	"github.com/turismocol/turismocol/internal/infra/sqlite"
)

// Scoring weights. Affinity is capped so one heavily-interacted category
// cannot dominate the stated preferences.
const (
	categoryWeight   = 3.0
	departmentWeight = 2.0
	affinityWeight   = 0.5
	affinityCap      = 6

	// Destinations the user already liked or saved stay eligible but are
	// deprioritized by a fixed penalty to favor novelty.
	noveltyPenalty = 1.0
)

// Recommendation is one ranked result with its score and a human-readable
// explanation of the dominant signal.
type Recommendation struct {
	Destination domain.Destination `json:"destination"`
	Score       float64            `json:"score"`
	Reason      string             `json:"recommendation_reason"`
}

// Engine produces personalized destination rankings.
type Engine struct {
	db *sqlite.DB
}

// NewEngine creates a recommendation engine.
func NewEngine(db *sqlite.DB) *Engine {
	return &Engine{db: db}
}

// catalogScanLimit bounds how much of the catalog one ranking pass considers.
const catalogScanLimit = 2000

// Recommend returns up to limit destinations ranked by score, ties broken by
// ascending RNT. Repeated calls over the same profile, history and catalog
// snapshot return the same ordered list.
func (e *Engine) Recommend(userID string, limit int) ([]Recommendation, error) {
	user, err := e.db.GetUser(userID)
	if err != nil {
		return nil, err
	}
	catalog, err := e.db.ListDestinations(catalogScanLimit)
	if err != nil {
		return nil, err
	}
	history, err := e.db.ListInteractionsByUser(userID)
	if err != nil {
		return nil, err
	}

	signal := buildSignal(e.db, catalog, history)

	prefCats := make(map[string]bool, len(user.PreferredCategories))
	for _, c := range user.PreferredCategories {
		prefCats[c] = true
	}
	prefDeps := make(map[string]bool, len(user.PreferredDepartments))
	for _, d := range user.PreferredDepartments {
		prefDeps[domain.CanonicalDepartment(d)] = true
	}

	ranking := newTopK(limit)
	for _, d := range catalog {
		var score float64
		catMatch := prefCats[d.Categoria]
		depMatch := prefDeps[d.Nomdep]
		if catMatch {
			score += categoryWeight
		}
		if depMatch {
			score += departmentWeight
		}

		affinity := signal.categoryAffinity[d.Categoria] + signal.departmentAffinity[d.Nomdep]
		if affinity > affinityCap {
			affinity = affinityCap
		}
		score += affinityWeight * float64(affinity)

		seen := signal.engaged[d.RNT]
		if seen {
			score -= noveltyPenalty
		}

		ranking.Push(Recommendation{
			Destination: d,
			Score:       score,
			Reason:      reasonFor(catMatch, depMatch, affinity, seen),
		})
	}
	return ranking.Ranked(), nil
}

// interactionSignal is the behavioral part of the score, derived from the
// user's like/save history.
type interactionSignal struct {
	categoryAffinity   map[string]int
	departmentAffinity map[string]int
	engaged            map[string]bool // RNTs the user already liked or saved
}

func buildSignal(db *sqlite.DB, catalog []domain.Destination, history []domain.Interaction) interactionSignal {
	byRNT := make(map[string]*domain.Destination, len(catalog))
	for i := range catalog {
		byRNT[catalog[i].RNT] = &catalog[i]
	}

	sig := interactionSignal{
		categoryAffinity:   make(map[string]int),
		departmentAffinity: make(map[string]int),
		engaged:            make(map[string]bool),
	}
	for _, in := range history {
		if in.Action != domain.ActionLike && in.Action != domain.ActionSave {
			continue
		}
		sig.engaged[in.RNT] = true

		d := byRNT[in.RNT]
		if d == nil {
			// Interacted destination outside the approved catalog window;
			// fall back to a direct lookup and skip if it is gone.
			loaded, err := db.GetDestination(in.RNT)
			if err != nil {
				continue
			}
			d = loaded
		}
		sig.categoryAffinity[d.Categoria]++
		sig.departmentAffinity[d.Nomdep]++
	}
	return sig
}

// reasonFor summarizes the dominant matching signal.
func reasonFor(catMatch, depMatch bool, affinity int, seen bool) string {
	switch {
	case catMatch && depMatch:
		return "matches your preferred category and department"
	case catMatch:
		return "matches your preferred category"
	case depMatch:
		return "matches your preferred department"
	case affinity > 0 && seen:
		return "you showed interest in this destination before"
	case affinity > 0:
		return "similar to destinations you liked"
	default:
		return "popular destination in the region"
	}
}
