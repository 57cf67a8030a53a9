package api

import (
	"net/http"
)

// ─── Catalog & analytics endpoints ──────────────────────────────────────────
//
// GET /api/destinations                    — approved catalog, optional filters
// GET /api/destinations/search             — free-text + filter search
// GET /api/destinations/statistics         — aggregate catalog statistics
// GET /api/analytics/trends                — preference and travel-style trends
// GET /api/analytics/popular-destinations  — most interacted-with destinations

// handleListDestinations returns the approved catalog, optionally narrowed by
// department and category.
// GET /api/destinations?department&category&limit
func (s *Server) handleListDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	department := q.Get("department")
	category := q.Get("category")
	limit := s.pageSize(r)

	var err error
	var out interface{}
	if department == "" && category == "" {
		out, err = s.catalog.List(limit)
	} else {
		out, err = s.catalog.Search("", department, category, limit)
	}
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"destinations": out,
	})
}

// handleSearchDestinations runs the combined free-text and filter search.
// GET /api/destinations/search?query&department&category&limit
func (s *Server) handleSearchDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := s.catalog.Search(q.Get("query"), q.Get("department"), q.Get("category"), s.pageSize(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"destinations": results,
		"count":        len(results),
	})
}

// handleDestinationStatistics returns catalog aggregates.
// GET /api/destinations/statistics
func (s *Server) handleDestinationStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.Statistics()
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleTrends returns aggregate preference and interaction trends.
// GET /api/analytics/trends
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := s.catalog.Trends()
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trends)
}

// handlePopularDestinations ranks destinations by interaction volume.
// GET /api/analytics/popular-destinations?limit
func (s *Server) handlePopularDestinations(w http.ResponseWriter, r *http.Request) {
	popular, err := s.catalog.Popular(s.pageSize(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"destinations": popular,
	})
}
