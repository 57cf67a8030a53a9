// Package catalog implements the read paths over the destination catalog:
// listing, search, statistics and interaction analytics. No mutations.
package catalog

import (
	"github.com/turismocol/turismocol/internal/domain"
	"github.com/turismocol/turismocol/internal/infra/sqlite"
)

// Service answers catalog queries.
type Service struct {
	db *sqlite.DB
}

// NewService creates a catalog service.
func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// List returns approved destinations in catalog order (department,
// municipality, RNT).
func (s *Service) List(limit int) ([]domain.Destination, error) {
	return s.db.ListDestinations(limit)
}

// Search filters approved destinations. The free-text query matches
// name, category, subcategory and municipality case-insensitively; the
// department and category filters are ANDed with it. Results keep catalog
// order, so repeated identical searches are stable.
func (s *Service) Search(query, department, category string, limit int) ([]domain.Destination, error) {
	return s.db.SearchDestinations(query, department, category, limit)
}

// Statistics aggregates the approved catalog by department and category.
func (s *Service) Statistics() (*sqlite.DestinationStatistics, error) {
	return s.db.Statistics()
}

// Trends aggregates interaction volume against user preference profiles.
func (s *Service) Trends() (*sqlite.Trends, error) {
	return s.db.ComputeTrends()
}

// Popular ranks destinations by view/like interaction volume.
func (s *Service) Popular(limit int) ([]sqlite.PopularDestination, error) {
	return s.db.PopularDestinations(limit)
}
