package sqlite

import (
	"sort"

	"github.com/goccy/go-json"
)

// ─── Analytics Aggregations ─────────────────────────────────────────────────

// TrendEntry is one row of a trend table.
type TrendEntry struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Trends aggregates interaction volume by the interacting users' stated
// preferences: each of a user's interactions counts once per preferred
// department and per preferred category, and once for their travel style.
type Trends struct {
	DepartmentTrends  []TrendEntry `json:"department_trends"`
	CategoryTrends    []TrendEntry `json:"category_trends"`
	TravelStyleTrends []TrendEntry `json:"travel_style_trends"`
	TotalUsers        int64        `json:"total_users"`
	TotalInteractions int64        `json:"total_interactions"`
}

// ComputeTrends joins interactions with user profiles and expands the
// preference lists into trend tables. Entries are sorted by count descending,
// name ascending for determinism.
func (db *DB) ComputeTrends() (*Trends, error) {
	rows, err := db.sql.Query(`
		SELECT u.preferred_departments, u.preferred_categories, u.travel_style, COUNT(i.id)
		FROM interactions i
		JOIN users u ON u.id = i.user_id
		GROUP BY u.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	depCounts := make(map[string]int64)
	catCounts := make(map[string]int64)
	styleCounts := make(map[string]int64)

	for rows.Next() {
		var depsJSON, catsJSON, style string
		var n int64
		if err := rows.Scan(&depsJSON, &catsJSON, &style, &n); err != nil {
			return nil, err
		}

		var deps, cats []string
		if err := json.Unmarshal([]byte(depsJSON), &deps); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(catsJSON), &cats); err != nil {
			return nil, err
		}

		for _, d := range deps {
			depCounts[d] += n
		}
		for _, c := range cats {
			catCounts[c] += n
		}
		if style != "" {
			styleCounts[style] += n
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	t := &Trends{
		DepartmentTrends:  sortedTrend(depCounts),
		CategoryTrends:    sortedTrend(catCounts),
		TravelStyleTrends: sortedTrend(styleCounts),
	}
	if t.TotalUsers, err = db.CountUsers(); err != nil {
		return nil, err
	}
	if t.TotalInteractions, err = db.CountInteractions(); err != nil {
		return nil, err
	}
	return t, nil
}

func sortedTrend(counts map[string]int64) []TrendEntry {
	out := make([]TrendEntry, 0, len(counts))
	for name, n := range counts {
		out = append(out, TrendEntry{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
