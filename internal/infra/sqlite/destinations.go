package sqlite

import (
	"database/sql"
	"strings"
	"time"

	"github.com/turismocol/turismocol/internal/domain"
)

// ─── Destination Operations ─────────────────────────────────────────────────

const destinationColumns = `rnt, razon_social, categoria, subcategoria, nomdep, nombre_muni,
	habitaciones, camas, empleados, submitted_by, status, approved_at, created_at`

// InsertDestination adds a destination. The department is stored in its
// canonical form. Returns domain.ErrDuplicateRNT on primary key conflict.
func (db *DB) InsertDestination(d *domain.Destination) error {
	if d.Status == "" {
		d.Status = domain.StatusApproved
	}
	d.Nomdep = domain.CanonicalDepartment(d.Nomdep)

	createdAt := now()
	var approvedAt any
	if d.ApprovedAt != nil {
		approvedAt = d.ApprovedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err := db.sql.Exec(`
		INSERT INTO destinations (`+destinationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, d.RNT, d.RazonSocial, d.Categoria, d.Subcategoria, d.Nomdep, d.NombreMuni,
		d.Habitaciones, d.Camas, d.Empleados, d.SubmittedBy, string(d.Status), approvedAt, createdAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return domain.ErrDuplicateRNT
		}
		return err
	}
	d.CreatedAt = parseTime(createdAt)
	return nil
}

// GetDestination retrieves a destination by RNT regardless of status.
// Returns domain.ErrUnknownDestination if absent.
func (db *DB) GetDestination(rnt string) (*domain.Destination, error) {
	row := db.sql.QueryRow(`SELECT `+destinationColumns+` FROM destinations WHERE rnt = ?`, rnt)
	d, err := scanDestination(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUnknownDestination
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListDestinations returns approved destinations in catalog order:
// department, then municipality, then RNT.
func (db *DB) ListDestinations(limit int) ([]domain.Destination, error) {
	rows, err := db.sql.Query(`
		SELECT `+destinationColumns+` FROM destinations
		WHERE status = 'approved'
		ORDER BY nomdep, nombre_muni, rnt
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDestinations(rows)
}

// SearchDestinations filters approved destinations. The department filter is
// accent and case tolerant and matches in SQL; the free-text query and the
// category filter are case-insensitive substring matches applied in Go, where
// Unicode case folding is correct (sqlite's lower() is ASCII-only and the
// catalog carries accented text like "GUÍA DE TURISMO").
func (db *DB) SearchDestinations(query, department, category string, limit int) ([]domain.Destination, error) {
	where := `status = 'approved'`
	args := []any{}
	if department != "" {
		where += ` AND nomdep = ?`
		args = append(args, domain.CanonicalDepartment(department))
	}

	rows, err := db.sql.Query(`
		SELECT `+destinationColumns+` FROM destinations
		WHERE `+where+`
		ORDER BY nomdep, nombre_muni, rnt
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all, err := scanDestinations(rows)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.ToLower(strings.TrimSpace(category))

	var out []domain.Destination
	for _, d := range all {
		if q != "" && !matchesQuery(&d, q) {
			continue
		}
		if cat != "" && !strings.Contains(strings.ToLower(d.Categoria), cat) {
			continue
		}
		out = append(out, d)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// matchesQuery reports whether the lowercased query is a substring of the
// destination's name, category, subcategory or municipality.
func matchesQuery(d *domain.Destination, q string) bool {
	return strings.Contains(strings.ToLower(d.RazonSocial), q) ||
		strings.Contains(strings.ToLower(d.Categoria), q) ||
		strings.Contains(strings.ToLower(d.Subcategoria), q) ||
		strings.Contains(strings.ToLower(d.NombreMuni), q)
}

// ListSubmittedBy returns all destinations a user submitted, newest first,
// whatever their moderation status.
func (db *DB) ListSubmittedBy(userID string) ([]domain.Destination, error) {
	rows, err := db.sql.Query(`
		SELECT `+destinationColumns+` FROM destinations
		WHERE submitted_by = ?
		ORDER BY created_at DESC, rnt
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDestinations(rows)
}

// SetSubmissionStatus transitions a pending submission to approved or
// rejected. Returns domain.ErrAlreadyModerated when the destination has
// already left the pending state.
func (db *DB) SetSubmissionStatus(rnt string, status domain.SubmissionStatus) (*domain.Destination, error) {
	var approvedAt any
	if status == domain.StatusApproved {
		approvedAt = now()
	}

	res, err := db.sql.Exec(`
		UPDATE destinations SET status = ?, approved_at = ?
		WHERE rnt = ? AND status = 'pending'
	`, string(status), approvedAt, rnt)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Distinguish missing from already-moderated.
		if _, err := db.GetDestination(rnt); err != nil {
			return nil, err
		}
		return nil, domain.ErrAlreadyModerated
	}
	return db.GetDestination(rnt)
}

// DestinationStatistics aggregates the catalog for the statistics endpoint.
type DestinationStatistics struct {
	TotalDestinations int64                       `json:"total_destinations"`
	ByDepartment      map[string]DepartmentStats  `json:"by_department"`
	ByCategory        map[string]int64            `json:"by_category"`
	Accommodation     AccommodationStats          `json:"accommodation_stats"`
}

// DepartmentStats holds per-department aggregates.
type DepartmentStats struct {
	Count int64 `json:"count"`
	Rooms int64 `json:"rooms"`
	Beds  int64 `json:"beds"`
}

// AccommodationStats holds catalog-wide lodging capacity.
type AccommodationStats struct {
	TotalRooms int64 `json:"total_rooms"`
	TotalBeds  int64 `json:"total_beds"`
}

// Statistics computes aggregate counts over the approved catalog.
func (db *DB) Statistics() (*DestinationStatistics, error) {
	stats := &DestinationStatistics{
		ByDepartment: make(map[string]DepartmentStats),
		ByCategory:   make(map[string]int64),
	}

	rows, err := db.sql.Query(`
		SELECT nomdep, COUNT(*), COALESCE(SUM(habitaciones), 0), COALESCE(SUM(camas), 0)
		FROM destinations WHERE status = 'approved'
		GROUP BY nomdep
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var dep string
		var ds DepartmentStats
		if err := rows.Scan(&dep, &ds.Count, &ds.Rooms, &ds.Beds); err != nil {
			return nil, err
		}
		display := (&domain.Destination{Nomdep: dep}).DepartmentDisplay()
		stats.ByDepartment[display] = ds
		stats.TotalDestinations += ds.Count
		stats.Accommodation.TotalRooms += ds.Rooms
		stats.Accommodation.TotalBeds += ds.Beds
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	catRows, err := db.sql.Query(`
		SELECT categoria, COUNT(*) FROM destinations WHERE status = 'approved'
		GROUP BY categoria
	`)
	if err != nil {
		return nil, err
	}
	defer catRows.Close()
	for catRows.Next() {
		var cat string
		var n int64
		if err := catRows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		stats.ByCategory[cat] = n
	}
	return stats, catRows.Err()
}

// ─── Row Scanning ───────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestination(row rowScanner) (*domain.Destination, error) {
	var (
		d           domain.Destination
		status      string
		approvedStr sql.NullString
		createdStr  string
	)
	err := row.Scan(&d.RNT, &d.RazonSocial, &d.Categoria, &d.Subcategoria, &d.Nomdep, &d.NombreMuni,
		&d.Habitaciones, &d.Camas, &d.Empleados, &d.SubmittedBy, &status, &approvedStr, &createdStr)
	if err != nil {
		return nil, err
	}
	d.Status = domain.SubmissionStatus(status)
	if approvedStr.Valid {
		t := parseTime(approvedStr.String)
		d.ApprovedAt = &t
	}
	d.CreatedAt = parseTime(createdStr)
	return &d, nil
}

func scanDestinations(rows *sql.Rows) ([]domain.Destination, error) {
	var out []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}
