// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring of clean architecture — it depends on nothing.
package domain

import (
	"strings"
	"time"
)

// ─── User Types ─────────────────────────────────────────────────────────────

// User holds a traveler's identity and stated preferences.
// Created on first preference save; mutable via preference updates only.
type User struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	PreferredCategories  []string  `json:"preferred_categories"`
	PreferredDepartments []string  `json:"preferred_departments"`
	AgeRange             string    `json:"age_range"`
	TravelStyle          string    `json:"travel_style"`
	CreatedAt            time.Time `json:"created_at"`
}

// AgeRanges are the recognized age buckets for a user profile.
var AgeRanges = []string{"18-25", "26-35", "36-45", "46-55", "56+"}

// TravelStyles are the recognized travel style values.
var TravelStyles = []string{"aventura", "cultural", "relajacion", "familiar", "romantico"}

// Validate checks that required profile fields are present and enums are
// recognized. Returns ErrValidation wrapped with the failing field.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fieldError("name")
	}
	if !strings.Contains(u.Email, "@") {
		return fieldError("email")
	}
	if u.AgeRange != "" && !contains(AgeRanges, u.AgeRange) {
		return fieldError("age_range")
	}
	if u.TravelStyle != "" && !contains(TravelStyles, u.TravelStyle) {
		return fieldError("travel_style")
	}
	return nil
}

// ─── Destination Types ──────────────────────────────────────────────────────

// SubmissionStatus is the moderation state of a user-submitted destination.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Destination is a tourism service provider registered in the RNT
// (Registro Nacional de Turismo). The RNT number is the primary key.
type Destination struct {
	RNT          string `json:"rnt"`
	RazonSocial  string `json:"razon_social"`
	Categoria    string `json:"categoria"`
	Subcategoria string `json:"subcategoria"`
	Nomdep       string `json:"nomdep"`
	NombreMuni   string `json:"nombre_muni"`
	Habitaciones int    `json:"habitaciones,omitempty"`
	Camas        int    `json:"camas,omitempty"`
	Empleados    int    `json:"empleados,omitempty"`

	// Moderation fields. Catalog entries are approved at ingestion;
	// user-submitted destinations start pending.
	SubmittedBy string           `json:"submitted_by,omitempty"`
	Status      SubmissionStatus `json:"status"`
	ApprovedAt  *time.Time       `json:"approved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// categoryDescriptions maps RNT categories to friendlier display text.
var categoryDescriptions = map[string]string{
	"ALOJAMIENTO HOTELERO": "Hoteles y hospedajes",
	"ALOJAMIENTO RURAL":    "Turismo rural y ecológico",
	"AGENCIA DE VIAJES":    "Servicios de viaje y turismo",
	"GUÍA DE TURISMO":      "Guías turísticos profesionales",
	"TRANSPORTE TURÍSTICO": "Transporte especializado",
}

// Categories are the recognized RNT categories.
var Categories = []string{
	"ALOJAMIENTO HOTELERO",
	"ALOJAMIENTO RURAL",
	"AGENCIA DE VIAJES",
	"GUÍA DE TURISMO",
	"TRANSPORTE TURÍSTICO",
}

// departmentDisplay maps canonical department codes to accented display names.
// Departments are stored canonical (unaccented uppercase) and displayed
// accented, so "Boyacá", "BOYACÁ" and "BOYACA" all refer to the same rows.
var departmentDisplay = map[string]string{
	"BOYACA":       "Boyacá",
	"CUNDINAMARCA": "Cundinamarca",
}

// Departments are the canonical department codes covered by the catalog.
var Departments = []string{"BOYACA", "CUNDINAMARCA"}

// CanonicalDepartment normalizes a department name to its stored form:
// uppercase with accents stripped. Unknown departments pass through uppercased.
func CanonicalDepartment(name string) string {
	up := strings.ToUpper(strings.TrimSpace(name))
	replacer := strings.NewReplacer("Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U")
	return replacer.Replace(up)
}

// DepartmentDisplay returns the accented display name for the destination's
// department, falling back to the stored value.
func (d *Destination) DepartmentDisplay() string {
	if disp, ok := departmentDisplay[d.Nomdep]; ok {
		return disp
	}
	return d.Nomdep
}

// Location returns "municipality, department" for display.
func (d *Destination) Location() string {
	return d.NombreMuni + ", " + d.DepartmentDisplay()
}

// CategoryDescription returns the friendly description for the destination's
// category, falling back to the raw category.
func (d *Destination) CategoryDescription() string {
	if desc, ok := categoryDescriptions[d.Categoria]; ok {
		return desc
	}
	return d.Categoria
}

// Validate checks a user-submitted destination draft.
func (d *Destination) Validate() error {
	if strings.TrimSpace(d.RNT) == "" {
		return fieldError("rnt")
	}
	if strings.TrimSpace(d.RazonSocial) == "" {
		return fieldError("razon_social")
	}
	if !contains(Categories, d.Categoria) {
		return fieldError("categoria")
	}
	if _, ok := departmentDisplay[CanonicalDepartment(d.Nomdep)]; !ok {
		return fieldError("nomdep")
	}
	if strings.TrimSpace(d.NombreMuni) == "" {
		return fieldError("nombre_muni")
	}
	return nil
}

// ─── Interaction Types ──────────────────────────────────────────────────────

// Action is a discrete user action against a destination.
type Action string

const (
	ActionView Action = "view"
	ActionLike Action = "like"
	ActionSave Action = "save"
)

// ValidAction reports whether a is a recognized action kind.
func ValidAction(a Action) bool {
	switch a {
	case ActionView, ActionLike, ActionSave:
		return true
	}
	return false
}

// Interaction records one occurrence of a user action against a destination.
// Append-only; repeated views are not deduplicated.
type Interaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	RNT       string    `json:"destination_rnt"`
	Action    Action    `json:"action"`
	CreatedAt time.Time `json:"timestamp"`
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
