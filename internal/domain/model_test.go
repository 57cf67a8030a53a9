package domain

import (
	"errors"
	"testing"
)

// ─── User Validation Tests ──────────────────────────────────────────────────

func TestUserValidate(t *testing.T) {
	valid := User{
		Name:        "Juan Pérez",
		Email:       "juan@example.com",
		AgeRange:    "26-35",
		TravelStyle: "aventura",
	}

	tests := []struct {
		name    string
		mutate  func(*User)
		wantErr bool
	}{
		{"valid profile", func(u *User) {}, false},
		{"empty name", func(u *User) { u.Name = "  " }, true},
		{"bad email", func(u *User) { u.Email = "not-an-email" }, true},
		{"unknown age range", func(u *User) { u.AgeRange = "12-17" }, true},
		{"unknown travel style", func(u *User) { u.TravelStyle = "espacial" }, true},
		{"optional enums empty", func(u *User) { u.AgeRange = ""; u.TravelStyle = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			err := u.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

// ─── Destination Tests ──────────────────────────────────────────────────────

func TestCanonicalDepartment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Boyacá", "BOYACA"},
		{"BOYACÁ", "BOYACA"},
		{"boyaca", "BOYACA"},
		{" Cundinamarca ", "CUNDINAMARCA"},
		{"CUNDINAMARCA", "CUNDINAMARCA"},
	}
	for _, tt := range tests {
		if got := CanonicalDepartment(tt.in); got != tt.want {
			t.Errorf("CanonicalDepartment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDestinationDisplayHelpers(t *testing.T) {
	d := Destination{
		RNT:         "12345",
		RazonSocial: "Hotel Casa Real",
		Categoria:   "ALOJAMIENTO HOTELERO",
		Nomdep:      "BOYACA",
		NombreMuni:  "Villa de Leyva",
	}

	if got := d.DepartmentDisplay(); got != "Boyacá" {
		t.Errorf("DepartmentDisplay() = %q, want %q", got, "Boyacá")
	}
	if got := d.Location(); got != "Villa de Leyva, Boyacá" {
		t.Errorf("Location() = %q, want %q", got, "Villa de Leyva, Boyacá")
	}
	if got := d.CategoryDescription(); got != "Hoteles y hospedajes" {
		t.Errorf("CategoryDescription() = %q, want %q", got, "Hoteles y hospedajes")
	}
}

func TestDestinationValidate(t *testing.T) {
	valid := Destination{
		RNT:         "99001",
		RazonSocial: "Finca El Descanso",
		Categoria:   "ALOJAMIENTO RURAL",
		Nomdep:      "Boyacá",
		NombreMuni:  "Paipa",
	}

	tests := []struct {
		name    string
		mutate  func(*Destination)
		wantErr bool
	}{
		{"valid draft", func(d *Destination) {}, false},
		{"missing rnt", func(d *Destination) { d.RNT = "" }, true},
		{"missing name", func(d *Destination) { d.RazonSocial = " " }, true},
		{"unknown category", func(d *Destination) { d.Categoria = "PARQUE TEMATICO" }, true},
		{"unknown department", func(d *Destination) { d.Nomdep = "ANTIOQUIA" }, true},
		{"missing municipality", func(d *Destination) { d.NombreMuni = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

// ─── Point Value Tests ──────────────────────────────────────────────────────

func TestPointValuesForAction(t *testing.T) {
	pv := DefaultPointValues()
	tests := []struct {
		action Action
		want   int64
	}{
		{ActionView, 1},
		{ActionSave, 2},
		{ActionLike, 3},
		{Action("share"), 0},
	}
	for _, tt := range tests {
		if got := pv.ForAction(tt.action); got != tt.want {
			t.Errorf("ForAction(%q) = %d, want %d", tt.action, got, tt.want)
		}
	}
}

func TestValidAction(t *testing.T) {
	for _, a := range []Action{ActionView, ActionLike, ActionSave} {
		if !ValidAction(a) {
			t.Errorf("ValidAction(%q) = false, want true", a)
		}
	}
	if ValidAction("share") {
		t.Error("ValidAction(share) = true, want false")
	}
}

func TestRewardAvailability(t *testing.T) {
	r := Reward{MaxRedemptions: 10, CurrentRedemptions: 7}
	if got := r.Availability(); got != 3 {
		t.Errorf("Availability() = %d, want 3", got)
	}
}
