package sqlite

import (
	"testing"

	"github.com/turismocol/turismocol/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func insertTestUser(t *testing.T, db *DB, id string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:                   id,
		Name:                 "Ana María",
		Email:                "ana@example.com",
		PreferredCategories:  []string{"ALOJAMIENTO HOTELERO"},
		PreferredDepartments: []string{"Boyacá"},
		AgeRange:             "26-35",
		TravelStyle:          "cultural",
	}
	if err := db.UpsertUser(u); err != nil {
		t.Fatalf("upsert user: %v", err)
	}
	return u
}

func insertTestDestination(t *testing.T, db *DB, rnt, name, categoria, dep, muni string) {
	t.Helper()
	err := db.InsertDestination(&domain.Destination{
		RNT:          rnt,
		RazonSocial:  name,
		Categoria:    categoria,
		Subcategoria: "GENERAL",
		Nomdep:       dep,
		NombreMuni:   muni,
		Habitaciones: 10,
		Camas:        20,
	})
	if err != nil {
		t.Fatalf("insert destination %s: %v", rnt, err)
	}
}
