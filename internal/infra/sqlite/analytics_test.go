package sqlite

import (
	"testing"

	"github.com/google/uuid"

	"github.com/turismocol/turismocol/internal/domain"
)

// ─── Analytics Tests ────────────────────────────────────────────────────────

func recordTestInteraction(t *testing.T, db *DB, userID, rnt string, action domain.Action) {
	t.Helper()
	err := db.InsertInteraction(&domain.Interaction{
		ID:     uuid.NewString(),
		UserID: userID,
		RNT:    rnt,
		Action: action,
	})
	if err != nil {
		t.Fatalf("insert interaction: %v", err)
	}
}

func TestComputeTrends(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	insertTestUser(t, db, "u1") // prefers Boyacá, hotels, cultural

	u2 := &domain.User{
		ID:                   "u2",
		Name:                 "Carlos",
		Email:                "carlos@example.com",
		PreferredCategories:  []string{"ALOJAMIENTO RURAL"},
		PreferredDepartments: []string{"Cundinamarca"},
		AgeRange:             "36-45",
		TravelStyle:          "aventura",
	}
	if err := db.UpsertUser(u2); err != nil {
		t.Fatal(err)
	}

	recordTestInteraction(t, db, "u1", "10001", domain.ActionView)
	recordTestInteraction(t, db, "u1", "10001", domain.ActionLike)
	recordTestInteraction(t, db, "u2", "20001", domain.ActionView)

	trends, err := db.ComputeTrends()
	if err != nil {
		t.Fatal(err)
	}

	if trends.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", trends.TotalUsers)
	}
	if trends.TotalInteractions != 3 {
		t.Errorf("TotalInteractions = %d, want 3", trends.TotalInteractions)
	}

	// u1 contributes 2 interactions to Boyacá, u2 contributes 1 to
	// Cundinamarca — sorted descending by count.
	if len(trends.DepartmentTrends) != 2 {
		t.Fatalf("department trends = %v", trends.DepartmentTrends)
	}
	if trends.DepartmentTrends[0].Name != "Boyacá" || trends.DepartmentTrends[0].Count != 2 {
		t.Errorf("top department = %+v, want Boyacá/2", trends.DepartmentTrends[0])
	}

	styles := map[string]int64{}
	for _, e := range trends.TravelStyleTrends {
		styles[e.Name] = e.Count
	}
	if styles["cultural"] != 2 || styles["aventura"] != 1 {
		t.Errorf("travel style trends = %v", trends.TravelStyleTrends)
	}
}

func TestPopularDestinations(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	recordTestInteraction(t, db, "u1", "10001", domain.ActionView)
	recordTestInteraction(t, db, "u1", "10001", domain.ActionLike)
	recordTestInteraction(t, db, "u2", "20001", domain.ActionView)
	// Saves do not count toward popularity (view/like only, as the
	// original trends endpoint did).
	recordTestInteraction(t, db, "u2", "20002", domain.ActionSave)

	popular, err := db.PopularDestinations(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(popular) != 2 {
		t.Fatalf("len = %d, want 2", len(popular))
	}
	if popular[0].Destination.RNT != "10001" || popular[0].Count != 2 {
		t.Errorf("top = %s/%d, want 10001/2", popular[0].Destination.RNT, popular[0].Count)
	}
}

func TestUserRoundTrip(t *testing.T) {
	db := newTestDB(t)
	u := insertTestUser(t, db, "u1")

	got, err := db.GetUser("u1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != u.Name || got.Email != u.Email {
		t.Errorf("got %+v, want %+v", got, u)
	}
	if len(got.PreferredCategories) != 1 || got.PreferredCategories[0] != "ALOJAMIENTO HOTELERO" {
		t.Errorf("PreferredCategories = %v", got.PreferredCategories)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not persisted")
	}

	// Preference update keeps identity and replaces fields.
	u.TravelStyle = "familiar"
	if err := db.UpsertUser(u); err != nil {
		t.Fatal(err)
	}
	got, _ = db.GetUser("u1")
	if got.TravelStyle != "familiar" {
		t.Errorf("TravelStyle = %q after update", got.TravelStyle)
	}
}
