package sqlite

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/turismocol/turismocol/internal/domain"
)

// ─── Reward & Redemption Tests ──────────────────────────────────────────────

func insertTestReward(t *testing.T, db *DB, id string, points, max, current int64) {
	t.Helper()
	err := db.UpsertReward(&domain.Reward{
		ID:             id,
		Title:          "Noche gratis",
		Description:    "Una noche para dos personas",
		PointsRequired: points,
		Partner:        "Hotel Casa Real",
		PartnerContact: "reservas@casareal.co",
		MaxRedemptions: max,
		CurrentRedemptions: current,
		Terms:          "Válido de domingo a jueves",
	})
	if err != nil {
		t.Fatalf("upsert reward: %v", err)
	}
}

func TestRedeemReward(t *testing.T) {
	db := newTestDB(t)
	insertTestReward(t, db, "rw1", 50, 3, 0)
	db.Credit("u1", 60, domain.ReasonApproval, "")

	redemption, reward, err := db.RedeemReward("u1", "rw1")
	if err != nil {
		t.Fatalf("RedeemReward() error: %v", err)
	}
	if redemption.UserID != "u1" || redemption.RewardID != "rw1" {
		t.Errorf("redemption = %+v", redemption)
	}
	if reward.CurrentRedemptions != 1 {
		t.Errorf("CurrentRedemptions = %d, want 1", reward.CurrentRedemptions)
	}
	if reward.PartnerContact != "reservas@casareal.co" {
		t.Errorf("PartnerContact = %q", reward.PartnerContact)
	}

	balance, _ := db.Balance("u1")
	if balance != 10 {
		t.Errorf("balance after redemption = %d, want 10", balance)
	}
}

func TestRedeemReward_Unknown(t *testing.T) {
	db := newTestDB(t)
	_, _, err := db.RedeemReward("u1", "ghost")
	if !errors.Is(err, domain.ErrUnknownReward) {
		t.Fatalf("err = %v, want ErrUnknownReward", err)
	}
}

func TestRedeemReward_InsufficientBalance_NoPartialState(t *testing.T) {
	db := newTestDB(t)
	insertTestReward(t, db, "rw1", 50, 3, 0)
	db.Credit("u1", 45, domain.ReasonApproval, "")

	_, _, err := db.RedeemReward("u1", "rw1")
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}

	// Before/after snapshot equality: nothing moved.
	balance, _ := db.Balance("u1")
	if balance != 45 {
		t.Errorf("balance = %d, want 45", balance)
	}
	reward, _ := db.GetReward("rw1")
	if reward.CurrentRedemptions != 0 {
		t.Errorf("CurrentRedemptions = %d, want 0", reward.CurrentRedemptions)
	}
	history, _ := db.History("u1", 10)
	if len(history) != 1 {
		t.Errorf("ledger rows = %d, want 1 (the credit only)", len(history))
	}
}

func TestRedeemReward_Exhausted(t *testing.T) {
	db := newTestDB(t)
	insertTestReward(t, db, "rw1", 50, 3, 3)
	db.Credit("u1", 1000, domain.ReasonApproval, "")

	_, _, err := db.RedeemReward("u1", "rw1")
	if !errors.Is(err, domain.ErrRewardExhausted) {
		t.Fatalf("err = %v, want ErrRewardExhausted", err)
	}
	balance, _ := db.Balance("u1")
	if balance != 1000 {
		t.Errorf("balance = %d, want 1000", balance)
	}
}

func TestRedeemReward_ConcurrentSingleStock(t *testing.T) {
	db := newTestDB(t)
	insertTestReward(t, db, "rw1", 50, 1, 0)

	const users = 10
	for i := 0; i < users; i++ {
		db.Credit(fmt.Sprintf("u%d", i), 100, domain.ReasonApproval, "")
	}

	var wg sync.WaitGroup
	results := make(chan error, users)
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := db.RedeemReward(fmt.Sprintf("u%d", i), "rw1")
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var succeeded, exhausted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrRewardExhausted):
			exhausted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("succeeded = %d, want exactly 1", succeeded)
	}
	if exhausted != users-1 {
		t.Errorf("exhausted = %d, want %d", exhausted, users-1)
	}

	reward, _ := db.GetReward("rw1")
	if reward.CurrentRedemptions != 1 {
		t.Errorf("CurrentRedemptions = %d, want 1", reward.CurrentRedemptions)
	}
}

func TestUpsertReward_PreservesRedemptionCounter(t *testing.T) {
	db := newTestDB(t)
	insertTestReward(t, db, "rw1", 50, 3, 0)
	db.Credit("u1", 60, domain.ReasonApproval, "")
	if _, _, err := db.RedeemReward("u1", "rw1"); err != nil {
		t.Fatal(err)
	}

	// Catalog refresh with new copy (counter zero) must not reset stock.
	insertTestReward(t, db, "rw1", 75, 3, 0)

	reward, _ := db.GetReward("rw1")
	if reward.CurrentRedemptions != 1 {
		t.Errorf("CurrentRedemptions = %d, want 1", reward.CurrentRedemptions)
	}
	if reward.PointsRequired != 75 {
		t.Errorf("PointsRequired = %d, want 75", reward.PointsRequired)
	}
}

func TestListRewards_Availability(t *testing.T) {
	db := newTestDB(t)
	insertTestReward(t, db, "rw1", 50, 3, 2)
	insertTestReward(t, db, "rw2", 20, 5, 0)

	rewards, err := db.ListRewards()
	if err != nil {
		t.Fatal(err)
	}
	if len(rewards) != 2 {
		t.Fatalf("len = %d, want 2", len(rewards))
	}
	// Ordered by points required.
	if rewards[0].ID != "rw2" {
		t.Errorf("first reward = %s, want rw2", rewards[0].ID)
	}
	if got := rewards[1].Availability(); got != 1 {
		t.Errorf("Availability = %d, want 1", got)
	}
}
