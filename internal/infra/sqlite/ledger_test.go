package sqlite

import (
	"errors"
	"sync"
	"testing"

	"github.com/turismocol/turismocol/internal/domain"
)

// ─── Ledger Tests ───────────────────────────────────────────────────────────

func TestCredit(t *testing.T) {
	db := newTestDB(t)

	tx, err := db.Credit("u1", 10, domain.ReasonView, "i1")
	if err != nil {
		t.Fatalf("Credit() error: %v", err)
	}
	if tx.Delta != 10 {
		t.Errorf("Delta = %d, want 10", tx.Delta)
	}
	if tx.ID == 0 {
		t.Error("transaction id not assigned")
	}

	balance, err := db.Balance("u1")
	if err != nil {
		t.Fatal(err)
	}
	if balance != 10 {
		t.Errorf("Balance = %d, want 10", balance)
	}
}

func TestCredit_InvalidAmount(t *testing.T) {
	db := newTestDB(t)

	for _, amount := range []int64{0, -5} {
		if _, err := db.Credit("u1", amount, domain.ReasonLike, ""); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("Credit(%d) = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestDebit_InsufficientBalance(t *testing.T) {
	db := newTestDB(t)
	db.Credit("u1", 45, domain.ReasonLike, "")

	_, err := db.Debit("u1", 50, domain.ReasonRedemption, "r1")
	if !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("Debit() = %v, want ErrInsufficientBalance", err)
	}

	balance, _ := db.Balance("u1")
	if balance != 45 {
		t.Errorf("balance changed on failed debit: %d, want 45", balance)
	}
}

func TestDebit(t *testing.T) {
	db := newTestDB(t)
	db.Credit("u1", 100, domain.ReasonApproval, "")

	tx, err := db.Debit("u1", 30, domain.ReasonRedemption, "r1")
	if err != nil {
		t.Fatalf("Debit() error: %v", err)
	}
	if tx.Delta != -30 {
		t.Errorf("Delta = %d, want -30", tx.Delta)
	}

	balance, _ := db.Balance("u1")
	if balance != 70 {
		t.Errorf("Balance = %d, want 70", balance)
	}
}

func TestBalance_UnknownUserIsZero(t *testing.T) {
	db := newTestDB(t)
	balance, err := db.Balance("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if balance != 0 {
		t.Errorf("Balance = %d, want 0", balance)
	}
}

func TestBalance_EqualsHistorySum(t *testing.T) {
	db := newTestDB(t)
	db.Credit("u1", 10, domain.ReasonView, "")
	db.Credit("u1", 3, domain.ReasonLike, "")
	db.Credit("u1", 2, domain.ReasonSave, "")
	db.Debit("u1", 5, domain.ReasonRedemption, "r1")
	db.Credit("u2", 99, domain.ReasonApproval, "")

	history, err := db.History("u1", 100)
	if err != nil {
		t.Fatal(err)
	}
	var sum int64
	for _, tx := range history {
		sum += tx.Delta
	}

	balance, _ := db.Balance("u1")
	if balance != sum {
		t.Errorf("Balance = %d, history sum = %d", balance, sum)
	}
	if balance != 10 {
		t.Errorf("Balance = %d, want 10", balance)
	}
}

func TestHistory_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	db.Credit("u1", 1, domain.ReasonView, "")
	db.Credit("u1", 2, domain.ReasonSave, "")
	db.Credit("u1", 3, domain.ReasonLike, "")

	history, err := db.History("u1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
	if history[0].Delta != 3 || history[1].Delta != 2 {
		t.Errorf("history order = [%d, %d], want [3, 2]", history[0].Delta, history[1].Delta)
	}
	if history[0].ID <= history[1].ID {
		t.Errorf("ids not descending: %d then %d", history[0].ID, history[1].ID)
	}
}

func TestLedger_ConcurrentDebitsNeverGoNegative(t *testing.T) {
	db := newTestDB(t)
	db.Credit("u1", 50, domain.ReasonApproval, "")

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := db.Debit("u1", 10, domain.ReasonRedemption, "")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientBalance):
		default:
			t.Errorf("unexpected debit error: %v", err)
		}
	}

	if succeeded != 5 {
		t.Errorf("succeeded = %d, want 5", succeeded)
	}
	balance, _ := db.Balance("u1")
	if balance != 0 {
		t.Errorf("final balance = %d, want 0", balance)
	}
	if balance < 0 {
		t.Error("balance went negative under concurrent debits")
	}
}
