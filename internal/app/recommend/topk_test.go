package recommend

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/turismocol/turismocol/internal/domain"
)

func rec(rnt string, score float64) Recommendation {
	return Recommendation{Destination: domain.Destination{RNT: rnt}, Score: score}
}

func rankedRNTs(t *topK) []string {
	var out []string
	for _, r := range t.Ranked() {
		out = append(out, r.Destination.RNT)
	}
	return out
}

func TestTopK_KeepsBest(t *testing.T) {
	h := newTopK(2)
	h.Push(rec("a", 1.0))
	h.Push(rec("b", 5.0))
	h.Push(rec("c", 3.0))
	h.Push(rec("d", 0.5))

	got := rankedRNTs(h)
	want := []string{"b", "c"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Ranked() = %v, want %v", got, want)
	}
}

func TestTopK_TiesBreakByRNT(t *testing.T) {
	h := newTopK(3)
	h.Push(rec("30", 2.0))
	h.Push(rec("10", 2.0))
	h.Push(rec("20", 2.0))
	h.Push(rec("05", 2.0))

	got := rankedRNTs(h)
	want := []string{"05", "10", "20"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ranked() = %v, want %v", got, want)
		}
	}
}

func TestTopK_UnboundedReturnsAllSorted(t *testing.T) {
	h := newTopK(0)
	for i := 0; i < 10; i++ {
		h.Push(rec(fmt.Sprintf("%02d", i), float64(i%3)))
	}
	got := h.Ranked()
	if len(got) != 10 {
		t.Fatalf("Ranked() length = %d, want 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if ranksBelow(got[i-1], got[i]) {
			t.Fatalf("out of order at %d: %v before %v", i, got[i-1], got[i])
		}
	}
}

func TestTopK_MatchesFullSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var all []Recommendation
	h := newTopK(5)
	for i := 0; i < 200; i++ {
		r := rec(fmt.Sprintf("%03d", i), float64(rng.Intn(20)))
		all = append(all, r)
		h.Push(r)
	}

	sort.Slice(all, func(i, j int) bool { return ranksBelow(all[j], all[i]) })

	got := h.Ranked()
	if len(got) != 5 {
		t.Fatalf("Ranked() length = %d, want 5", len(got))
	}
	for i := 0; i < 5; i++ {
		if got[i].Destination.RNT != all[i].Destination.RNT {
			t.Errorf("position %d: got %s (%.1f), want %s (%.1f)",
				i, got[i].Destination.RNT, got[i].Score,
				all[i].Destination.RNT, all[i].Score)
		}
	}
}
