package recommend

// ─── Bounded Top-K Selection (Min-Heap) ─────────────────────────────────────
// The ranking pass scans up to catalogScanLimit destinations but returns only
// a page of them. Instead of sorting the whole scan, a bounded binary
// min-heap keeps the k best candidates seen so far: the weakest kept entry
// sits at the root and is evicted when a stronger candidate arrives.
//
// Operations:
//   Push:   O(log k) — sift up, or replace-root + sift down when full
//   Ranked: O(k log k) — drain best-first
//
// Ordering is total (score descending, ascending RNT breaking ties), so the
// selection is deterministic even among equal scores.

type topK struct {
	k     int // 0 or negative means unbounded
	items []Recommendation
}

func newTopK(k int) *topK {
	if k > 0 {
		return &topK{k: k, items: make([]Recommendation, 0, k)}
	}
	return &topK{k: k}
}

// ranksBelow reports whether a is the weaker recommendation.
func ranksBelow(a, b Recommendation) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Destination.RNT > b.Destination.RNT
}

// Push offers a candidate. When the heap is full the candidate either evicts
// the current weakest entry or is discarded.
func (t *topK) Push(r Recommendation) {
	if t.k > 0 && len(t.items) == t.k {
		if !ranksBelow(t.items[0], r) {
			return
		}
		t.items[0] = r
		t.siftDown(0)
		return
	}
	t.items = append(t.items, r)
	t.siftUp(len(t.items) - 1)
}

// Ranked drains the heap and returns the kept entries best-first. The heap is
// empty afterwards.
func (t *topK) Ranked() []Recommendation {
	out := make([]Recommendation, len(t.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = t.items[0]
		last := len(t.items) - 1
		t.items[0] = t.items[last]
		t.items = t.items[:last]
		if last > 0 {
			t.siftDown(0)
		}
	}
	return out
}

func (t *topK) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !ranksBelow(t.items[i], t.items[parent]) {
			return
		}
		t.items[i], t.items[parent] = t.items[parent], t.items[i]
		i = parent
	}
}

func (t *topK) siftDown(i int) {
	n := len(t.items)
	for {
		weakest := i
		if left := 2*i + 1; left < n && ranksBelow(t.items[left], t.items[weakest]) {
			weakest = left
		}
		if right := 2*i + 2; right < n && ranksBelow(t.items[right], t.items[weakest]) {
			weakest = right
		}
		if weakest == i {
			return
		}
		t.items[i], t.items[weakest] = t.items[weakest], t.items[i]
		i = weakest
	}
}
