package loom

import "testing"

func TestWeightedPickSingleElementNoDraw(t *testing.T) {
	r := newRNG(1)
	before := r.Float64()
	r2 := newRNG(1)
	idx := weightedPick([]float64{5}, r2)
	if idx != 0 {
		t.Fatalf("idx = %d, want 0", idx)
	}
	// The RNG handed to weightedPick should still produce the seed's first
	// draw afterwards, proving the single-element case consumed nothing.
	after := r2.Float64()
	if before != after {
		t.Fatalf("single-element weightedPick consumed randomness")
	}
}

func TestWeightedPickRespectsZeroTotal(t *testing.T) {
	idx := weightedPick([]float64{0, 0, 0}, newRNG(1))
	if idx != 0 {
		t.Errorf("idx = %d, want 0 for all-zero weights", idx)
	}
}

func TestWeightedPickDistribution(t *testing.T) {
	weights := []float64{1, 3}
	counts := make([]int, 2)
	r := newRNG(42)
	const trials = 20000
	for i := 0; i < trials; i++ {
		counts[weightedPick(weights, r)]++
	}
	ratio := float64(counts[1]) / float64(counts[0])
	if ratio < 2.5 || ratio > 3.5 {
		t.Errorf("observed ratio %.2f, want roughly 3.0 (weights 1:3)", ratio)
	}
}

func TestWeightedPickUniqueDistinctIndices(t *testing.T) {
	weights := []float64{1, 1, 1, 1}
	idxs, err := weightedPickUnique(weights, 3, newRNG(7))
	if err != nil {
		t.Fatalf("weightedPickUnique error: %v", err)
	}
	seen := map[int]bool{}
	for _, idx := range idxs {
		if seen[idx] {
			t.Fatalf("duplicate index %d in %v", idx, idxs)
		}
		seen[idx] = true
	}
	if len(idxs) != 3 {
		t.Fatalf("got %d indices, want 3", len(idxs))
	}
}

func TestWeightedPickUniqueErrorsWhenCountExceedsLength(t *testing.T) {
	_, err := weightedPickUnique([]float64{1, 1}, 10, newRNG(1))
	if err == nil {
		t.Fatal("expected an error when count exceeds the number of weights, not a clamp")
	}
}

func TestWeightedPickManyAllowsDuplicates(t *testing.T) {
	weights := []float64{1, 1}
	r := newRNG(1)
	sawDuplicate := false
	for i := 0; i < 200; i++ {
		idxs := weightedPickMany(weights, 10, r)
		if len(idxs) != 10 {
			t.Fatalf("got %d indices, want 10", len(idxs))
		}
		seen := map[int]bool{}
		for _, idx := range idxs {
			if seen[idx] {
				sawDuplicate = true
				break
			}
			seen[idx] = true
		}
		if sawDuplicate {
			break
		}
	}
	if !sawDuplicate {
		t.Error("weightedPickMany(weights, 10, ...) over 2 weights never produced a duplicate; expected draws with replacement")
	}
}
