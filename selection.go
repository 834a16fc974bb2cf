// selection.go: weighted random selection.
//
// What this file does
// --------------------
// Every random choice in the language --- item selection inside a list,
// alternative selection inside a brace block --- reduces to the same
// primitive: given a slice of non-negative weights, draw one index with
// probability proportional to its weight. Implemented with a cumulative
// weight table and a single uniform draw, the textbook approach also used
// by original_source/src/evaluator/mod.rs's own selection routine, ported
// to Go's sort.Search for the lower-bound step instead of a hand-rolled
// binary search.
package loom

import "sort"

// weightedPick draws an index into weights with probability proportional to
// weights[i]/sum(weights). A single-element input returns 0 without
// consuming any randomness, so a list with exactly one item (or a
// ConsumableCursor down to its last item) never perturbs the RNG stream.
func weightedPick(weights []float64, r *rng) int {
	if len(weights) <= 1 {
		return 0
	}
	cumulative := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			w = 0
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return 0
	}
	draw := r.Float64() * total
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > draw })
	if idx >= len(cumulative) {
		idx = len(cumulative) - 1
	}
	return idx
}

// weightedPickUnique draws count distinct indices without replacement, each
// step re-running weightedPick over the remaining pool. Returns a
// RuntimeError if count exceeds len(weights) rather than clamping, since
// selectUnique(n) promises n distinct items or failure.
func weightedPickUnique(weights []float64, count int, r *rng) ([]int, error) {
	if count > len(weights) {
		return nil, newRuntimeError("selectUnique requires at most as many items as the list has")
	}
	pool := make([]int, len(weights))
	poolWeights := make([]float64, len(weights))
	copy(pool, indexRange(len(weights)))
	copy(poolWeights, weights)

	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		pick := weightedPick(poolWeights, r)
		out = append(out, pool[pick])
		pool = append(pool[:pick], pool[pick+1:]...)
		poolWeights = append(poolWeights[:pick], poolWeights[pick+1:]...)
	}
	return out, nil
}

// weightedPickMany draws count indices with replacement, each draw
// independent over the full weight table, so duplicates are expected — the
// way selectMany(n) is meant to work, as opposed to selectUnique(n).
func weightedPickMany(weights []float64, count int, r *rng) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = weightedPick(weights, r)
	}
	return out
}

func indexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
