// cursor.go: ConsumableCursor, the draw-without-replacement selection state.
//
// What this file does
// --------------------
// consumableList() hands back a cursor over a list's items so that repeated
// calls to .next() draw distinct items, weighted, without replacement,
// until the list is empty. The three states --- Fresh (no draws yet),
// Partial (some remain), Exhausted (none remain) --- are tracked explicitly
// rather than inferred from a remaining-count check, the same way
// daios-ai-msg's own small state-machine types favor an explicit enum field
// over ad hoc zero-value checks.
package loom

type CursorState int

const (
	CursorFresh CursorState = iota
	CursorPartial
	CursorExhausted
)

// ConsumableCursor draws items from a fixed list without replacement. The
// remaining items and their original weights shrink on every draw; weights
// among the remaining items keep their relative proportions.
type ConsumableCursor struct {
	List      *CompiledList
	Remaining []int // indices into List.Items not yet drawn
	State     CursorState
}

func (*ConsumableCursor) value()       {}
func (*ConsumableCursor) Kind() string { return "cursor" }

func newConsumableCursor(list *CompiledList) *ConsumableCursor {
	rem := make([]int, len(list.Items))
	for i := range list.Items {
		rem[i] = i
	}
	state := CursorFresh
	if len(rem) == 0 {
		state = CursorExhausted
	}
	return &ConsumableCursor{List: list, Remaining: rem, State: state}
}

// next draws one item, weighted among the items still remaining, and
// advances the cursor's state. Returns an error once the cursor is
// Exhausted; callers must check State (or the returned error) before
// relying on the result.
func (c *ConsumableCursor) next(r *rng) (*CompiledItem, error) {
	if c.State == CursorExhausted {
		return nil, newRuntimeError("consumable list is exhausted")
	}
	weights := make([]float64, len(c.Remaining))
	for i, idx := range c.Remaining {
		weights[i] = c.List.Items[idx].Weight
	}
	pick := weightedPick(weights, r)
	chosenIdx := c.Remaining[pick]
	c.Remaining = append(c.Remaining[:pick], c.Remaining[pick+1:]...)
	if len(c.Remaining) == 0 {
		c.State = CursorExhausted
	} else {
		c.State = CursorPartial
	}
	return c.List.Items[chosenIdx], nil
}
