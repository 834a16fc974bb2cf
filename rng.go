// rng.go: the seeded randomness source.
//
// What this file does
// --------------------
// A thin wrapper around math/rand's own generator, seeded once per
// evaluation. No ecosystem PRNG package appears anywhere in the example
// pack (daios-ai-msg, aenv, pawscript, gocomicwriter, SIC-lang all reach for
// math/rand wherever they need randomness at all), so this stays on the
// standard library by necessity rather than preference; see DESIGN.md.
// math/rand rather than math/rand/v2 to keep NewSource(seed)'s exact stream
// reproducible across Go versions, since the same seed must always render
// the same text.
package loom

import "math/rand"

type rng struct {
	r *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{r: rand.New(rand.NewSource(seed))}
}

func (g *rng) Float64() float64 { return g.r.Float64() }
func (g *rng) Intn(n int) int   { return g.r.Intn(n) }
