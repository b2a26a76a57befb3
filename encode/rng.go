// Package encode - RNG utilities for the weighted random fallback.
//
// Determinism policy: same seed ⇒ identical derivations across platforms.
// A single *rand.Rand is created per Encode call and reused across retry
// attempts, so attempt k always sees the same stream position regardless
// of how earlier attempts consumed it. math/rand.Rand is not
// goroutine-safe; it is never shared across calls.
package encode

import (
	"math/rand"

	"github.com/katalvlaran/stegram/grammar"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// weightedChoice selects one alternative proportionally to its weight.
// Weights are assumed renormalized by the grammar; a zero total falls
// back to the first alternative to keep the derivation total.
//
// Complexity: O(len(alts)).
func weightedChoice(alts []grammar.Alternative, rng *rand.Rand) grammar.Alternative {
	total := 0.0
	for _, a := range alts {
		total += a.Weight
	}
	if total <= 0 {
		return alts[0]
	}
	target := rng.Float64() * total
	acc := 0.0
	for _, a := range alts {
		acc += a.Weight
		if target < acc {
			return a
		}
	}
	return alts[len(alts)-1]
}
