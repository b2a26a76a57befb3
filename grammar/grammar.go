package grammar

import (
	"fmt"
	"math"
	"strings"
)

// Start returns the designated start symbol name.
func (g *Grammar) Start() string { return g.start }

// Symbols returns all rule symbols in declaration order. The slice is a
// copy; callers may reorder it freely.
func (g *Grammar) Symbols() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// HasSymbol reports whether name is a rule symbol of the grammar.
func (g *Grammar) HasSymbol(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// IsTerminal reports whether token is a terminal, i.e. not a rule symbol.
func (g *Grammar) IsTerminal(token string) bool {
	return !g.HasSymbol(token)
}

// Alternatives returns the ordered weighted alternatives of symbol and
// whether the symbol exists. The slice is a copy.
func (g *Grammar) Alternatives(symbol string) ([]Alternative, bool) {
	alts, ok := g.rules[symbol]
	if !ok {
		return nil, false
	}
	out := make([]Alternative, len(alts))
	copy(out, alts)
	return out, true
}

// Expand splits the given alternative text of symbol into its tokens.
// Returns ErrUnknownSymbol when the symbol does not exist.
func (g *Grammar) Expand(symbol, alternative string) ([]string, error) {
	if !g.HasSymbol(symbol) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return strings.Fields(alternative), nil
}

// Capacity reports the maximum theoretical number of embeddable payload
// bits: Σ over multi-alternative symbols, excluding StaticSymbol, of
// floor(log2(number of alternatives)).
//
// Complexity: O(number of symbols).
func (g *Grammar) Capacity() int {
	total := 0
	for _, symbol := range g.order {
		if symbol == StaticSymbol {
			continue
		}
		if n := len(g.rules[symbol]); n >= 2 {
			total += int(math.Floor(math.Log2(float64(n))))
		}
	}
	return total
}
