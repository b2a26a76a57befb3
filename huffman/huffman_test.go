package huffman_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/stegram/grammar"
	"github.com/katalvlaran/stegram/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGrammar parses rules or fails the test.
func mustGrammar(t *testing.T, rules string) *grammar.Grammar {
	t.Helper()
	g, err := grammar.ParseString(rules)
	require.NoError(t, err)
	return g
}

// assertPrefixFree fails if any codeword is a prefix of another.
func assertPrefixFree(t *testing.T, table map[string]string) {
	t.Helper()
	for a, ca := range table {
		for b, cb := range table {
			if a == b {
				continue
			}
			assert.False(t, strings.HasPrefix(cb, ca),
				"%q=%q is a prefix of %q=%q", a, ca, b, cb)
		}
	}
}

// TestTable_TwoEqualWeights verifies the canonical two-symbol code:
// first-declared alternative gets '0', second gets '1'.
func TestTable_TwoEqualWeights(t *testing.T) {
	g := mustGrammar(t, `
Start -> CITY
CITY  -> Boston [0.5] | Denver [0.5]
`)
	codec := huffman.NewCodec(g)

	table, err := codec.Table("CITY")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Boston": "0", "Denver": "1"}, table)
}

// TestTable_SkewedWeights verifies the classic 0.5/0.25/0.25 shape:
// the heavy alternative gets the short codeword.
func TestTable_SkewedWeights(t *testing.T) {
	g := mustGrammar(t, `
Start -> VERB
VERB  -> sees [0.5] | chases [0.25] | finds [0.25]
`)
	codec := huffman.NewCodec(g)

	table, err := codec.Table("VERB")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"sees":   "0",
		"chases": "10",
		"finds":  "11",
	}, table)
}

// TestTable_FourEqualWeights verifies deterministic tie-breaking by
// declaration order across a full binary layer.
func TestTable_FourEqualWeights(t *testing.T) {
	g := mustGrammar(t, `
Start -> CITY
CITY  -> a [0.25] | b [0.25] | c [0.25] | d [0.25]
`)
	codec := huffman.NewCodec(g)

	table, err := codec.Table("CITY")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"a": "00",
		"b": "01",
		"c": "10",
		"d": "11",
	}, table)
}

// TestTable_PrefixFreeBijection verifies every multi-alternative symbol
// yields exactly k distinct prefix-free codewords.
func TestTable_PrefixFreeBijection(t *testing.T) {
	g := mustGrammar(t, `
Start -> MOOD
MOOD  -> calm [0.4] | tense [0.3] | giddy [0.2] | grim [0.07] | numb [0.03]
`)
	codec := huffman.NewCodec(g)

	table, err := codec.Table("MOOD")
	require.NoError(t, err)
	assert.Len(t, table, 5, "one codeword per alternative")
	assertPrefixFree(t, table)

	distinct := make(map[string]bool, len(table))
	for _, code := range table {
		assert.NotEmpty(t, code)
		distinct[code] = true
	}
	assert.Len(t, distinct, 5, "no two alternatives share a codeword")
}

// TestTable_SingleAlternative verifies one-alternative symbols map to
// the empty codeword: no choice, zero bits.
func TestTable_SingleAlternative(t *testing.T) {
	g := mustGrammar(t, `
Start -> GREET
GREET -> hello from
`)
	codec := huffman.NewCodec(g)

	table, err := codec.Table("GREET")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"hello from": ""}, table)
}

// TestTable_CacheIdempotent verifies repeated builds return the
// identical table content and that callers cannot poison the cache.
func TestTable_CacheIdempotent(t *testing.T) {
	g := mustGrammar(t, `
Start -> CITY
CITY  -> Boston [0.5] | Denver [0.5]
`)
	codec := huffman.NewCodec(g)

	first, err := codec.Table("CITY")
	require.NoError(t, err)
	first["Boston"] = "tampered"

	second, err := codec.Table("CITY")
	require.NoError(t, err)
	assert.Equal(t, "0", second["Boston"], "cache must be isolated from callers")

	third, err := codec.Table("CITY")
	require.NoError(t, err)
	assert.Equal(t, second, third, "repeated builds must agree by value")
}

// TestTable_UnknownSymbol verifies lookups outside the grammar error.
func TestTable_UnknownSymbol(t *testing.T) {
	g := mustGrammar(t, "Start -> hello")
	codec := huffman.NewCodec(g)

	_, err := codec.Table("CITY")
	assert.ErrorIs(t, err, huffman.ErrUnknownSymbol)
}
