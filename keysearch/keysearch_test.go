package keysearch_test

import (
	"testing"

	"github.com/katalvlaran/stegram/keysearch"
	"github.com/katalvlaran/stegram/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extracted returns the bit string a detector would hand over for the
// given secret pair.
func extracted(t *testing.T, message, key string, bits int) string {
	t.Helper()
	b, err := payload.Derive(message, key, bits)
	require.NoError(t, err)
	return b
}

// TestRecover_ExactMessageMatch verifies a key whose derived payload
// matches the extracted bits exactly is reported with confidence 1.0.
func TestRecover_ExactMessageMatch(t *testing.T) {
	bits := extracted(t, "hello", "k1", 32)

	ranked, err := keysearch.Recover(bits, []string{"k1"})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "k1", ranked[0].Key)
	assert.Equal(t, "hello", ranked[0].Message)
	assert.Equal(t, 1.0, ranked[0].Confidence)
	assert.Empty(t, ranked[0].Note)
}

// TestRecover_FallbackAndFiltering pins the heuristic's three outcomes
// against fixed SHA-256 vectors: key "k1" recovers the message, key "k9"
// only clears the narrower key-probe (similarity 0.625 > 0.5), and key
// "zz" clears neither (probe similarity exactly 0.5, not strictly above).
func TestRecover_FallbackAndFiltering(t *testing.T) {
	bits := extracted(t, "hello", "k1", 32)

	ranked, err := keysearch.Recover(bits, []string{"zz", "k9", "k1"})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "k1", ranked[0].Key, "sorted by descending confidence")
	assert.Equal(t, 1.0, ranked[0].Confidence)

	assert.Equal(t, "k9", ranked[1].Key)
	assert.Empty(t, ranked[1].Message)
	assert.Equal(t, keysearch.PossibleKeyNote, ranked[1].Note)
	assert.InDelta(t, 0.625, ranked[1].Confidence, 1e-9)
}

// TestRecover_CustomWordlist verifies WithMessages replaces the built-in
// candidate set and short-circuits on the first clearing message.
func TestRecover_CustomWordlist(t *testing.T) {
	bits := extracted(t, "dawn", "k2", 24)

	ranked, err := keysearch.Recover(bits, []string{"k2"},
		keysearch.WithMessages([]string{"dusk", "dawn"}))
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "dawn", ranked[0].Message, "dusk scores 0.625, below threshold")
	assert.Equal(t, 1.0, ranked[0].Confidence)
}

// TestRecover_RankingOrder verifies mixed outcomes sort by confidence
// with the message hit ahead of the key-probe hit.
func TestRecover_RankingOrder(t *testing.T) {
	bits := extracted(t, "hello", "k1", 32)

	// "q7" clears only the key probe at 0.75; input order puts it first.
	ranked, err := keysearch.Recover(bits, []string{"q7", "k1"})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "k1", ranked[0].Key)
	assert.Equal(t, "q7", ranked[1].Key)
	assert.InDelta(t, 0.75, ranked[1].Confidence, 1e-9)
}

// TestRecover_ShortBitString verifies extracted bits shorter than the
// key-probe width are compared over their full length only.
func TestRecover_ShortBitString(t *testing.T) {
	bits := extracted(t, "hello", "k1", 8)

	ranked, err := keysearch.Recover(bits, []string{"k1"})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "hello", ranked[0].Message, "8 matching bits still clear 0.8")
}

// TestRecover_InvalidInput verifies the sentinel errors.
func TestRecover_InvalidInput(t *testing.T) {
	_, err := keysearch.Recover("", []string{"k1"})
	assert.ErrorIs(t, err, keysearch.ErrEmptyBits)

	_, err = keysearch.Recover("0101", nil)
	assert.ErrorIs(t, err, keysearch.ErrNoKeys)
}

// TestRecover_NoCandidates verifies an empty ranked list (nothing
// cleared either threshold) is a valid outcome, not an error.
func TestRecover_NoCandidates(t *testing.T) {
	bits := extracted(t, "hello", "k1", 32)

	ranked, err := keysearch.Recover(bits, []string{"zz"})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
