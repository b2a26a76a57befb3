package naturalness_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/stegram/naturalness"
	"github.com/stretchr/testify/assert"
)

// referenceText builds a synthetic text whose letter counts are
// proportional to the reference English frequencies (10000 samples), so
// its distribution matches the table within rounding.
func referenceText() string {
	freq := map[byte]float64{
		'a': 0.08167, 'b': 0.01492, 'c': 0.02782, 'd': 0.04253, 'e': 0.12702,
		'f': 0.02228, 'g': 0.02015, 'h': 0.06094, 'i': 0.06966, 'j': 0.00153,
		'k': 0.00772, 'l': 0.04025, 'm': 0.02406, 'n': 0.06749, 'o': 0.07507,
		'p': 0.01929, 'q': 0.00095, 'r': 0.05987, 's': 0.06327, 't': 0.09056,
		'u': 0.02758, 'v': 0.00978, 'w': 0.02360, 'x': 0.00150, 'y': 0.01974,
		'z': 0.00074,
	}
	var b strings.Builder
	for c := byte('a'); c <= 'z'; c++ {
		b.WriteString(strings.Repeat(string(c), int(freq[c]*10000+0.5)))
	}
	return b.String()
}

// TestAccept_ShortTextAlwaysPasses verifies texts below the minimum
// alphabetic sample are accepted as natural.
func TestAccept_ShortTextAlwaysPasses(t *testing.T) {
	e := naturalness.New()

	assert.True(t, e.Accept(""), "empty text is too small to judge")
	assert.True(t, e.Accept("zzz qqq xxx"), "9 letters is below the sample floor")
	assert.True(t, e.Accept("42 + 17 = 59 !!!"), "no letters at all")
}

// TestAccept_ReferenceDistribution verifies a text matching the
// reference table passes the key-letter gate.
func TestAccept_ReferenceDistribution(t *testing.T) {
	e := naturalness.New()
	assert.True(t, e.Accept(referenceText()))
}

// TestAccept_DegenerateText verifies a long one-letter text fails the
// gate (every key letter is wildly off its expected frequency).
func TestAccept_DegenerateText(t *testing.T) {
	e := naturalness.New()
	assert.False(t, e.Accept(strings.Repeat("z", 30)))
	assert.False(t, e.Accept(strings.Repeat("e", 30)), "100% 'e' overshoots +50%")
}

// TestScore_Monotonicity pins both ends of the naturality scale: the
// reference distribution scores 1.0 and a one-letter text scores 0.0.
func TestScore_Monotonicity(t *testing.T) {
	e := naturalness.New()

	assert.InDelta(t, 1.0, e.Score(referenceText()), 0.01)
	assert.Equal(t, 0.0, e.Score(strings.Repeat("z", 30)))
}

// TestScore_ShortTextDiagnostic verifies the continuous form also
// treats undersized samples as fully natural.
func TestScore_ShortTextDiagnostic(t *testing.T) {
	e := naturalness.New()
	assert.Equal(t, 1.0, e.Score("hi"))
}

// TestScore_CaseFolded verifies the histogram is case-insensitive.
func TestScore_CaseFolded(t *testing.T) {
	e := naturalness.New()
	lower := referenceText()
	assert.InDelta(t, e.Score(lower), e.Score(strings.ToUpper(lower)), 1e-12)
}

// TestOptions verifies the tunables move the gate as documented.
func TestOptions(t *testing.T) {
	strict := naturalness.New(naturalness.WithMinSample(5))
	assert.False(t, strict.Accept("zzz qqq xxx"), "lowered floor exposes the skew")

	lax := naturalness.New(naturalness.WithMinSample(1000))
	assert.True(t, lax.Accept(strings.Repeat("z", 30)), "raised floor accepts anything short")
}
