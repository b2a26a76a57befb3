// Package encode defines options, results and sentinel errors for the
// derivation/retry encoder.
package encode

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/stegram/naturalness"
)

// Sentinel errors for encoding.
var (
	// ErrGrammarNil is returned if a nil grammar pointer is passed.
	ErrGrammarNil = errors.New("encode: grammar is nil")

	// ErrEmptyPayload is returned when the payload bit string is empty.
	ErrEmptyPayload = errors.New("encode: payload is empty")

	// ErrBadPayload is returned when the payload contains characters
	// other than '0' and '1'.
	ErrBadPayload = errors.New("encode: payload must be a binary string")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("encode: invalid option supplied")
)

// DefaultMaxAttempts bounds the naturalness retry loop.
const DefaultMaxAttempts = 15

// Option configures encoding via functional arguments. An invalid value
// is recorded internally and surfaced as ErrOptionViolation when Encode
// is invoked.
type Option func(*Options)

// Options holds parameters customizing one Encode call.
type Options struct {
	// Seed feeds the deterministic random fallback. Seed 0 selects a
	// fixed default seed; production callers may pass entropy.
	Seed int64

	// MaxAttempts is the hard ceiling on naturalness retries.
	MaxAttempts int

	// MaxBits, if > 0, caps how many payload bits may be consumed.
	// A value of 0 disables the cap.
	MaxBits int

	// Evaluator gates generated text; naturalness defaults when nil.
	Evaluator *naturalness.Evaluator

	// Logger receives non-fatal diagnostics (retry exhaustion).
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default seed policy,
// MaxAttempts=15, no bit cap, a default Evaluator and slog.Default().
func DefaultOptions() Options {
	return Options{
		Seed:        0,
		MaxAttempts: DefaultMaxAttempts,
		MaxBits:     0,
		Evaluator:   naturalness.New(),
		Logger:      slog.Default(),
	}
}

// WithSeed fixes the random-fallback seed for reproducible derivations.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxAttempts overrides the retry ceiling.
//
//	n > 0: retry up to n attempts
//	n ≤ 0: invalid option → ErrOptionViolation
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxAttempts = n
	}
}

// WithMaxBits caps consumed payload bits; 0 disables the cap.
func WithMaxBits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxBits = n
	}
}

// WithEvaluator substitutes the naturalness gate.
func WithEvaluator(e *naturalness.Evaluator) Option {
	return func(o *Options) {
		if e != nil {
			o.Evaluator = e
		}
	}
}

// WithLogger routes non-fatal diagnostics through the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Step records one expansion of the derivation: which symbol expanded
// into which alternative, and the codeword consumed (empty when the
// expansion was deterministic or random).
type Step struct {
	Symbol      string
	Alternative string
	Codeword    string
}

// Result is the outcome of one Encode call.
type Result struct {
	// Text is the generated carrier sentence.
	Text string

	// BitsEmbedded counts payload bits actually consumed; may be fewer
	// than the payload length when grammar capacity is insufficient.
	BitsEmbedded int

	// Attempts is the number of derivation attempts performed.
	Attempts int

	// Accepted reports whether Text passed the naturalness gate; false
	// means the retry ceiling was hit and Text is the last candidate.
	Accepted bool

	// Derivation is the ordered expansion trace of the returned text,
	// the encoder-side mirror of the detector's match trace.
	Derivation []Step
}
