// Package detect defines options, results and sentinel errors for
// carrier detection.
package detect

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/stegram/grammar"
	"github.com/katalvlaran/stegram/keysearch"
	"github.com/katalvlaran/stegram/naturalness"
)

// Sentinel errors for detection.
var (
	// ErrGrammarNil is returned if a nil grammar pointer is passed.
	ErrGrammarNil = errors.New("detect: grammar is nil")

	// ErrNoMarker is returned when no marker token was supplied and none
	// could be derived from the grammar's start symbol.
	ErrNoMarker = errors.New("detect: no marker token available")
)

// Option configures detection via functional arguments.
type Option func(*Options)

// Options holds parameters customizing one Detect call.
type Options struct {
	// Marker is the token identifying the carrier sentence. When empty,
	// the leftmost terminal reachable through first alternatives from
	// the start symbol is used.
	Marker string

	// Slots overrides the ordered payload-bearing symbol list. When nil,
	// every multi-alternative symbol in declaration order is a slot,
	// minus the start symbol and Exclude.
	Slots []string

	// Exclude names symbols that never carry payload (narrative framing).
	// Defaults to the reserved static pseudo-symbol. The start symbol is
	// always excluded from the default slot list.
	Exclude []string

	// Keys, when non-empty, triggers a ranked (key, message) recovery
	// over the reconstructed bits.
	Keys []string

	// Messages is the candidate wordlist for recovery; keysearch's
	// built-in defaults when empty.
	Messages []string

	// Evaluator produces the carrier's naturality diagnostic.
	Evaluator *naturalness.Evaluator

	// Logger receives non-fatal diagnostics (skipped slots).
	Logger *slog.Logger
}

// DefaultOptions returns Options with a derived marker, derived slots,
// Exclude={static}, a default Evaluator and slog.Default().
func DefaultOptions() Options {
	return Options{
		Exclude:   []string{grammar.StaticSymbol},
		Evaluator: naturalness.New(),
		Logger:    slog.Default(),
	}
}

// WithMarker fixes the carrier marker token.
func WithMarker(token string) Option {
	return func(o *Options) {
		if token != "" {
			o.Marker = token
		}
	}
}

// WithSlots fixes the ordered slot-symbol list.
func WithSlots(symbols ...string) Option {
	return func(o *Options) {
		if len(symbols) > 0 {
			o.Slots = symbols
		}
	}
}

// WithExcluded replaces the excluded-symbol set used when slots are
// derived from the grammar.
func WithExcluded(symbols ...string) Option {
	return func(o *Options) { o.Exclude = symbols }
}

// WithKeys supplies candidate keys for ranked recovery.
func WithKeys(keys ...string) Option {
	return func(o *Options) {
		if len(keys) > 0 {
			o.Keys = keys
		}
	}
}

// WithMessages supplies the candidate message wordlist for recovery.
func WithMessages(messages []string) Option {
	return func(o *Options) {
		if len(messages) > 0 {
			o.Messages = messages
		}
	}
}

// WithEvaluator substitutes the naturality diagnostic evaluator.
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

// Match records one reconstructed slot: the symbol, the alternative
// matched in the carrier, its codeword, and the matched span within the
// whitespace-normalized carrier sentence.
type Match struct {
	Symbol      string
	Alternative string
	Codeword    string
	Start, End  int
}

// Result is the outcome of one Detect call.
type Result struct {
	// Detected reports whether a non-empty bit string was reconstructed.
	Detected bool

	// Bits is the concatenation of matched slot codewords.
	Bits string

	// Trace is the ordered match list for audit and debugging.
	Trace []Match

	// Carrier is the whitespace-normalized carrier sentence; empty when
	// no marker sentence was found.
	Carrier string

	// Naturality is the carrier's continuous naturalness score in [0,1];
	// 0 when no carrier was found.
	Naturality float64

	// Recovery is the ranked (key, message) candidate list; populated
	// only when candidate keys were supplied and bits were detected.
	Recovery []keysearch.Candidate
}
