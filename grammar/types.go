// Package grammar defines the model types, options and sentinel errors
// for weighted grammar parsing.
package grammar

import (
	"errors"
	"log/slog"
)

// Sentinel errors for grammar loading.
var (
	// ErrSyntax indicates a malformed rule line (bad separator, empty
	// symbol or empty alternative list).
	ErrSyntax = errors.New("grammar: malformed rule line")

	// ErrProbability indicates a probability outside [0,1] in strict mode.
	ErrProbability = errors.New("grammar: probability out of range")

	// ErrIncomplete indicates the start symbol is not defined.
	ErrIncomplete = errors.New("grammar: start symbol not defined")

	// ErrUnknownSymbol indicates a lookup for a symbol the grammar lacks.
	ErrUnknownSymbol = errors.New("grammar: unknown symbol")
)

// DefaultStart is the start symbol assumed when WithStart is not supplied.
const DefaultStart = "Start"

// StaticSymbol is the reserved pseudo-symbol excluded from capacity
// accounting: its alternatives never carry payload bits.
const StaticSymbol = "static"

// weightTolerance is the ε within which per-symbol weights may deviate
// from 1.0 before renormalization kicks in.
const weightTolerance = 0.01

// Alternative is one weighted right-hand side of a rule. Text is the
// canonical token sequence joined by single spaces; Weight is the
// (possibly renormalized) probability of choosing it.
type Alternative struct {
	Text   string
	Weight float64
}

// Option configures grammar parsing via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Parse.
type Options struct {
	// Start is the designated start symbol; DefaultStart when empty.
	Start string

	// Lenient, when true, clamps out-of-range probabilities to 1.0
	// with a warning instead of failing. Used by detector-side loads.
	Lenient bool

	// Logger receives non-fatal diagnostics (renormalization, clamping).
	Logger *slog.Logger
}

// DefaultOptions returns Options with strict parsing, DefaultStart and
// the process-wide default logger.
func DefaultOptions() Options {
	return Options{
		Start:   DefaultStart,
		Lenient: false,
		Logger:  slog.Default(),
	}
}

// WithStart overrides the designated start symbol name.
func WithStart(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Start = name
		}
	}
}

// WithLenient enables lenient probability handling (clamp + warn).
func WithLenient() Option {
	return func(o *Options) { o.Lenient = true }
}

// WithLogger routes non-fatal diagnostics through the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Grammar is the immutable weighted-grammar model. Built once by Parse,
// never mutated afterwards; safe to share read-only across callers.
type Grammar struct {
	start string
	order []string                 // symbols in declaration order
	rules map[string][]Alternative // symbol -> ordered alternatives
}
