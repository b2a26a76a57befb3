package keysearch

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/katalvlaran/stegram/payload"
)

// Sentinel errors for key search.
var (
	// ErrEmptyBits is returned when the extracted bit string is empty.
	ErrEmptyBits = errors.New("keysearch: extracted bit string is empty")

	// ErrNoKeys is returned when no candidate keys are supplied.
	ErrNoKeys = errors.New("keysearch: no candidate keys")
)

// Similarity thresholds and probe width of the ranking heuristic.
const (
	// messageThreshold accepts a message guess.
	messageThreshold = 0.8
	// keyThreshold accepts a key-only fallback guess.
	keyThreshold = 0.5
	// keyProbeBits is the fallback comparison width.
	keyProbeBits = 16
)

// defaultMessages is the built-in candidate set used when no wordlist is
// supplied.
var defaultMessages = []string{
	"hello", "secret", "test", "password", "attack", "meet", "yes", "no",
}

// PossibleKeyNote marks a fallback candidate whose key probe matched but
// no message guess cleared the threshold.
const PossibleKeyNote = "possible key"

// Candidate is one ranked recovery guess.
type Candidate struct {
	Key        string
	Message    string // empty for key-only fallback guesses
	Confidence float64
	Note       string // PossibleKeyNote for fallback guesses
}

// Option configures Recover via functional arguments.
type Option func(*Options)

// Options holds the candidate-message list and diagnostics sink.
type Options struct {
	// Messages is the candidate message wordlist; built-in defaults
	// when empty.
	Messages []string

	// Logger receives per-key failure diagnostics.
	Logger *slog.Logger
}

// DefaultOptions returns Options with the built-in message set and
// slog.Default().
func DefaultOptions() Options {
	return Options{
		Messages: defaultMessages,
		Logger:   slog.Default(),
	}
}

// WithMessages substitutes the candidate message wordlist.
func WithMessages(messages []string) Option {
	return func(o *Options) {
		if len(messages) > 0 {
			o.Messages = messages
		}
	}
}

// WithLogger routes per-key diagnostics through the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Recover ranks the candidate keys against the extracted bits. Returns
// ErrEmptyBits or ErrNoKeys for invalid input; individual key failures
// are logged and skipped, never propagated.
//
// Complexity: O(len(keys) × len(messages) × len(bits)).
func Recover(bits string, keys []string, opts ...Option) ([]Candidate, error) {
	if bits == "" {
		return nil, ErrEmptyBits
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	var ranked []Candidate
	for _, key := range keys {
		cand, ok, err := probeKey(bits, key, o.Messages)
		if err != nil {
			o.Logger.Warn("keysearch: skipping candidate key",
				"key", key, "error", err)
			continue
		}
		if ok {
			ranked = append(ranked, cand)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})
	return ranked, nil
}

// probeKey tries every candidate message for key, short-circuiting on
// the first one above messageThreshold, then falls back to the key-only
// hash probe.
func probeKey(bits, key string, messages []string) (Candidate, bool, error) {
	for _, msg := range messages {
		derived, err := payload.Derive(msg, key, len(bits))
		if err != nil {
			return Candidate{}, false, err
		}
		if sim := similarity(bits, derived); sim > messageThreshold {
			return Candidate{Key: key, Message: msg, Confidence: sim}, true, nil
		}
	}

	probe, err := payload.Derive(key, "", keyProbeBits)
	if err != nil {
		return Candidate{}, false, err
	}
	width := keyProbeBits
	if len(bits) < width {
		width = len(bits)
	}
	if sim := similarity(bits[:width], probe[:width]); sim > keyThreshold {
		return Candidate{Key: key, Confidence: sim, Note: PossibleKeyNote}, true, nil
	}
	return Candidate{}, false, nil
}

// similarity is the fraction of matching positions over the shorter of
// the two bit strings; 0 when either is empty.
func similarity(a, b string) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(n)
}
