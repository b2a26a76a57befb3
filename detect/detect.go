package detect

import (
	"strings"

	"github.com/katalvlaran/stegram/grammar"
	"github.com/katalvlaran/stegram/huffman"
	"github.com/katalvlaran/stegram/keysearch"
)

// Detect scans text for a carrier sentence and reconstructs the embedded
// bit string.
//
// Returns ErrGrammarNil for a nil grammar and ErrNoMarker when no marker
// token could be configured or derived. Absence of a carrier sentence or
// of slot matches is a reported outcome (Detected=false), not an error.
//
// Complexity: O(len(text) + carrier length × slot count × alternatives).
func Detect(g *grammar.Grammar, text string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGrammarNil
	}
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	marker := o.Marker
	if marker == "" {
		marker = deriveMarker(g)
	}
	if marker == "" {
		return Result{}, ErrNoMarker
	}

	carrier, ok := findCarrier(text, marker)
	if !ok {
		return Result{}, nil
	}

	res := Result{
		Carrier:    carrier,
		Naturality: o.Evaluator.Score(carrier),
	}

	codec := huffman.NewCodec(g)
	var bits strings.Builder
	for _, symbol := range slotSymbols(g, o) {
		match, found, err := matchSlot(g, codec, carrier, symbol)
		if err != nil {
			return Result{}, err
		}
		if !found {
			o.Logger.Warn("detect: slot has no textual match, skipping",
				"symbol", symbol)
			continue
		}
		bits.WriteString(match.Codeword)
		res.Trace = append(res.Trace, match)
	}

	res.Bits = bits.String()
	res.Detected = res.Bits != ""

	if res.Detected && len(o.Keys) > 0 {
		recovery, err := keysearch.Recover(res.Bits, o.Keys,
			keysearch.WithMessages(o.Messages), keysearch.WithLogger(o.Logger))
		if err != nil {
			return Result{}, err
		}
		res.Recovery = recovery
	}
	return res, nil
}

// deriveMarker follows first alternatives from the start symbol down to
// the leftmost terminal. Returns "" when none is reachable (cycle or
// empty alternative).
func deriveMarker(g *grammar.Grammar) string {
	seen := make(map[string]bool)
	token := g.Start()
	for !g.IsTerminal(token) {
		if seen[token] {
			return ""
		}
		seen[token] = true
		alts, _ := g.Alternatives(token)
		fields := strings.Fields(alts[0].Text)
		if len(fields) == 0 {
			return ""
		}
		token = fields[0]
	}
	return token
}

// findCarrier splits text into sentences on . ! ? and returns the first
// one containing marker as a word-boundary, case-insensitive token. The
// returned sentence is whitespace-normalized.
func findCarrier(text, marker string) (string, bool) {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, s := range sentences {
		normalized := strings.Join(strings.Fields(s), " ")
		if indexWord(strings.ToLower(normalized), strings.ToLower(marker)) >= 0 {
			return normalized, true
		}
	}
	return "", false
}

// slotSymbols resolves the ordered payload-bearing symbol list: the
// configured Slots verbatim, or every multi-alternative symbol in
// declaration order minus the start symbol and the excluded set.
func slotSymbols(g *grammar.Grammar, o Options) []string {
	if o.Slots != nil {
		return o.Slots
	}
	excluded := make(map[string]bool, len(o.Exclude)+1)
	excluded[g.Start()] = true
	for _, s := range o.Exclude {
		excluded[s] = true
	}

	var slots []string
	for _, symbol := range g.Symbols() {
		if excluded[symbol] {
			continue
		}
		if alts, _ := g.Alternatives(symbol); len(alts) >= 2 {
			slots = append(slots, symbol)
		}
	}
	return slots
}

// matchSlot scans carrier for the first alternative of symbol, in
// declared order, that appears as a word-boundary phrase, and resolves
// its codeword.
func matchSlot(g *grammar.Grammar, codec *huffman.Codec, carrier, symbol string) (Match, bool, error) {
	alts, ok := g.Alternatives(symbol)
	if !ok || len(alts) < 2 {
		return Match{}, false, nil
	}
	table, err := codec.Table(symbol)
	if err != nil {
		return Match{}, false, err
	}

	lowered := strings.ToLower(carrier)
	for _, a := range alts {
		start := indexWord(lowered, strings.ToLower(a.Text))
		if start < 0 {
			continue
		}
		return Match{
			Symbol:      symbol,
			Alternative: a.Text,
			Codeword:    table[a.Text],
			Start:       start,
			End:         start + len(a.Text),
		}, true, nil
	}
	return Match{}, false, nil
}

// indexWord returns the byte offset of the first occurrence of needle in
// haystack bounded by non-word characters (or string edges), or -1.
func indexWord(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	from := 0
	for from <= len(haystack)-len(needle) {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		start := from + idx
		end := start + len(needle)
		if (start == 0 || !isWordByte(haystack[start-1])) &&
			(end == len(haystack) || !isWordByte(haystack[end])) {
			return start
		}
		from = start + 1
	}
	return -1
}

// isWordByte reports whether b continues a word (ASCII letter or digit).
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
