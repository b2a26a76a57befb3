package grammar

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ruleSeparator splits a rule's left-hand symbol from its alternatives.
const ruleSeparator = "->"

// Parse reads a line-oriented weighted grammar from r and returns the
// immutable model.
//
// Rule syntax (UTF-8, one rule per line):
//
//	SYMBOL -> ALT [p] | ALT [p] | ...
//
// Lines starting with '#' and blank lines are skipped. The probability
// suffix is optional and defaults to 1.0. A repeated SYMBOL appends its
// alternatives to the earlier rule.
//
// Validation (in order, per line then per grammar):
//  1. Exactly one "->" separator with a non-empty symbol (ErrSyntax).
//  2. At least one non-empty alternative (ErrSyntax).
//  3. Probabilities inside [0,1]; strict mode fails with ErrProbability,
//     lenient mode clamps to 1.0 and warns.
//  4. The start symbol must be defined (ErrIncomplete).
//
// Per-symbol weights that do not sum to 1 within ε=0.01 are renormalized
// in place, preserving declaration order, with a non-fatal warning.
//
// Complexity: O(total input length).
func Parse(r io.Reader, opts ...Option) (*Grammar, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	g := &Grammar{
		start: o.Start,
		rules: make(map[string][]Alternative),
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := g.parseRule(line, lineNo, o); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grammar: read failed at line %d: %w", lineNo, err)
	}

	if _, ok := g.rules[g.start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrIncomplete, g.start)
	}
	g.normalize(o)
	return g, nil
}

// ParseString is a convenience wrapper over Parse for in-memory rules.
func ParseString(s string, opts ...Option) (*Grammar, error) {
	return Parse(strings.NewReader(s), opts...)
}

// parseRule splits one rule line into its symbol and weighted
// alternatives and records them in declaration order.
func (g *Grammar) parseRule(line string, lineNo int, o Options) error {
	parts := strings.SplitN(line, ruleSeparator, 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: line %d: missing %q separator", ErrSyntax, lineNo, ruleSeparator)
	}
	symbol := strings.TrimSpace(parts[0])
	if symbol == "" || strings.ContainsAny(symbol, " \t") {
		return fmt.Errorf("%w: line %d: invalid symbol %q", ErrSyntax, lineNo, parts[0])
	}

	var alts []Alternative
	for _, raw := range strings.Split(parts[1], "|") {
		alt, err := parseAlternative(raw, lineNo, o)
		if err != nil {
			return err
		}
		alts = append(alts, alt)
	}
	if len(alts) == 0 {
		return fmt.Errorf("%w: line %d: no alternatives for %q", ErrSyntax, lineNo, symbol)
	}

	if _, seen := g.rules[symbol]; !seen {
		g.order = append(g.order, symbol)
	}
	g.rules[symbol] = append(g.rules[symbol], alts...)
	return nil
}

// parseAlternative parses one "TOKENS... [p]" chunk. Tokens keep their
// declared order; surrounding double quotes on a token are stripped so
// quoted terminals and bare terminals compare equal downstream.
func parseAlternative(raw string, lineNo int, o Options) (Alternative, error) {
	text := strings.TrimSpace(raw)
	weight := 1.0

	if idx := strings.LastIndex(text, "["); idx >= 0 && strings.HasSuffix(text, "]") {
		p, err := strconv.ParseFloat(strings.TrimSpace(text[idx+1:len(text)-1]), 64)
		if err != nil {
			return Alternative{}, fmt.Errorf("%w: line %d: bad probability in %q", ErrSyntax, lineNo, raw)
		}
		weight = p
		text = strings.TrimSpace(text[:idx])
	}
	if text == "" {
		return Alternative{}, fmt.Errorf("%w: line %d: empty alternative", ErrSyntax, lineNo)
	}
	if weight < 0 || weight > 1 {
		if !o.Lenient {
			return Alternative{}, fmt.Errorf("%w: line %d: %g not in [0,1]", ErrProbability, lineNo, weight)
		}
		o.Logger.Warn("grammar: clamping out-of-range probability",
			"line", lineNo, "probability", weight)
		weight = 1.0
	}

	tokens := strings.Fields(text)
	for i, tok := range tokens {
		tokens[i] = strings.Trim(tok, `"`)
	}
	return Alternative{Text: strings.Join(tokens, " "), Weight: weight}, nil
}

// normalize rescales each multi-alternative symbol's weights to sum to 1
// when they drift beyond weightTolerance, warning once per symbol.
// Declaration order is never touched.
func (g *Grammar) normalize(o Options) {
	for _, symbol := range g.order {
		alts := g.rules[symbol]
		if len(alts) < 2 {
			continue
		}
		sum := 0.0
		for _, a := range alts {
			sum += a.Weight
		}
		if math.Abs(sum-1.0) <= weightTolerance || sum == 0 {
			continue
		}
		o.Logger.Warn("grammar: renormalizing weights",
			"symbol", symbol, "sum", sum)
		for i := range alts {
			alts[i].Weight /= sum
		}
	}
}
