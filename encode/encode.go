package encode

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/stegram/grammar"
	"github.com/katalvlaran/stegram/huffman"
)

// terminalPunctuation are the sentence enders; generated text not
// already ending in one gets a '.' appended.
const terminalPunctuation = ".?!:"

// deriver encapsulates the mutable state of one derivation attempt.
type deriver struct {
	g       *grammar.Grammar
	codec   *huffman.Codec
	payload string
	rng     *rand.Rand

	queue  []string        // pending symbols/terminals, leftmost first
	cursor int             // next unread payload bit
	used   map[string]bool // symbols that already consumed bits
	words  []string        // emitted terminal tokens
	steps  []Step          // expansion trace
}

// Encode embeds payloadBits into a sentence derived from g, retrying
// against the naturalness gate up to Options.MaxAttempts times.
//
// Returns ErrGrammarNil, ErrEmptyPayload or ErrBadPayload for invalid
// input, ErrOptionViolation for bad options, and any code-table error
// from the underlying grammar. Naturalness rejection is not an error:
// after the retry ceiling the last candidate is returned with
// Accepted=false and a warning is logged.
//
// Complexity: O(MaxAttempts × derivation size).
func Encode(g *grammar.Grammar, payloadBits string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGrammarNil
	}
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if payloadBits == "" {
		return Result{}, ErrEmptyPayload
	}
	for i := 0; i < len(payloadBits); i++ {
		if payloadBits[i] != '0' && payloadBits[i] != '1' {
			return Result{}, ErrBadPayload
		}
	}
	if o.MaxBits > 0 && o.MaxBits < len(payloadBits) {
		payloadBits = payloadBits[:o.MaxBits]
	}

	codec := huffman.NewCodec(g)
	rng := rngFromSeed(o.Seed)

	var res Result
	for attempt := 1; attempt <= o.MaxAttempts; attempt++ {
		d := &deriver{
			g:       g,
			codec:   codec,
			payload: payloadBits,
			rng:     rng,
			queue:   []string{g.Start()},
			used:    make(map[string]bool),
		}
		text, err := d.run()
		if err != nil {
			return Result{}, err
		}
		res = Result{
			Text:         text,
			BitsEmbedded: d.cursor,
			Attempts:     attempt,
			Accepted:     o.Evaluator.Accept(text),
			Derivation:   d.steps,
		}
		if res.Accepted {
			return res, nil
		}
	}

	o.Logger.Warn("encode: naturalness retries exhausted, returning last candidate",
		"attempts", res.Attempts, "bits", res.BitsEmbedded)
	return res, nil
}

// run drives one derivation attempt to completion and returns the
// punctuated sentence.
func (d *deriver) run() (string, error) {
	for len(d.queue) > 0 {
		token := d.queue[0]
		d.queue = d.queue[1:]

		if d.g.IsTerminal(token) {
			d.words = append(d.words, token)
			continue
		}
		alt, codeword, err := d.choose(token)
		if err != nil {
			return "", err
		}
		d.steps = append(d.steps, Step{Symbol: token, Alternative: alt.Text, Codeword: codeword})
		d.queue = append(strings.Fields(alt.Text), d.queue...)
	}
	return punctuate(strings.Join(d.words, " ")), nil
}

// choose resolves one nonterminal to an alternative: deterministic for
// single-alternative symbols, bit-driven when the payload window matches
// a codeword, weighted random otherwise.
func (d *deriver) choose(symbol string) (grammar.Alternative, string, error) {
	alts, _ := d.g.Alternatives(symbol)
	if len(alts) == 1 {
		return alts[0], "", nil
	}

	table, err := d.codec.Table(symbol)
	if err != nil {
		return grammar.Alternative{}, "", err
	}
	if d.cursor < len(d.payload) && !d.used[symbol] {
		for _, a := range alts {
			cw := table[a.Text]
			if cw == "" || d.cursor+len(cw) > len(d.payload) {
				continue
			}
			if d.payload[d.cursor:d.cursor+len(cw)] == cw {
				d.cursor += len(cw)
				d.used[symbol] = true
				return a, cw, nil
			}
		}
	}
	return weightedChoice(alts, d.rng), "", nil
}

// punctuate appends a period unless text already ends in terminal
// punctuation.
func punctuate(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	if strings.ContainsRune(terminalPunctuation, rune(text[len(text)-1])) {
		return text
	}
	return text + "."
}
