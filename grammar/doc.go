// Package grammar parses and validates weighted context-free grammars
// (PCFGs) from a line-oriented rule syntax, exposing an immutable model
// that the encoding, detection and code-building packages consume.
//
// 🚀 What is a stegram grammar?
//
//	A mapping from symbol name to an ordered list of weighted alternatives:
//
//	  # rules.gram
//	  Start    -> Greeting CITY .
//	  Greeting -> hello from [0.6] | warm regards from [0.4]
//	  CITY     -> Boston [0.5] | Denver [0.5]
//
//	Each alternative is a whitespace-separated token sequence; a token is a
//	terminal exactly when it is not itself a rule's left-hand symbol.
//	Probabilities are optional (default 1.0) and may be renormalized.
//
// ✨ Key guarantees:
//
//   - Declaration order preserved – symbols and alternatives keep file order,
//     which downstream prefix-code construction relies on for determinism
//   - Renormalization – weights off by more than ε=0.01 are scaled in place
//     (order untouched) with a non-fatal warning
//   - Fail-fast strict mode – malformed rules, out-of-range probabilities
//     and a missing start symbol abort the load; no partial model escapes
//   - Lenient mode – detector-side loads clamp bad probabilities to 1.0
//     with a warning instead of failing
//
// ⚙️ Usage:
//
//	g, err := grammar.ParseString(rules)
//	if err != nil { ... }          // ErrSyntax / ErrProbability / ErrIncomplete
//	alts, _ := g.Alternatives("CITY")
//	bits := g.Capacity()           // theoretical embeddable bits
//
// Complexity: parsing is O(total input length); accessors are O(1) map
// lookups returning defensive copies where mutation would matter.
package grammar
