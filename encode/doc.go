// Package encode turns a payload bit string into a grammatically valid
// carrier sentence via stateful top-down derivation over a weighted
// grammar.
//
// 🚀 How encoding works
//
//	Starting from the grammar's start symbol, the encoder expands the
//	leftmost pending symbol until only terminals remain. Whenever it
//	meets a multi-alternative symbol it has not spent bits on yet, it
//	scans that symbol's alternatives in declared order and picks the
//	first whose Huffman codeword matches the payload at the cursor,
//	advancing the cursor by the codeword length. Everything else —
//	exhausted payload, already-used symbols, no matching codeword — falls
//	back to a weighted random choice, keeping the sentence statistically
//	shaped like the grammar intends.
//
//	The finished sentence must pass a letter-frequency naturalness gate.
//	On rejection the encoder retries with the same payload and fresh
//	randomness, up to a hard attempt ceiling (default 15); after that it
//	returns the last candidate with Accepted=false and a warning.
//
// Each eligible symbol encodes at most once per attempt. That bounds
// payload consumption by the number of distinct multi-alternative
// symbols reachable in one derivation, and it is what keeps detection
// symmetric: the detector assumes one embedding slot per symbol.
//
// ✨ Determinism:
//
//	Bit-driven choices depend only on grammar and payload. The random
//	fallback draws from an injectable seeded source (tsp-style seed
//	policy: seed 0 means a fixed default), so a fixed seed reproduces
//	the exact derivation. Production callers may seed from entropy.
//
// ⚙️ Usage:
//
//	bits, _ := payload.Derive("meet at dawn", "k1", payload.DefaultBits)
//	res, err := encode.Encode(g, bits, encode.WithSeed(42))
//	fmt.Println(res.Text, res.BitsEmbedded)
//
// Complexity: O(max attempts × derivation size); always terminates.
package encode
