// Package detect locates a steganographic carrier sentence in text and
// reconstructs the embedded bit string slot by slot.
//
// 🚀 How detection works
//
//  1. Split the text into sentences on '.', '!' and '?'; the carrier is
//     the first sentence containing the marker token (word-boundary,
//     case-insensitive). No marker sentence ⇒ not detected.
//  2. For each slot symbol, in the configured slot order, scan the
//     carrier for a word-boundary textual match of each alternative in
//     the grammar's declared order; the first match wins. Look up the
//     matched alternative's Huffman codeword and append it to the
//     reconstructed bit string, recording the match span.
//  3. A slot with no textual match is skipped with a warning (partial
//     reconstruction). Detection succeeds iff the reconstructed bit
//     string is non-empty.
//
// The slot list is configuration, not inference: encoder and detector
// must agree on it by convention. By default it is every
// multi-alternative symbol in declaration order, minus the start symbol
// and the excluded set (the reserved "static" pseudo-symbol).
//
// Known limitation: reconstruction assumes each slot's chosen
// alternative appears textually unmodified and only once in the carrier.
// When two slots share candidate text, slot order is the only
// disambiguator; the match trace records spans so callers can audit
// collisions.
//
// Complexity: O(sentence length × slot count × alternatives per slot).
package detect
