// Package huffman builds canonical minimum-redundancy prefix codes over
// a grammar symbol's weighted alternatives, caching one table per symbol.
//
// 🚀 What does it do?
//
//	For a symbol with alternatives {(aᵢ, wᵢ)} it repeatedly merges the two
//	lowest-weight pending nodes into one, prefixing the first-popped
//	subtree's codewords with '0' and the second's with '1'. Ties are broken
//	by original declaration order, so identical grammars always yield
//	identical tables across runs and platforms.
//
// ✨ Key guarantees:
//
//   - Prefix-free – no codeword is a prefix of another, so concatenated
//     codewords decode unambiguously
//   - Bijective – a symbol with k alternatives gets exactly k codewords
//   - Deterministic – stable tie-breaking; no map-iteration order leaks
//   - Cached – tables build lazily on first request and are never rebuilt;
//     the cache is append-only and safe to share across readers
//
// Single-alternative symbols map to the empty codeword: there is no
// choice to encode, so they consume zero payload bits.
//
// ⚙️ Usage:
//
//	codec := huffman.NewCodec(g)
//	table, err := codec.Table("CITY") // {"Boston": "0", "Denver": "1"}
//
// Complexity: O(k log k) per first build (heap-driven merging), O(k) per
// cached lookup (defensive copy).
package huffman
