// Package stegram hides fixed-length bit payloads inside natural-language
// sentences generated from weighted context-free grammars — and finds
// them again.
//
// 🚀 What is stegram?
//
//	A deterministic, single-process steganographic codec that brings together:
//		• Weighted grammars: parse, validate & renormalize PCFG rule files
//		• Prefix codes: canonical Huffman tables per grammar symbol
//		• Payload derivation: SHA-256 based (message, key) → bit string
//		• Encoding: top-down derivation that spends payload bits on choices
//		• Naturalness: letter-frequency gate keeping carrier text plausible
//		• Detection: slot-by-slot codeword reconstruction from carrier text
//		• Key search: confidence-ranked brute-force (key, message) recovery
//
// ✨ Why choose stegram?
//
//   - Deterministic by construction – same grammar, key & seed ⇒ same sentence
//   - Rock-solid guarantees – prefix-free codes, bounded retry loops
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – injectable RNG, logger, evaluator & slot configuration
//
// Under the hood, everything is organized into small subpackages:
//
//	grammar/     — weighted rule parsing, validation, capacity reporting
//	huffman/     — cached canonical prefix codes over symbol alternatives
//	payload/     — one-way (message, key) → fixed-length bit string
//	naturalness/ — letter-frequency acceptance test & naturality score
//	encode/      — derivation/retry state machine producing carrier text
//	detect/      — carrier location & bit-string reconstruction
//	keysearch/   — ranked recovery of candidate keys and messages
//
// Quick sketch of the data flow:
//
//	grammar ──► huffman ──► encode ──► "hello from Denver ."
//	                          ▲              │
//	            payload ──────┘              ▼
//	                        detect ──► bits ──► keysearch
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/stegram
package stegram
