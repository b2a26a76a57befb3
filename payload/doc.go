// Package payload derives fixed-length bit strings from a secret message
// and key via one-way hashing.
//
// Derive computes SHA-256 over message++key, expands the digest to its
// full 256-bit binary form (each hex digit contributing exactly four
// bits), left-pads with zeros when more bits are requested, and returns
// exactly the first n bits.
//
// Determinism is the whole point: identical (message, key, bits) inputs
// yield the identical bit string across calls and process restarts,
// which is what makes the detector-side brute-force key search possible.
package payload
