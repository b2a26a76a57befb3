// Package keysearch ranks candidate (key, message) pairs against an
// extracted bit string by bit-similarity confidence.
//
// For each candidate key, every candidate message is re-derived through
// the payload hash and compared position-by-position against the
// extracted bits; the first message clearing the 0.8 similarity
// threshold wins for that key and short-circuits the message loop. Keys
// with no message guess fall back to a narrower probe: the first 16 bits
// of the hash of the key alone, reported as a "possible key" when that
// similarity exceeds 0.5.
//
// The result is sorted by descending confidence; ties keep input order.
// Per-key derivation failures are logged and skipped so one bad
// candidate never aborts the search.
//
// This is a heuristic nearest-match search, not a cryptographic attack —
// it never claims certainty.
package keysearch
