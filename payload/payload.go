package payload

import (
	"crypto/sha256"
	"errors"
	"strings"
)

// DefaultBits is the payload length used when callers have no reason to
// pick another one.
const DefaultBits = 96

// ErrBadLength is returned when a non-positive bit length is requested.
var ErrBadLength = errors.New("payload: bit length must be positive")

// digestBits is the binary width of a SHA-256 digest.
const digestBits = sha256.Size * 8

// Derive returns the first bits characters of the binary expansion of
// sha256(message ++ key), left-zero-padded when bits exceeds the digest
// width. Pure function: no state, no randomness.
//
// Complexity: O(bits) beyond the fixed-cost hash.
func Derive(message, key string, bits int) (string, error) {
	if bits <= 0 {
		return "", ErrBadLength
	}

	sum := sha256.Sum256([]byte(message + key))

	var b strings.Builder
	b.Grow(digestBits)
	for _, by := range sum {
		for shift := 7; shift >= 0; shift-- {
			if by>>uint(shift)&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	s := b.String()

	if bits <= digestBits {
		return s[:bits], nil
	}
	return strings.Repeat("0", bits-digestBits) + s, nil
}
