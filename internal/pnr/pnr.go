// Package pnr generates passenger name record references: short booking
// codes a passenger can read over the phone.
package pnr

import (
	"crypto/rand"
	"fmt"
)

// Alphabet skips 0/O, 1/I and vowels that form words; same convention as
// airline reservation systems.
const alphabet = "2346789BCDFGHJKMPQRTVWXY"

const Length = 6

// New returns a random 6-character reference. Uniqueness is enforced by the
// storage layer; callers retry on collision.
func New() (string, error) {
	// Bytes past the largest multiple of the alphabet size are rejected,
	// keeping every character equally likely.
	const limit = byte(256 - 256%len(alphabet))

	out := make([]byte, 0, Length)
	buf := make([]byte, Length)
	for len(out) < Length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == Length {
				break
			}
		}
	}
	return string(out), nil
}
