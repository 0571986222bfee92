// Package random abstracts randomness behind an interface so coach-code
// generation is deterministic in tests.
package random

import (
	"crypto/rand"
	"math/big"
)

// Random produces random values.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String draws length characters uniformly from alphabet
	String(length int, alphabet string) string
}

// SecureRandom draws from crypto/rand. Coach codes act as join credentials,
// so math/rand is not good enough here.
type SecureRandom struct{}

// New returns a SecureRandom.
func New() *SecureRandom {
	return &SecureRandom{}
}

// Intn returns a uniformly random int in [0, n).
func (r *SecureRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		return 0
	}
	return int(v.Int64())
}

// String draws length characters uniformly from alphabet.
func (r *SecureRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}
