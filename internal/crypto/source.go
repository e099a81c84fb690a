package crypto

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source supplies uniform random integers in [0, n). Implementations shared
// between goroutines must be safe for concurrent use. *rand.Rand from
// math/rand/v2 satisfies it, which lets tests inject a seeded generator.
type Source interface {
	IntN(n int) int
}

// DefaultSource returns the process-wide math/rand/v2 generator. It is safe
// for concurrent use but is not cryptographically secure; use SecureSource
// for real credentials.
func DefaultSource() Source {
	return globalSource{}
}

// SecureSource returns a Source backed by crypto/rand.
func SecureSource() Source {
	return rand.New(cryptoRandSource{})
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// cryptoRandSource adapts crypto/rand to a math/rand/v2 Source so that
// rand.Rand can do the unbiased range reduction.
type cryptoRandSource struct{}

func (cryptoRandSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
