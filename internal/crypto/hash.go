package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	phcPrefix = "$argon2id$"

	// Limits applied to parameters read back from an encoded hash.
	maxHashMemory      = 256 * 1024 // KiB
	maxHashIterations  = 16
	maxHashParallelism = 16
	maxHashKeyLength   = 64
)

var (
	ErrInvalidHashFormat   = errors.New("invalid encoded hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// HashParams configures Argon2id. Memory is in KiB.
type HashParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHashParams returns the parameters HashSecret uses.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// phc is a decoded $argon2id$v=..$m=..,t=..,p=..$salt$key string.
type phc struct {
	params HashParams
	salt   []byte
	key    []byte
}

func (h phc) String() string {
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		phcPrefix,
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(h.salt),
		base64.RawStdEncoding.EncodeToString(h.key),
	)
}

// HashSecret derives an Argon2id hash of a freshly generated secret so it
// can be provisioned without handing over the plaintext.
func HashSecret(secret string) (string, error) {
	p := DefaultHashParams()

	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	h := phc{
		params: p,
		salt:   salt,
		key:    argon2.IDKey([]byte(secret), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength),
	}
	return h.String(), nil
}

// VerifySecret reports whether secret matches an encoded Argon2id hash.
// Malformed or out-of-range encodings fail with ErrInvalidHashFormat.
func VerifySecret(secret, encoded string) (bool, error) {
	h, err := parsePHC(encoded)
	if err != nil {
		return false, err
	}

	p := h.params
	candidate := argon2.IDKey([]byte(secret), h.salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
	return subtle.ConstantTimeCompare(h.key, candidate) == 1, nil
}

func parsePHC(encoded string) (phc, error) {
	rest, ok := strings.CutPrefix(encoded, phcPrefix)
	if !ok {
		return phc{}, ErrInvalidHashFormat
	}
	fields := strings.Split(rest, "$")
	if len(fields) != 4 {
		return phc{}, fmt.Errorf("%w: want 4 fields after prefix, got %d", ErrInvalidHashFormat, len(fields))
	}

	var version int
	if _, err := fmt.Sscanf(fields[0], "v=%d", &version); err != nil {
		return phc{}, fmt.Errorf("%w: version: %v", ErrInvalidHashFormat, err)
	}
	if version != argon2.Version {
		return phc{}, ErrIncompatibleVersion
	}

	var h phc
	if _, err := fmt.Sscanf(fields[1], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Iterations, &h.params.Parallelism); err != nil {
		return phc{}, fmt.Errorf("%w: params: %v", ErrInvalidHashFormat, err)
	}

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(fields[2]); err != nil {
		return phc{}, fmt.Errorf("%w: salt: %v", ErrInvalidHashFormat, err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(fields[3]); err != nil {
		return phc{}, fmt.Errorf("%w: key: %v", ErrInvalidHashFormat, err)
	}
	h.params.SaltLength = uint32(len(h.salt))
	h.params.KeyLength = uint32(len(h.key))

	if err := h.params.checkDecoded(); err != nil {
		return phc{}, fmt.Errorf("%w: %v", ErrInvalidHashFormat, err)
	}
	return h, nil
}

// checkDecoded keeps untrusted parameters inside what argon2.IDKey accepts
// without panicking and what a single verification may cost.
func (p HashParams) checkDecoded() error {
	switch {
	case p.Iterations < 1 || p.Iterations > maxHashIterations:
		return fmt.Errorf("iterations %d out of range [1, %d]", p.Iterations, maxHashIterations)
	case p.Parallelism < 1 || p.Parallelism > maxHashParallelism:
		return fmt.Errorf("parallelism %d out of range [1, %d]", p.Parallelism, maxHashParallelism)
	case p.Memory < 8*uint32(p.Parallelism) || p.Memory > maxHashMemory:
		return fmt.Errorf("memory %d KiB out of range [%d, %d]", p.Memory, 8*uint32(p.Parallelism), maxHashMemory)
	case p.SaltLength == 0:
		return errors.New("empty salt")
	case p.KeyLength == 0 || p.KeyLength > maxHashKeyLength:
		return fmt.Errorf("key length %d out of range [1, %d]", p.KeyLength, maxHashKeyLength)
	}
	return nil
}
