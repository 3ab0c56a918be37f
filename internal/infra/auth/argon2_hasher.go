// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"ezytutor/config"
	"ezytutor/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id defaults, used when the config leaves them unset.
const (
	defaultArgon2Time    = 1         // iterations
	defaultArgon2Memory  = 64 * 1024 // 64 MB
	defaultArgon2Threads = 4         // parallelism
	argon2SaltLen        = 16        // salt length in bytes
	argon2KeyLen         = 32        // output length in bytes
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id. Every hash carries its own random salt; the parameters and
// salt are embedded in the PHC-encoded output so verification is self-contained.
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	hasher := &argon2Hasher{
		time:    defaultArgon2Time,
		memory:  defaultArgon2Memory,
		threads: defaultArgon2Threads,
	}

	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Argon2Time > 0 {
			hasher.time = cfg.Auth.Argon2Time
		}
		if cfg.Auth.Argon2Memory > 0 {
			hasher.memory = cfg.Auth.Argon2Memory
		}
		if cfg.Auth.Argon2Threads > 0 {
			hasher.threads = cfg.Auth.Argon2Threads
		}
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate password salt")
	}

	hash := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argon2KeyLen)

	// PHC string format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.time,
		h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify checks a plaintext password against a PHC-encoded argon2id hash,
// re-deriving the key with the embedded parameters and comparing in constant time.
func (h *argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	parts := strings.Split(strings.TrimSpace(encodedHash), "$")
	if len(parts) != 6 {
		return false, errors.Wrap(service.ErrHashFormat, "expected 6 '$'-separated fields")
	}

	if parts[1] != "argon2id" {
		return false, errors.Wrapf(service.ErrHashFormat, "unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, errors.Wrap(service.ErrHashFormat, "malformed version field")
	}
	if version != argon2.Version {
		return false, errors.Wrapf(service.ErrHashFormat, "unsupported argon2 version %d", version)
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errors.Wrap(service.ErrHashFormat, "malformed parameter field")
	}
	if threads == 0 || threads > 255 {
		return false, errors.Wrapf(service.ErrHashFormat, "parallelism %d out of range", threads)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.Wrap(service.ErrHashFormat, "malformed salt encoding")
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, errors.Wrap(service.ErrHashFormat, "malformed hash encoding")
	}
	if len(expected) == 0 {
		return false, errors.Wrap(service.ErrHashFormat, "empty hash")
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, uint8(threads), uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}
