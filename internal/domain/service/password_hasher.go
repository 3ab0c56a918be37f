// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrHashFormat is returned by Verify when the encoded hash is not a
// recognized encoding.
var ErrHashFormat = errors.New("unrecognized password hash format")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted, self-describing encoded hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify checks a plaintext password against an encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, error wrapping ErrHashFormat) when the hash cannot be parsed.
	Verify(password, encodedHash string) (bool, error)
}
