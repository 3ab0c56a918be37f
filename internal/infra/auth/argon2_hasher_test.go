package auth

import (
	"strings"
	"testing"

	"ezytutor/config"
	"ezytutor/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastHasher keeps the memory cost low so the suite stays quick.
func fastHasher() service.PasswordHasher {
	return NewArgon2Hasher(&config.Config{
		Auth: &config.AuthConfig{
			Argon2Time:    1,
			Argon2Memory:  8 * 1024,
			Argon2Threads: 1,
		},
	})
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	hasher := fastHasher()

	encoded, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	match, err := hasher.Verify("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2Hasher_WrongPassword(t *testing.T) {
	hasher := fastHasher()

	encoded, err := hasher.Hash("secret")
	require.NoError(t, err)

	match, err := hasher.Verify("not the secret", encoded)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestArgon2Hasher_SaltIsUniquePerHash(t *testing.T) {
	hasher := fastHasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	// Same password, different salt, different encoding.
	assert.NotEqual(t, first, second)

	// Both still verify.
	match, err := hasher.Verify("same password", first)
	require.NoError(t, err)
	assert.True(t, match)
	match, err = hasher.Verify("same password", second)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2Hasher_VerifyAcrossParameterChanges(t *testing.T) {
	// A hash minted with one parameter set still verifies after the
	// configured parameters change, because the encoding embeds its own.
	old := NewArgon2Hasher(&config.Config{
		Auth: &config.AuthConfig{Argon2Time: 2, Argon2Memory: 8 * 1024, Argon2Threads: 1},
	})
	encoded, err := old.Hash("migrating password")
	require.NoError(t, err)

	current := fastHasher()
	match, err := current.Verify("migrating password", encoded)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	hasher := fastHasher()

	cases := map[string]string{
		"empty":              "",
		"plain text":         "not a hash at all",
		"too few fields":     "$argon2id$v=19$m=8192,t=1,p=1$saltonly",
		"wrong algorithm":    "$scrypt$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"bad version":        "$argon2id$v=18$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"bad params":         "$argon2id$v=19$m=abc,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
		"bad salt encoding":  "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaGhhc2hoYXNoaGFzaA",
		"bad hash encoding":  "$argon2id$v=19$m=8192,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$!!!",
		"zero parallelism":   "$argon2id$v=19$m=8192,t=1,p=0$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA",
	}

	for name, encoded := range cases {
		t.Run(name, func(t *testing.T) {
			match, err := hasher.Verify("whatever", encoded)
			assert.False(t, match)
			assert.ErrorIs(t, err, service.ErrHashFormat)
		})
	}
}

func TestArgon2Hasher_DefaultsWhenConfigUnset(t *testing.T) {
	hasher := NewArgon2Hasher(&config.Config{})

	encoded, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.Contains(t, encoded, "m=65536,t=1,p=4")
}
