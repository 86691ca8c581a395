package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// bcrypt modular crypt format with the fixed cost
			require.True(t, strings.HasPrefix(hash, "$2a$10$"),
				"hash should be bcrypt at the fixed cost")
			require.NotEqual(t, tt.password, hash)
		})
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)

	// Per-hash salts mean two hashes of the same input differ
	require.NotEqual(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("matching password verifies", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("wrong password is a mismatch", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("incorrect horse", hash), ErrPasswordMismatch)
	})

	t.Run("malformed hash is not a mismatch", func(t *testing.T) {
		err := VerifyPassword("anything", "not-a-bcrypt-hash")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	})
}
