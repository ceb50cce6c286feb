package cryptox_test

import (
	"strings"
	"testing"

	"github.com/angicungduoc/foodreview/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong password", hash), cryptox.ErrMismatch)
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := cryptox.HashPassword("same input")
	require.NoError(t, err)
	h2, err := cryptox.HashPassword("same input")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, bad := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	} {
		err := cryptox.VerifyPassword("anything", bad)
		require.Error(t, err, "hash %q", bad)
		require.NotErrorIs(t, err, cryptox.ErrMismatch)
	}
}

func TestGenerateRSAKey(t *testing.T) {
	pemKey, err := cryptox.GenerateRSAKey(2048)
	require.NoError(t, err)
	require.Contains(t, string(pemKey), "RSA PRIVATE KEY")

	_, err = cryptox.GenerateRSAKey(1024)
	require.Error(t, err)
}
