package jwtx_test

import (
	"testing"
	"time"

	"github.com/angicungduoc/foodreview/pkg/cryptox"
	"github.com/angicungduoc/foodreview/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T) *jwtx.RS256Signer {
	t.Helper()
	pemKey, err := cryptox.GenerateRSAKey(2048)
	require.NoError(t, err)
	s, err := jwtx.NewSignerRS256(pemKey)
	require.NoError(t, err)
	return s
}

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := newSigner(t)
	verifier := jwtx.NewVerifierRS256(signer.Public(), "foodreview-api")

	claims := jwtx.NewClaims("user-123", "admin", time.Minute, "foodreview-api", time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.UID)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "foodreview-api", got.Issuer)
}

func TestVerifyExpiredToken(t *testing.T) {
	signer := newSigner(t)
	verifier := jwtx.NewVerifierRS256(signer.Public(), "")

	claims := jwtx.NewClaims("user-123", "user", time.Minute, "", time.Now().Add(-time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer := newSigner(t)
	other := newSigner(t)
	verifier := jwtx.NewVerifierRS256(other.Public(), "")

	token, err := signer.Sign(jwtx.NewClaims("user-123", "user", time.Minute, "", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	signer := newSigner(t)
	verifier := jwtx.NewVerifierRS256(signer.Public(), "foodreview-api")

	token, err := signer.Sign(jwtx.NewClaims("user-123", "user", time.Minute, "someone-else", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	signer := newSigner(t)
	verifier := jwtx.NewVerifierRS256(signer.Public(), "")

	_, err := verifier.Verify("not.a.token")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}

func TestNewSignerRejectsBadPEM(t *testing.T) {
	_, err := jwtx.NewSignerRS256([]byte("garbage"))
	require.Error(t, err)
}
