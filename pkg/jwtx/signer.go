package jwtx

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can sign session claims into a token string.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// RS256Signer signs claims with an RSA private key using RSA-SHA256.
type RS256Signer struct {
	key *rsa.PrivateKey
}

// NewSignerRS256 loads an RSA private key from PEM bytes. Handles both PKCS1
// and PKCS8 because otherwise we will be chasing a bug for longer than we
// would be willing to admit.
func NewSignerRS256(pemKey []byte) (*RS256Signer, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM for RSA key")
	}

	var key *rsa.PrivateKey

	switch block.Type {
	case "RSA PRIVATE KEY":
		k, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse PKCS1: %w", err)
		}
		key = k
	case "PRIVATE KEY":
		priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
		}
		k, ok := priv.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("jwtx: not an RSA private key")
		}
		key = k
	default:
		return nil, fmt.Errorf("jwtx: unsupported PEM type %q", block.Type)
	}

	return &RS256Signer{key: key}, nil
}

func (s *RS256Signer) Alg() string { return jwt.SigningMethodRS256.Alg() }

// Sign turns the claims into a signed JWT string.
func (s *RS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
}

// Public returns the verification half of the keypair.
func (s *RS256Signer) Public() *rsa.PublicKey {
	return &s.key.PublicKey
}
