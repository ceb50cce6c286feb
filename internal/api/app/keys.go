package app

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/angicungduoc/foodreview/pkg/cryptox"
	"github.com/angicungduoc/foodreview/pkg/jwtx"
)

const devRSABits = 2048

// InitSigningKey resolves the RSA keypair used to sign and verify tokens.
//
// Sources, in order of preference:
//   - PRIVATE_KEY_BASE64: base64-encoded PEM private key
//   - PRIVATE_KEY_FILE: path to a PEM private key file
//   - otherwise an ephemeral keypair is generated on startup; every token
//     issued before the restart becomes invalid.
func InitSigningKey(cfg Config, logger *slog.Logger) (*jwtx.RS256Signer, jwtx.Verifier, error) {
	pemKey, source, err := loadPrivateKeyPEM(cfg)
	if err != nil {
		return nil, nil, err
	}

	signer, err := jwtx.NewSignerRS256(pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	logger.Info("signing key loaded", "source", source, "algorithm", signer.Alg())
	if source == "ephemeral" {
		logger.Warn("all existing tokens are now invalid due to key rotation on startup")
	}

	verifier := jwtx.NewVerifierRS256(signer.Public(), cfg.Issuer)
	return signer, verifier, nil
}

func loadPrivateKeyPEM(cfg Config) ([]byte, string, error) {
	if cfg.PrivateKeyBase64 != "" {
		pemKey, err := base64.StdEncoding.DecodeString(cfg.PrivateKeyBase64)
		if err != nil {
			return nil, "", fmt.Errorf("PRIVATE_KEY_BASE64 is not valid base64: %w", err)
		}
		return pemKey, "env", nil
	}

	if cfg.PrivateKeyFile != "" {
		pemKey, err := os.ReadFile(cfg.PrivateKeyFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read private key file: %w", err)
		}
		return pemKey, "file", nil
	}

	pemKey, err := cryptox.GenerateRSAKey(devRSABits)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate ephemeral key: %w", err)
	}
	return pemKey, "ephemeral", nil
}
