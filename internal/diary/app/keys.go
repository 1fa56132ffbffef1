package app

import (
	"fmt"
	"log/slog"

	"github.com/mydayhq/myday/pkg/jwtx"
)

// InitKeys creates the EdDSA KeyManager used to sign and verify access
// tokens. Keys are ephemeral: generated on startup and held only in memory,
// so every restart invalidates outstanding access tokens. Refresh tokens
// live in the database and survive restarts.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   cfg.Issuer,
		Audience: nil, // No audience validation
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
	}

	logger.Info("ephemeral signing key generated",
		"algorithm", keyManager.Signer.Alg(),
		"kid", keyManager.Signer.KID(),
	)

	return keyManager, nil
}
