package impl

import (
	"io"
	"log/slog"

	"identity/config"
)

const testReservedName = "SYS_ADMIN"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Token: "test_token_secret_key_very_long_for_testing"},
		Auth: &config.AuthConfig{
			BcryptCost:          4,
			ReservedAccountName: testReservedName,
		},
	}
}

func strPtr(s string) *string { return &s }
