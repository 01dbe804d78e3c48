package config

import (
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Store:     StoreConfig{Driver: StoreDriverPostgres},
		Postgres:  &postgres.DBConn{},
		SecretKey: SecretKeyConfig{Token: "secret"},
		Auth: &AuthConfig{
			BcryptCost:          10,
			ReservedAccountName: "SYS_ADMIN",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid postgres", mutate: func(*Config) {}},
		{
			name: "valid mongo",
			mutate: func(cfg *Config) {
				cfg.Store.Driver = StoreDriverMongo
				cfg.Mongo = &MongoConfig{URI: "mongodb://localhost:27017"}
			},
		},
		{
			name:    "missing secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Token = "  " },
			wantErr: "secretKey.token must be configured",
		},
		{
			name:    "missing auth",
			mutate:  func(cfg *Config) { cfg.Auth = nil },
			wantErr: "auth section must be configured",
		},
		{
			name:    "missing reserved account name",
			mutate:  func(cfg *Config) { cfg.Auth.ReservedAccountName = "" },
			wantErr: "auth.reservedAccountName must be configured",
		},
		{
			name:    "postgres driver without postgres",
			mutate:  func(cfg *Config) { cfg.Postgres = nil },
			wantErr: "postgres section is required",
		},
		{
			name:    "mongo driver without uri",
			mutate:  func(cfg *Config) { cfg.Store.Driver = StoreDriverMongo },
			wantErr: "mongo.uri is required",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "sqlite" },
			wantErr: "unknown store driver: sqlite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
