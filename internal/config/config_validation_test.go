package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "sqlite://:memory:"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "defaults with dsn are valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "production without sign key",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.Env = EnvProduction
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "production with sign key",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.Env = EnvProduction
				cfg.App.TokenSignKey = "prod-secret"
			},
		},
		{
			name: "hash cost too low",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.PasswordHashCost = 3
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "hash cost too high",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.PasswordHashCost = 32
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "non-positive token duration",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.TokenDuration = -time.Second
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "empty dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.DSN = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "no server address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "grpc only",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
				cfg.Server.GRPCAddress = ":9090"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: time.Second}}).validate())
	assert.ErrorIs(t, (&ClientConfig{Adapter: ClientAdapter{RequestTimeout: time.Second}}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x"}}).validate(), ErrInvalidAdapterConfigs)
}

func TestApp_SigningKey(t *testing.T) {
	assert.Equal(t, DevTokenSignKey, App{Env: EnvDevelopment, TokenSignKey: "ignored"}.SigningKey())
	assert.Equal(t, "prod", App{Env: EnvProduction, TokenSignKey: "prod"}.SigningKey())
}
