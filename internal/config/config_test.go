package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("TOKEN_TTL", "")

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, StoreMySQL, cfg.StoreDriver)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.UsesFallbackSecret())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MONGO")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")
	t.Setenv("REQUIRE_VERIFIED_BROKER", "true")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.LoginMaxAttempts)
	assert.True(t, cfg.RequireVerifiedBroker)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "development accepts fallback secret",
			cfg:  Config{Environment: "development", StoreDriver: StoreMySQL, JWTSecret: DefaultJWTSecret, TokenTTL: time.Hour},
		},
		{
			name:    "production rejects fallback secret",
			cfg:     Config{Environment: "production", StoreDriver: StoreMySQL, JWTSecret: DefaultJWTSecret, TokenTTL: time.Hour},
			wantErr: true,
		},
		{
			name:    "production rejects empty secret",
			cfg:     Config{Environment: "production", StoreDriver: StoreMySQL, TokenTTL: time.Hour},
			wantErr: true,
		},
		{
			name: "production with explicit secret",
			cfg:  Config{Environment: "production", StoreDriver: StoreMongo, JWTSecret: "s3cret", TokenTTL: time.Hour},
		},
		{
			name:    "unknown store driver",
			cfg:     Config{Environment: "development", StoreDriver: "sqlite", JWTSecret: "x", TokenTTL: time.Hour},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
