package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 8, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "./uploads", cfg.Uploads.Dir)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		db   DatabaseConfig
		want string
	}{
		{
			name: "database url wins",
			db:   DatabaseConfig{URL: "postgres://u:p@h/db", Host: "ignored"},
			want: "postgres://u:p@h/db",
		},
		{
			name: "assembled from parts",
			db:   DatabaseConfig{Host: "db", Port: "5432", User: "app", Password: "pw", Name: "restaurante"},
			want: "host=db user=app password=pw dbname=restaurante port=5432 sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.DSN())
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("ALLOWED_ORIGINS", "https://loja.example,https://admin.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2, cfg.Auth.TokenTTLHours)
	assert.Equal(t, []string{"https://loja.example", "https://admin.example"}, cfg.Server.AllowedOrigins)
}
