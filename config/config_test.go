package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, BackendJetStream, cfg.Persistence.Backend)
	assert.Equal(t, "admin123", cfg.Admin.Secret)
	assert.Equal(t, 12*time.Hour, cfg.Admin.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionIdleTimeout)
	assert.Equal(t, BackendMemory, cfg.RateLimit.Backend)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PERSISTENCE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/shop.db")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("SESSION_IDLE_TIMEOUT", "2h")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, BackendSQLite, cfg.Persistence.Backend)
	assert.Equal(t, "/tmp/shop.db", cfg.Persistence.SQLitePath)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTimeout)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ENQUIRY_DB_PATH=/tmp/enquiries-from-file.db\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ENQUIRY_DB_PATH") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/enquiries-from-file.db", cfg.Enquiry.DBPath)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown backend", "PERSISTENCE_BACKEND", "postgres"},
		{"port out of range", "HTTP_PORT", "70000"},
		{"empty secret", "ADMIN_SECRET", ""},
		{"unknown rate limit backend", "RATE_LIMIT_BACKEND", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
