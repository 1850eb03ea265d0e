package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sales/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"LOG_LEVEL", "STALE_DRAFT_TTL", "STALE_DRAFT_SCHEDULE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing env file falls back to defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "disable", cfg.DBSslMode)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 72*time.Hour, cfg.StaleDraftTTL)
		assert.Equal(t, "0 */10 * * * *", cfg.StaleDraftSchedule)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("STALE_DRAFT_TTL", "30m")
		t.Setenv("STALE_DRAFT_SCHEDULE", "*/5 * * * * *")

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, 30*time.Minute, cfg.StaleDraftTTL)
		assert.Equal(t, "*/5 * * * * *", cfg.StaleDraftSchedule)
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		clearEnv(t)
		os.Unsetenv("DB_NAME")
		t.Cleanup(func() { os.Unsetenv("DB_NAME") })

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=sales\n"), 0o600))

		cfg, err := cmd.LoadConfig(envFile)
		require.NoError(t, err)

		assert.Equal(t, "sales", cfg.DBName)
	})

	t.Run("malformed ttl is an error", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STALE_DRAFT_TTL", "three days")

		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), ".env"))
		require.Error(t, err)
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "sales",
		DBPassword: "secret",
		DBName:     "sales",
		DBSslMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=sales password=secret dbname=sales sslmode=disable",
		cfg.DSN())
}
