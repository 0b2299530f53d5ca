package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "https://gnews.io/api/v4", cfg.News.BaseURL)
	assert.Equal(t, "production", cfg.AppEnv)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("NEWS_API_KEY", "key")
	t.Setenv("APP_ENV", "dev")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "key", cfg.News.APIKey)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Equal(t, "postgres://fitness:fitness@db:5432/fitness_club?sslmode=disable", cfg.MigrateURL())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "server:\n  port: \"9090\"\njwt:\n  secret: from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
