package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAuth(t *testing.T) {
	t.Setenv("AUTH_USERNAME", "אשכול")
	t.Setenv("AUTH_PASSWORD", "0123456")
}

func TestLoad_Defaults(t *testing.T) {
	setAuth(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "אשכול", cfg.Auth.Username)
	assert.Equal(t, 5, cfg.DBConnectionLimit)
	assert.Equal(t, []string{"http://localhost:8081", "http://localhost:19006"}, cfg.AllowedOrigins())
}

func TestLoad_MissingCredential(t *testing.T) {
	t.Setenv("AUTH_USERNAME", "")
	t.Setenv("AUTH_PASSWORD", "")

	_, err := Load()
	assert.EqualError(t, err, "AUTH_USERNAME is required")
}

func TestLoad_SQLRequiresDatabase(t *testing.T) {
	setAuth(t)
	t.Setenv("STORE_BACKEND", "sql")
	t.Setenv("DB_DATABASE", "")

	_, err := Load()
	assert.EqualError(t, err, "DB_DATABASE is required")

	t.Setenv("DB_DATABASE", "guards.db")
	t.Setenv("DB_TYPE", "sqlite")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQL, cfg.StoreBackend)

	t.Setenv("DB_TYPE", "postgres")
	_, err = Load()
	assert.EqualError(t, err, "DB_USER is required")
}

func TestLoad_RedisRequiresAddr(t *testing.T) {
	setAuth(t)
	t.Setenv("STORE_BACKEND", "redis")

	_, err := Load()
	assert.EqualError(t, err, "REDIS_ADDR is required")
}

func TestLoad_UnknownBackend(t *testing.T) {
	setAuth(t)
	t.Setenv("STORE_BACKEND", "firestore")

	_, err := Load()
	assert.EqualError(t, err, "unsupported store backend: firestore")
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("AUTH_USERNAME=file-user\nAUTH_PASSWORD=file-pass\nPORT=4100\n"), 0o600))

	// godotenv does not override variables already present, so clear them.
	// t.Setenv restores the originals on cleanup.
	for _, key := range []string{"AUTH_USERNAME", "AUTH_PASSWORD", "PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("ENV_FILE", envFile)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-user", cfg.Auth.Username)
	assert.Equal(t, "4100", cfg.Port)
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("GUARDROSTER_TEST_INT", "12")
	assert.Equal(t, 12, getEnvAsInt("GUARDROSTER_TEST_INT", 1))

	t.Setenv("GUARDROSTER_TEST_INT", "twelve")
	assert.Equal(t, 1, getEnvAsInt("GUARDROSTER_TEST_INT", 1))
}
