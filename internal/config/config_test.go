package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "REDIS_URL", "CACHE_TTL", "GEMINI_MODEL", "WORKER_POLL_INTERVAL", "LOG_JSON"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 10*time.Second, cfg.Worker.PollInterval)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.EnvFileLoaded)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("TALENT_TEST_FROM_FILE=yes\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TALENT_TEST_FROM_FILE") })

	cfg := Load()

	assert.True(t, cfg.EnvFileLoaded)
	assert.Equal(t, "yes", os.Getenv("TALENT_TEST_FROM_FILE"))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("WORKER_CONCURRENCY", "7")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("MAX_FILE_SIZE", "2048")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 7, cfg.Worker.Concurrency)
	assert.True(t, cfg.Log.JSON)
	assert.EqualValues(t, 2048, cfg.Storage.MaxFileSize)
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("BAD_INT", "seven")
	t.Setenv("BAD_BOOL", "maybe")
	t.Setenv("BAD_DURATION", "soon")

	assert.Equal(t, 3, getEnvAsInt("BAD_INT", 3))
	assert.True(t, getEnvAsBool("BAD_BOOL", true))
	assert.Equal(t, 2*time.Second, getEnvAsDuration("BAD_DURATION", "2s"))
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "talent"}}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=talent sslmode=disable", cfg.GetDatabaseDSN())
}
