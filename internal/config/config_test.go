package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_PORT", ":8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "movies")
	t.Setenv("DB_SCHEME", "app")
	t.Setenv("REDIS_ADDR", "localhost:6379")
}

func TestLoadFromEnv(t *testing.T) {
	setTestEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "app", cfg.DBScheme)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	// бэкенд кэша по умолчанию — redis
	assert.Equal(t, CacheBackendRedis, cfg.CacheBackend)
}

func TestLoadFromEnvMemoryBackend(t *testing.T) {
	setTestEnv(t)
	t.Setenv("CACHE_BACKEND", "memory")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, CacheBackendMemory, cfg.CacheBackend)
}

func TestLoadFromEnvRejectsUnknownBackend(t *testing.T) {
	setTestEnv(t)
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := LoadFromEnv()
	require.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "app", DBPassword: "secret",
		DBHost: "db", DBPort: 5432, DBName: "movies",
	}
	assert.Equal(t, "postgres://app:secret@db:5432/movies?sslmode=disable", cfg.GetDSN())
}

func TestStringMasksSecrets(t *testing.T) {
	cfg := &Config{DBPassword: "secret", RedisPassword: "hunter2"}
	s := cfg.String()
	assert.False(t, strings.Contains(s, "secret"))
	assert.False(t, strings.Contains(s, "hunter2"))
	assert.True(t, strings.Contains(s, "********"))
}
