package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DB_DRIVER", "DATABASE_URL", "SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES",
		"SERVER_PORT", "LOG_LEVEL", "REDIS_URL", "CORS_ORIGINS",
		"ADMIN_EMAIL", "ADMIN_PASSWORD", "ADMIN_CPF", "ADMIN_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "changeme", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Empty(t, cfg.RedisURL)
	assert.Len(t, cfg.CORSOrigins, 4)
	assert.False(t, cfg.Admin.Complete())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.com, ,http://b.com")
	t.Setenv("ADMIN_EMAIL", "admin@x.com")
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("ADMIN_CPF", "1")
	t.Setenv("ADMIN_NAME", "Admin")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.Admin.Complete())
	assert.Equal(t, "Admin", cfg.Admin.Name)
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "abc")

	cfg := Load()

	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}
