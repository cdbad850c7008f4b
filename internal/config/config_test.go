package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "LOG_FILE", "JWT_SECRET", "TOKEN_TTL", "BCRYPT_COST", "CORS_ORIGINS", "LOGIN_RATE_MAX"} {
		t.Setenv(k, "")
	}

	c := Load()

	assert.Equal(t, "4000", c.Port)
	assert.Equal(t, "meno.db", c.DBDSN)
	assert.Equal(t, "", c.LogFile)
	assert.Equal(t, defaultSecret, c.JWTSecret)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, "*", c.CORSOrigins)
	assert.Equal(t, 10, c.LoginRateMax)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", ":memory:")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("BCRYPT_COST", "4")

	c := Load()

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, ":memory:", c.DBDSN)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, 30*time.Minute, c.TokenTTL)
	assert.Equal(t, 4, c.BcryptCost)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("TOKEN_TTL", "forever")
	t.Setenv("BCRYPT_COST", "-3")
	t.Setenv("LOGIN_RATE_MAX", "x")

	c := Load()

	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, 10, c.LoginRateMax)
}
