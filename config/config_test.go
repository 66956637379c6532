package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "sec_test")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "hunter2")

	cfg := LoadConfig()

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "sec_test", cfg.MongoDB)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "hunter2", cfg.JWTSecret)
}

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("SEC_PLATFORM_UNSET_KEY", "fallback"))

	t.Setenv("SEC_PLATFORM_SET_KEY", "value")
	assert.Equal(t, "value", getEnv("SEC_PLATFORM_SET_KEY", "fallback"))
}
