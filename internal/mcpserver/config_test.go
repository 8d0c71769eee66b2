package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv clears all POSTMAN2OPENAPI_* env vars to isolate tests from the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envConcurrency, envTimeout, envAllowPrivate, envMaxInlineSize} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	c := loadConfig()

	assert.Equal(t, 8, c.Concurrency)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.False(t, c.AllowPrivateIPs)
	assert.Equal(t, 10<<20, c.MaxInlineSize)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envConcurrency, "2")
	t.Setenv(envTimeout, "5s")
	t.Setenv(envAllowPrivate, "true")
	t.Setenv(envMaxInlineSize, "1024")

	c := loadConfig()

	assert.Equal(t, 2, c.Concurrency)
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, 1024, c.MaxInlineSize)
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(envConcurrency, "-3")
	t.Setenv(envTimeout, "later")
	t.Setenv(envAllowPrivate, "perhaps")

	c := loadConfig()

	assert.Equal(t, 8, c.Concurrency)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.False(t, c.AllowPrivateIPs)
}
