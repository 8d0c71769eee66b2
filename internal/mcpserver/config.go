package mcpserver

import (
	"time"

	"github.com/erraggy/postman2openapi/internal/cliutil"
	"github.com/erraggy/postman2openapi/postman"
)

// Environment variables read at startup.
const (
	envConcurrency   = "POSTMAN2OPENAPI_CONCURRENCY"
	envTimeout       = "POSTMAN2OPENAPI_TIMEOUT"
	envAllowPrivate  = "POSTMAN2OPENAPI_ALLOW_PRIVATE"
	envMaxInlineSize = "POSTMAN2OPENAPI_MAX_INLINE_SIZE"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Concurrency bounds live calls per convert request. 0 means unbounded.
	Concurrency int
	// Timeout bounds each live call.
	Timeout time.Duration
	// AllowPrivateIPs lets live calls reach private and loopback addresses.
	AllowPrivateIPs bool
	// MaxInlineSize bounds inline collection, environment and example content.
	MaxInlineSize int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from POSTMAN2OPENAPI_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Concurrency:     cliutil.EnvInt(envConcurrency, 8),
		Timeout:         cliutil.EnvDuration(envTimeout, postman.DefaultTimeout),
		AllowPrivateIPs: cliutil.EnvBool(envAllowPrivate, false),
		MaxInlineSize:   cliutil.EnvInt(envMaxInlineSize, 10<<20),
	}
}
