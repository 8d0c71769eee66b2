package cliutil

import (
	"io"
	"os"
	"time"

	"github.com/erraggy/postman2openapi/oas"
	"github.com/rs/zerolog"
)

// LogLevelEnv overrides the CLI log level (debug, info, warn, error).
const LogLevelEnv = "POSTMAN2OPENAPI_LOG_LEVEL"

// ZerologAdapter wraps a zerolog.Logger to implement oas.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new ZerologAdapter from a zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger returns the human-readable logger used by the CLI.
// verbose selects debug level; otherwise the level comes from LogLevelEnv
// and defaults to info.
func NewConsoleLogger(w io.Writer, verbose bool) *ZerologAdapter {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    w != os.Stderr,
	}
	level := levelFromEnv()
	if verbose {
		level = zerolog.DebugLevel
	}
	return NewZerologAdapter(zerolog.New(output).With().Timestamp().Logger().Level(level))
}

func levelFromEnv() zerolog.Level {
	s := os.Getenv(LogLevelEnv)
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// Debug implements oas.Logger.
func (z *ZerologAdapter) Debug(msg string, attrs ...any) {
	z.logger.Debug().Fields(attrs).Msg(msg)
}

// Info implements oas.Logger.
func (z *ZerologAdapter) Info(msg string, attrs ...any) {
	z.logger.Info().Fields(attrs).Msg(msg)
}

// Warn implements oas.Logger.
func (z *ZerologAdapter) Warn(msg string, attrs ...any) {
	z.logger.Warn().Fields(attrs).Msg(msg)
}

// Error implements oas.Logger.
func (z *ZerologAdapter) Error(msg string, attrs ...any) {
	z.logger.Error().Fields(attrs).Msg(msg)
}

// With implements oas.Logger.
func (z *ZerologAdapter) With(attrs ...any) oas.Logger {
	return &ZerologAdapter{logger: z.logger.With().Fields(attrs).Logger()}
}

// Ensure ZerologAdapter implements oas.Logger at compile time.
var _ oas.Logger = (*ZerologAdapter)(nil)
