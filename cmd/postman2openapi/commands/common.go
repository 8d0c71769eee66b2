// Package commands provides CLI command handlers for postman2openapi.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Environment variables that supply flag defaults.
const (
	EnvConcurrency = "POSTMAN2OPENAPI_CONCURRENCY"
	EnvTimeout     = "POSTMAN2OPENAPI_TIMEOUT"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
