package postman

import (
	"fmt"
	"net/http"
	"time"

	"github.com/erraggy/postman2openapi"
	"github.com/erraggy/postman2openapi/internal/options"
	"github.com/erraggy/postman2openapi/oas"
	"github.com/erraggy/postman2openapi/oaserrors"
)

// DefaultTimeout bounds each live call when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// Option is a function that configures an import
type Option func(*importConfig) error

// importConfig holds configuration for an import
type importConfig struct {
	// Collection source (exactly one must be set for ImportWithOptions)
	collectionFile *string
	collection     *Collection

	// Environment source (optional, at most one)
	environmentFile *string
	environment     *Environment

	httpClient  *http.Client
	logger      oas.Logger
	concurrency int
	userAgent   string
}

func applyOptions(opts ...Option) (*importConfig, error) {
	cfg := &importConfig{
		userAgent: postman2openapi.UserAgent(),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	cfg.logger = oas.OrNop(cfg.logger)
	return cfg, nil
}

// WithCollectionFile loads the collection from a file.
func WithCollectionFile(path string) Option {
	return func(cfg *importConfig) error {
		cfg.collectionFile = &path
		return nil
	}
}

// WithCollection uses an already decoded collection.
func WithCollection(c *Collection) Option {
	return func(cfg *importConfig) error {
		if c == nil {
			return &oaserrors.ConfigError{Option: "WithCollection", Message: "collection cannot be nil"}
		}
		cfg.collection = c
		return nil
	}
}

// WithEnvironmentFile loads the environment from a file.
func WithEnvironmentFile(path string) Option {
	return func(cfg *importConfig) error {
		cfg.environmentFile = &path
		return nil
	}
}

// WithEnvironment uses an already decoded environment.
func WithEnvironment(env *Environment) Option {
	return func(cfg *importConfig) error {
		cfg.environment = env
		return nil
	}
}

// WithHTTPClient sets the client used for live calls.
// Default: a client with DefaultTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *importConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithLogger sets the logger for progress and per-endpoint failures.
func WithLogger(l oas.Logger) Option {
	return func(cfg *importConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithConcurrency bounds the number of live calls in flight.
// Default: 0 (unbounded).
func WithConcurrency(n int) Option {
	return func(cfg *importConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "WithConcurrency", Value: n, Message: "must not be negative"}
		}
		cfg.concurrency = n
		return nil
	}
}

// WithUserAgent sets the User-Agent header of live calls.
// Default: postman2openapi.UserAgent().
func WithUserAgent(ua string) Option {
	return func(cfg *importConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// sources loads the collection and environment named by cfg.
func (cfg *importConfig) sources() (*Collection, *Environment, error) {
	if err := options.ExactlyOne("collection",
		options.Source{Option: "WithCollectionFile", Set: cfg.collectionFile != nil},
		options.Source{Option: "WithCollection", Set: cfg.collection != nil},
	); err != nil {
		return nil, nil, err
	}
	if err := options.AtMostOne("environment",
		options.Source{Option: "WithEnvironmentFile", Set: cfg.environmentFile != nil},
		options.Source{Option: "WithEnvironment", Set: cfg.environment != nil},
	); err != nil {
		return nil, nil, err
	}

	collection := cfg.collection
	if cfg.collectionFile != nil {
		c, err := LoadCollection(*cfg.collectionFile)
		if err != nil {
			return nil, nil, fmt.Errorf("postman: %w", err)
		}
		collection = c
	}

	environment := cfg.environment
	if cfg.environmentFile != nil {
		env, err := LoadEnvironment(*cfg.environmentFile)
		if err != nil {
			return nil, nil, fmt.Errorf("postman: %w", err)
		}
		environment = env
	}
	return collection, environment, nil
}
