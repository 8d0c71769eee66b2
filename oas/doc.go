// Package oas provides the typed OpenAPI 3.0 document model emitted by
// postman2openapi, along with the Logger interface shared by every package.
//
// The model covers the subset of OpenAPI 3.0.2 that example-driven generation
// produces: paths with operations, query/path parameters, JSON request bodies,
// a single 200 response per operation, and component schemas. Struct field
// order matches the order fields are written in YAML output.
//
// # Logging
//
// Packages accept a [Logger] through a WithLogger option. [NopLogger] is the
// default; [NewSlogAdapter] wraps a *slog.Logger:
//
//	logger := oas.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//	result := assembler.Assemble("My API", endpoints, assembler.WithLogger(logger))
package oas
