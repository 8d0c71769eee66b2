// Package naming builds OpenAPI component names from Postman item names,
// HTTP methods, and JSON property names.
//
// Component names follow the pattern {Method}{Name}{Request|Response} with
// one capitalized suffix per nested property, e.g. PostCreateOrderRequestAddress.
// OpenAPI restricts component keys to [A-Za-z0-9._-], so other runes are dropped.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
