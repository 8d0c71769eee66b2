// Package oaserrors provides structured error types for the postman2openapi library.
//
// Import path: github.com/erraggy/postman2openapi/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ParseError]: malformed Postman collection or environment
//   - [ConfigError]: invalid configuration or input options
//   - [EndpointError]: a single collection item could not be converted
//   - [CaptureError]: a single live call produced no usable JSON response
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrEndpoint]: Matches any [EndpointError]
//   - [ErrCapture]: Matches any [CaptureError]
//
// [ErrUnresolvedVariable] is wrapped by endpoint errors raised when a
// {{name}} token has no value in the environment.
//
// Only [ParseError] and [ConfigError] are fatal to a conversion run. The other
// two are recorded per endpoint and the endpoint is left out of the output.
package oaserrors
