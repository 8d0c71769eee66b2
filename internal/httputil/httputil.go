// Package httputil provides HTTP-related validation utilities and constants.
package httputil

import (
	"mime"
	"strings"
)

// HTTP Method Constants (lowercase, as used for OpenAPI path item keys)
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// validMethods lists the methods an OpenAPI 3.0 path item can hold.
var validMethods = map[string]bool{
	MethodGet:     true,
	MethodPut:     true,
	MethodPost:    true,
	MethodDelete:  true,
	MethodOptions: true,
	MethodHead:    true,
	MethodPatch:   true,
	MethodTrace:   true,
}

// IsValidMethod reports whether method is a lowercase HTTP method that an
// OpenAPI 3.0 path item supports.
func IsValidMethod(method string) bool {
	return validMethods[method]
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and prevents invalid combinations (*/subtype).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if strings.HasSuffix(mediaType, "/*") {
		// Check format: type/* (e.g., application/*)
		parts := strings.Split(mediaType, "/")
		if len(parts) == 2 && parts[0] != "" && parts[0] != "*" {
			return true
		}
		return false
	}

	if strings.HasPrefix(mediaType, "*/") {
		return false
	}

	// Use standard MIME type parser for regular types
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}

// IsJSONMediaType reports whether a Content-Type header value denotes JSON:
// application/json or any structured syntax suffix such as application/problem+json.
// Parameters like charset are ignored.
func IsJSONMediaType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
