// Package endpoint defines the Endpoint value that flows from the Postman
// importer to the OpenAPI assembler.
//
// An Endpoint is immutable once New returns it: accessors hand out copies of
// its slices, and there are no setters.
package endpoint

import (
	"fmt"
	"strings"

	"github.com/erraggy/postman2openapi/internal/httputil"
	"github.com/erraggy/postman2openapi/oaserrors"
)

// Param is a named parameter with an example value.
type Param struct {
	Name    string
	Example any
}

// Endpoint describes one API operation observed in a collection.
type Endpoint struct {
	name   string
	path   string
	method string
	tags   []string

	queryParams []Param
	pathParams  []Param

	requestBody    any
	hasRequestBody bool

	responseExample any
}

// Option configures an Endpoint during construction.
type Option func(*Endpoint)

// WithTags sets the operation tags. An empty list leaves tags absent.
func WithTags(tags ...string) Option {
	return func(e *Endpoint) {
		if len(tags) > 0 {
			e.tags = append([]string(nil), tags...)
		}
	}
}

// WithQueryParams sets the query parameters in declaration order.
// An empty list leaves query parameters absent.
func WithQueryParams(params ...Param) Option {
	return func(e *Endpoint) {
		if len(params) > 0 {
			e.queryParams = append([]Param(nil), params...)
		}
	}
}

// WithPathParams sets the path parameters.
// An empty list leaves path parameters absent.
func WithPathParams(params ...Param) Option {
	return func(e *Endpoint) {
		if len(params) > 0 {
			e.pathParams = append([]Param(nil), params...)
		}
	}
}

// WithRequestBody sets the request body example. Passing this option marks
// the body as present even when body is nil (a JSON null payload).
func WithRequestBody(body any) Option {
	return func(e *Endpoint) {
		e.requestBody = body
		e.hasRequestBody = true
	}
}

// WithResponseExample sets the captured response example.
func WithResponseExample(example any) Option {
	return func(e *Endpoint) {
		e.responseExample = example
	}
}

// New constructs an Endpoint. The method is lower-cased; name must be
// non-empty, path must start with '/', and method must be one an OpenAPI
// path item supports.
func New(name, path, method string, opts ...Option) (*Endpoint, error) {
	method = strings.ToLower(method)
	if strings.TrimSpace(name) == "" {
		return nil, &oaserrors.EndpointError{Field: "name", Message: "name is required"}
	}
	if !strings.HasPrefix(path, "/") {
		return nil, &oaserrors.EndpointError{Name: name, Field: "path", Message: fmt.Sprintf("path %q must start with '/'", path)}
	}
	if !httputil.IsValidMethod(method) {
		return nil, &oaserrors.EndpointError{Name: name, Field: "method", Message: fmt.Sprintf("unsupported method %q", method)}
	}

	e := &Endpoint{
		name:   name,
		path:   path,
		method: method,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Name returns the human-readable operation name.
func (e *Endpoint) Name() string { return e.name }

// Path returns the path template, e.g. "/users/{userId}".
func (e *Endpoint) Path() string { return e.path }

// Method returns the lowercase HTTP method.
func (e *Endpoint) Method() string { return e.method }

// Tags returns a copy of the tags, or nil when absent.
func (e *Endpoint) Tags() []string {
	if e.tags == nil {
		return nil
	}
	return append([]string(nil), e.tags...)
}

// QueryParams returns a copy of the query parameters, or nil when absent.
func (e *Endpoint) QueryParams() []Param {
	if e.queryParams == nil {
		return nil
	}
	return append([]Param(nil), e.queryParams...)
}

// PathParams returns a copy of the path parameters, or nil when absent.
func (e *Endpoint) PathParams() []Param {
	if e.pathParams == nil {
		return nil
	}
	return append([]Param(nil), e.pathParams...)
}

// RequestBody returns the request body example and whether one was declared.
func (e *Endpoint) RequestBody() (any, bool) {
	return e.requestBody, e.hasRequestBody
}

// ResponseExample returns the captured response example.
func (e *Endpoint) ResponseExample() any { return e.responseExample }

// String returns "METHOD /path: name".
func (e *Endpoint) String() string {
	return fmt.Sprintf("%s %s: %s", strings.ToUpper(e.method), e.path, e.name)
}
