package oas

import (
	"fmt"

	"github.com/erraggy/postman2openapi/internal/httputil"
)

// GetOperations extracts a map of all operations from a PathItem.
// Returns a map with keys for HTTP methods and values pointing to the corresponding Operation (or nil if not defined).
func GetOperations(pathItem *PathItem) map[string]*Operation {
	return map[string]*Operation{
		httputil.MethodGet:     pathItem.Get,
		httputil.MethodPut:     pathItem.Put,
		httputil.MethodPost:    pathItem.Post,
		httputil.MethodDelete:  pathItem.Delete,
		httputil.MethodOptions: pathItem.Options,
		httputil.MethodHead:    pathItem.Head,
		httputil.MethodPatch:   pathItem.Patch,
		httputil.MethodTrace:   pathItem.Trace,
	}
}

// Operation returns the operation stored for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	return GetOperations(p)[method]
}

// SetOperation stores op under the lowercase method.
// It returns an error for methods a PathItem cannot hold.
func (p *PathItem) SetOperation(method string, op *Operation) error {
	switch method {
	case httputil.MethodGet:
		p.Get = op
	case httputil.MethodPut:
		p.Put = op
	case httputil.MethodPost:
		p.Post = op
	case httputil.MethodDelete:
		p.Delete = op
	case httputil.MethodOptions:
		p.Options = op
	case httputil.MethodHead:
		p.Head = op
	case httputil.MethodPatch:
		p.Patch = op
	case httputil.MethodTrace:
		p.Trace = op
	default:
		return fmt.Errorf("oas: unsupported method %q", method)
	}
	return nil
}
