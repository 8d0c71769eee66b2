package postman

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/erraggy/postman2openapi/endpoint"
	"github.com/erraggy/postman2openapi/inferrer"
	"github.com/erraggy/postman2openapi/internal/httputil"
	"github.com/erraggy/postman2openapi/oas"
	"github.com/erraggy/postman2openapi/oaserrors"
	"golang.org/x/sync/errgroup"
)

// Result contains the endpoints imported from a collection.
type Result struct {
	// Name is the collection's declared name.
	Name string
	// Endpoints lists the endpoints in collection order.
	Endpoints []*endpoint.Endpoint
	// Failures lists the items that were dropped.
	Failures []Failure
}

// HasFailures returns true if any item was dropped
func (r *Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// Failure records a collection item that could not be imported.
type Failure struct {
	// Name is the item name.
	Name string
	// Err is an *oaserrors.EndpointError or *oaserrors.CaptureError.
	Err error
}

// ImportWithOptions imports a collection using functional options.
//
// Example:
//
//	result, err := postman.ImportWithOptions(ctx,
//	    postman.WithCollectionFile("orders.postman_collection.json"),
//	    postman.WithEnvironmentFile("dev.postman_environment.json"),
//	    postman.WithConcurrency(8),
//	)
func ImportWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("postman: invalid options: %w", err)
	}
	collection, environment, err := cfg.sources()
	if err != nil {
		return nil, err
	}
	return run(ctx, cfg, collection, environment)
}

// Import converts every request of collection into an endpoint, replaying
// each request to capture its response. environment may be nil.
//
// Items that fail are logged, recorded in Result.Failures and left out; they
// never fail the import. An error is returned only when the import cannot
// start or ctx is canceled. Source options (WithCollection and friends) are
// ignored.
func Import(ctx context.Context, collection *Collection, environment *Environment, opts ...Option) (*Result, error) {
	if collection == nil {
		return nil, &oaserrors.ConfigError{Option: "collection", Message: "collection cannot be nil"}
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("postman: invalid options: %w", err)
	}
	return run(ctx, cfg, collection, environment)
}

type importer struct {
	vars      Variables
	auth      http.Header
	client    *http.Client
	userAgent string
	logger    oas.Logger
}

func run(ctx context.Context, cfg *importConfig, collection *Collection, environment *Environment) (*Result, error) {
	vars := NewVariables(collection, environment)
	auth, err := authHeader(collection.Auth, vars)
	if err != nil {
		return nil, fmt.Errorf("postman: collection auth: %w", err)
	}
	if collection.Auth != nil && collection.Auth.Type != "apikey" {
		cfg.logger.Debug("ignoring unsupported auth type", "type", collection.Auth.Type)
	}

	imp := &importer{
		vars:      vars,
		auth:      auth,
		client:    cfg.httpClient,
		userAgent: cfg.userAgent,
		logger:    cfg.logger,
	}

	leaves := walk(collection.Item)
	endpoints := make([]*endpoint.Endpoint, len(leaves))
	errs := make([]error, len(leaves))

	var g errgroup.Group
	if cfg.concurrency > 0 {
		g.SetLimit(cfg.concurrency)
	}
	for i, l := range leaves {
		g.Go(func() error {
			endpoints[i], errs[i] = imp.build(ctx, l)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("postman: import canceled: %w", err)
	}

	result := &Result{Name: collection.Info.Name}
	for i, l := range leaves {
		if errs[i] != nil {
			imp.logger.Warn("dropping endpoint", "endpoint", l.item.Name, "error", errs[i])
			result.Failures = append(result.Failures, Failure{Name: l.item.Name, Err: errs[i]})
			continue
		}
		result.Endpoints = append(result.Endpoints, endpoints[i])
	}
	imp.logger.Info("imported collection",
		"collection", result.Name,
		"endpoints", len(result.Endpoints),
		"failures", len(result.Failures))
	return result, nil
}

// build extracts the endpoint for one leaf and captures its live response.
func (imp *importer) build(ctx context.Context, l leaf) (*endpoint.Endpoint, error) {
	name := l.item.Name
	req := l.item.Request

	method := strings.ToLower(req.Method)
	if method == "" {
		method = httputil.MethodGet
	}
	if !httputil.IsValidMethod(method) {
		return nil, &oaserrors.EndpointError{Name: name, Field: "request.method", Message: fmt.Sprintf("unsupported method %q", req.Method)}
	}

	opts := []endpoint.Option{
		endpoint.WithTags(l.folders...),
		endpoint.WithQueryParams(queryParams(req.URL.Query)...),
		endpoint.WithPathParams(imp.vars.PathParams()...),
	}

	body, raw, err := requestBody(name, req.Body)
	if err != nil {
		return nil, err
	}

	call := &liveCall{method: method}
	switch {
	case raw != "":
		resolved, err := imp.vars.Resolve(raw)
		if err != nil {
			return nil, &oaserrors.EndpointError{Name: name, Field: "request.body", Message: "cannot resolve body", Cause: err}
		}
		call.body = []byte(resolved)
		opts = append(opts, endpoint.WithRequestBody(body))
	case method == httputil.MethodPost:
		// The probe body is sent but not documented.
		call.body = emptyPostBody
	}

	call.url, err = buildURL(req.URL, imp.vars)
	if err != nil {
		return nil, &oaserrors.EndpointError{Name: name, Field: "request.url", Message: "cannot build URL", Cause: err}
	}
	call.header, err = buildHeader(imp.auth, req.Header, imp.vars, imp.userAgent)
	if err != nil {
		return nil, &oaserrors.EndpointError{Name: name, Field: "request.header", Message: "cannot resolve header", Cause: err}
	}

	imp.logger.Debug("capturing response", "endpoint", name, "method", strings.ToUpper(method), "url", call.url)
	example, err := send(ctx, imp.client, call)
	if err != nil {
		return nil, err
	}
	opts = append(opts, endpoint.WithResponseExample(example))

	return endpoint.New(name, composePath(req.URL.Path), method, opts...)
}

// requestBody parses a raw JSON body. An absent body or one with only
// whitespace yields an empty raw string.
func requestBody(name string, body *Body) (any, string, error) {
	if body == nil {
		return nil, "", nil
	}
	if body.Mode != "" && body.Mode != "raw" {
		return nil, "", &oaserrors.EndpointError{Name: name, Field: "request.body", Message: fmt.Sprintf("unsupported body mode %q", body.Mode)}
	}
	if strings.TrimSpace(body.Raw) == "" {
		return nil, "", nil
	}
	example, err := inferrer.ParseExample([]byte(body.Raw))
	if err != nil {
		return nil, "", &oaserrors.EndpointError{Name: name, Field: "request.body", Message: "body is not valid JSON", Cause: err}
	}
	return example, body.Raw, nil
}

// queryParams returns the enabled query pairs in declaration order.
func queryParams(query []QueryParam) []endpoint.Param {
	var params []endpoint.Param
	for _, q := range query {
		if q.Disabled {
			continue
		}
		params = append(params, endpoint.Param{Name: q.Key, Example: q.Value})
	}
	return params
}
