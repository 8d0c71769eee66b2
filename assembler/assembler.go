package assembler

import (
	"fmt"

	"github.com/erraggy/postman2openapi/endpoint"
	"github.com/erraggy/postman2openapi/inferrer"
	"github.com/erraggy/postman2openapi/internal/maputil"
	"github.com/erraggy/postman2openapi/internal/naming"
	"github.com/erraggy/postman2openapi/oas"
)

// InfoVersion is the info.version written to every generated document.
const InfoVersion = "0.5.0"

// Result contains the assembled document and the issues found while building it.
type Result struct {
	// Document is the generated OpenAPI document. Never nil.
	Document *oas.Document
	// Warnings lists non-fatal issues, including those raised during inference.
	Warnings []string
	// Stats summarizes the generated document.
	Stats oas.DocumentStats
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Option configures Assemble.
type Option func(*config)

type config struct {
	logger oas.Logger
}

// WithLogger sets the logger for warnings and progress messages.
func WithLogger(l oas.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

type assembler struct {
	doc      *oas.Document
	logger   oas.Logger
	warnings []string
}

// Assemble builds a document titled name from endpoints.
// Endpoints are processed in order, so later endpoints win on collisions.
func Assemble(name string, endpoints []*endpoint.Endpoint, opts ...Option) *Result {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	a := &assembler{
		doc:    oas.NewDocument(name, InfoVersion),
		logger: oas.OrNop(cfg.logger),
	}
	for _, ep := range endpoints {
		if ep == nil {
			continue
		}
		a.add(ep)
	}

	stats := oas.GetDocumentStats(a.doc)
	a.logger.Debug("assembled document",
		"title", name,
		"paths", stats.PathCount,
		"operations", stats.OperationCount,
		"schemas", stats.SchemaCount)

	return &Result{
		Document: a.doc,
		Warnings: a.warnings,
		Stats:    stats,
	}
}

func (a *assembler) warn(msg string, attrs ...any) {
	a.warnings = append(a.warnings, msg)
	a.logger.Warn(msg, attrs...)
}

func (a *assembler) add(ep *endpoint.Endpoint) {
	method := ep.Method()
	logger := a.logger.With("endpoint", ep.Name())

	var requestName string
	body, hasBody := ep.RequestBody()
	if hasBody && !inferrer.IsEmpty(body) {
		requestName = naming.ComponentName(method, ep.Name(), naming.SuffixRequest)
		a.mergeSchemas(inferrer.Infer(requestName, body, inferrer.WithLogger(logger)))
	}

	responseName := naming.ComponentName(method, ep.Name(), naming.SuffixResponse)
	a.mergeSchemas(inferrer.Infer(responseName, ep.ResponseExample(), inferrer.WithLogger(logger)))

	op := buildOperation(ep, requestName, responseName)

	item, ok := a.doc.Paths[ep.Path()]
	if !ok {
		item = &oas.PathItem{}
		a.doc.Paths[ep.Path()] = item
	}
	if item.Operation(method) != nil {
		a.warn(fmt.Sprintf("operation %s %s is defined more than once, overwriting", method, ep.Path()),
			"endpoint", ep.Name())
	}
	// Methods were validated by endpoint.New.
	_ = item.SetOperation(method, op)
}

// mergeSchemas copies one inference result into the document.
// Inference warnings are already logged by the inferrer.
func (a *assembler) mergeSchemas(r *inferrer.Result) {
	a.warnings = append(a.warnings, r.Warnings...)
	for _, name := range maputil.SortedKeys(r.Schemas) {
		if _, exists := a.doc.Components.Schemas[name]; exists {
			a.warn(fmt.Sprintf("%s is already present in schemas, overwriting", name), "schema", name)
		}
		a.doc.Components.Schemas[name] = r.Schemas[name]
	}
}
