package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/postman2openapi/assembler"
	"github.com/erraggy/postman2openapi/internal/oascheck"
	"github.com/erraggy/postman2openapi/internal/pathutil"
	"github.com/erraggy/postman2openapi/postman"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Collection  documentInput `json:"collection"            jsonschema:"The Postman collection (v2.1 export) to convert"`
	Environment documentInput `json:"environment,omitempty" jsonschema:"Optional Postman environment whose values override collection variables"`
	Concurrency int           `json:"concurrency,omitempty" jsonschema:"Maximum live calls in flight. Defaults to POSTMAN2OPENAPI_CONCURRENCY"`
	Validate    bool          `json:"validate,omitempty"    jsonschema:"Check the generated document with an OpenAPI validator and report problems"`
	Output      string        `json:"output,omitempty"      jsonschema:"File path to write the generated document. If omitted the document is returned inline."`
}

type convertFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type convertOutput struct {
	Title          string           `json:"title"`
	EndpointCount  int              `json:"endpoint_count"`
	PathCount      int              `json:"path_count"`
	OperationCount int              `json:"operation_count"`
	SchemaCount    int              `json:"schema_count"`
	Failures       []convertFailure `json:"failures,omitempty"`
	Warnings       []string         `json:"warnings,omitempty"`
	Problems       []string         `json:"problems,omitempty"`
	WrittenTo      string           `json:"written_to,omitempty"`
	Document       string           `json:"document,omitempty"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	collection, err := input.Collection.collection()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	environment, err := input.Environment.environment()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := input.Output
	if output != "" {
		if output, err = pathutil.SanitizeOutputPath(output); err != nil {
			return errResult(err), convertOutput{}, nil
		}
		if err := pathutil.RejectInputOverwrite(output, input.Collection.File, input.Environment.File); err != nil {
			return errResult(err), convertOutput{}, nil
		}
	}

	concurrency := cfg.Concurrency
	if input.Concurrency > 0 {
		concurrency = input.Concurrency
	}

	logger := toolLogger()
	imported, err := postman.Import(ctx, collection, environment,
		postman.WithHTTPClient(newCaptureClient(*cfg)),
		postman.WithConcurrency(concurrency),
		postman.WithLogger(logger),
	)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	assembled := assembler.Assemble(imported.Name, imported.Endpoints, assembler.WithLogger(logger))
	data, err := assembler.MarshalYAML(assembled.Document)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result := convertOutput{
		Title:          imported.Name,
		EndpointCount:  len(imported.Endpoints),
		PathCount:      assembled.Stats.PathCount,
		OperationCount: assembled.Stats.OperationCount,
		SchemaCount:    assembled.Stats.SchemaCount,
		Warnings:       assembled.Warnings,
	}

	result.Failures = makeSlice[convertFailure](len(imported.Failures))
	for _, f := range imported.Failures {
		result.Failures = append(result.Failures, convertFailure{Name: f.Name, Error: sanitizeError(f.Err)})
	}

	if input.Validate {
		result.Problems = oascheck.Check(ctx, data)
	}

	if output != "" {
		if err := assembler.WriteFile(output, assembled.Document); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		result.WrittenTo = input.Output
	} else {
		result.Document = string(data)
	}

	return nil, result, nil
}
