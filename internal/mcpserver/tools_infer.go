package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/postman2openapi/inferrer"
	"github.com/erraggy/postman2openapi/internal/naming"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"
)

type inferInput struct {
	Name    string `json:"name"    jsonschema:"Name of the root component. Words are capitalized and joined\\, e.g. 'create order' becomes CreateOrder"`
	Example string `json:"example" jsonschema:"JSON example value to infer schemas from"`
}

type inferOutput struct {
	Root        string   `json:"root"`
	SchemaCount int      `json:"schema_count"`
	Warnings    []string `json:"warnings,omitempty"`
	Schemas     string   `json:"schemas,omitempty"`
}

func handleInferSchema(_ context.Context, _ *mcp.CallToolRequest, input inferInput) (*mcp.CallToolResult, inferOutput, error) {
	root := naming.Capitalize(input.Name)
	if root == "" {
		return errResult(fmt.Errorf("name is required and must contain at least one letter or digit")), inferOutput{}, nil
	}
	if input.Example == "" {
		return errResult(fmt.Errorf("example is required")), inferOutput{}, nil
	}
	if len(input.Example) > cfg.MaxInlineSize {
		return errResult(fmt.Errorf("example size %d bytes exceeds maximum %d bytes; set %s to increase",
			len(input.Example), cfg.MaxInlineSize, envMaxInlineSize)), inferOutput{}, nil
	}

	example, err := inferrer.ParseExample([]byte(input.Example))
	if err != nil {
		return errResult(fmt.Errorf("invalid example: %w", err)), inferOutput{}, nil
	}

	result := inferrer.Infer(root, example, inferrer.WithLogger(toolLogger()))
	output := inferOutput{
		Root:        root,
		SchemaCount: len(result.Schemas),
		Warnings:    result.Warnings,
	}
	if len(result.Schemas) > 0 {
		data, err := yaml.Marshal(result.Schemas)
		if err != nil {
			return errResult(err), inferOutput{}, nil
		}
		output.Schemas = string(data)
	}
	return nil, output, nil
}
