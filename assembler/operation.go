package assembler

import (
	"github.com/erraggy/postman2openapi/endpoint"
	"github.com/erraggy/postman2openapi/oas"
)

// buildOperation renders ep as an operation. requestName is empty when the
// endpoint has no request body.
func buildOperation(ep *endpoint.Endpoint, requestName, responseName string) *oas.Operation {
	op := &oas.Operation{
		Tags: ep.Tags(),
		Responses: &oas.Responses{
			Codes: map[string]*oas.Response{
				"200": {
					Description: "OK",
					Content: map[string]*oas.MediaType{
						oas.MediaTypeJSON: {
							Schema:  oas.RefTo(responseName),
							Example: ep.ResponseExample(),
						},
					},
				},
			},
		},
	}

	for _, p := range ep.QueryParams() {
		op.Parameters = append(op.Parameters, parameter(p, oas.ParamInQuery))
	}
	for _, p := range ep.PathParams() {
		param := parameter(p, oas.ParamInPath)
		param.Required = true
		op.Parameters = append(op.Parameters, param)
	}

	if requestName != "" {
		body, _ := ep.RequestBody()
		op.RequestBody = &oas.RequestBody{
			Required: true,
			Content: map[string]*oas.MediaType{
				oas.MediaTypeJSON: {
					Schema:  oas.RefTo(requestName),
					Example: body,
				},
			},
		}
	}

	return op
}

// parameter renders p. Every parameter is typed as a string whatever its
// example holds.
func parameter(p endpoint.Param, in string) *oas.Parameter {
	return &oas.Parameter{
		Name:    p.Name,
		In:      in,
		Schema:  &oas.Schema{Type: oas.TypeString},
		Example: p.Example,
	}
}
