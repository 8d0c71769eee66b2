package assembler

import (
	"testing"

	"github.com/erraggy/postman2openapi/endpoint"
	"github.com/erraggy/postman2openapi/oas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEndpoint(t *testing.T, name, path, method string, opts ...endpoint.Option) *endpoint.Endpoint {
	t.Helper()
	ep, err := endpoint.New(name, path, method, opts...)
	require.NoError(t, err)
	return ep
}

func createOrder(t *testing.T) *endpoint.Endpoint {
	return mustEndpoint(t, "CreateOrder", "/orders", "POST",
		endpoint.WithQueryParams(endpoint.Param{Name: "force", Example: "true"}),
		endpoint.WithResponseExample(map[string]any{"id": int64(1), "total": 12.5}),
	)
}

func TestAssembleCreateOrder(t *testing.T) {
	result := Assemble("Orders", []*endpoint.Endpoint{createOrder(t)})

	doc := result.Document
	assert.Equal(t, "3.0.2", doc.OpenAPI)
	assert.Equal(t, "Orders", doc.Info.Title)
	assert.Equal(t, InfoVersion, doc.Info.Version)
	assert.False(t, result.HasWarnings())

	item := doc.Paths["/orders"]
	require.NotNil(t, item)
	op := item.Post
	require.NotNil(t, op)

	require.Len(t, op.Parameters, 1)
	assert.Equal(t, &oas.Parameter{
		Name:    "force",
		In:      oas.ParamInQuery,
		Schema:  &oas.Schema{Type: oas.TypeString},
		Example: "true",
	}, op.Parameters[0])
	assert.Nil(t, op.RequestBody)
	assert.Empty(t, op.OperationID)

	ok := op.Responses.Codes["200"]
	require.NotNil(t, ok)
	assert.Equal(t, "OK", ok.Description)
	media := ok.Content[oas.MediaTypeJSON]
	assert.Equal(t, "#/components/schemas/PostCreateOrderResponse", media.Schema.Ref)
	assert.Equal(t, map[string]any{"id": int64(1), "total": 12.5}, media.Example)

	assert.Equal(t, map[string]*oas.Schema{
		"PostCreateOrderResponse": {
			Type: oas.TypeObject,
			Properties: map[string]*oas.Schema{
				"id":    {Type: oas.TypeInteger},
				"total": {Type: oas.TypeNumber},
			},
			AdditionalProperties: false,
		},
	}, doc.Components.Schemas)

	assert.Equal(t, oas.DocumentStats{PathCount: 1, OperationCount: 1, SchemaCount: 1}, result.Stats)
}

func TestAssembleRequestBody(t *testing.T) {
	ep := mustEndpoint(t, "CreateOrder", "/orders", "post",
		endpoint.WithRequestBody(map[string]any{"address": map[string]any{"city": "X"}}),
		endpoint.WithResponseExample(map[string]any{"id": int64(1)}),
	)
	result := Assemble("Orders", []*endpoint.Endpoint{ep})

	schemas := result.Document.Components.Schemas
	assert.Contains(t, schemas, "PostCreateOrderRequest")
	assert.Contains(t, schemas, "PostCreateOrderRequestAddress")
	assert.Contains(t, schemas, "PostCreateOrderResponse")
	assert.Equal(t, "#/components/schemas/PostCreateOrderRequestAddress",
		schemas["PostCreateOrderRequest"].Properties["address"].Ref)

	body := result.Document.Paths["/orders"].Post.RequestBody
	require.NotNil(t, body)
	assert.True(t, body.Required)
	assert.Equal(t, "#/components/schemas/PostCreateOrderRequest", body.Content[oas.MediaTypeJSON].Schema.Ref)
	assert.Equal(t, map[string]any{"address": map[string]any{"city": "X"}}, body.Content[oas.MediaTypeJSON].Example)
}

func TestAssembleEmptyRequestBodyIsOmitted(t *testing.T) {
	for _, body := range []any{nil, "", map[string]any{}} {
		ep := mustEndpoint(t, "Ping", "/ping", "post", endpoint.WithRequestBody(body))
		result := Assemble("Ping", []*endpoint.Endpoint{ep})

		assert.Nil(t, result.Document.Paths["/ping"].Post.RequestBody)
		assert.NotContains(t, result.Document.Components.Schemas, "PostPingRequest")
	}
}

func TestAssembleEmptyResponseStillReferencesComponent(t *testing.T) {
	ep := mustEndpoint(t, "Ping", "/ping", "get")
	result := Assemble("Ping", []*endpoint.Endpoint{ep})

	media := result.Document.Paths["/ping"].Get.Responses.Codes["200"].Content[oas.MediaTypeJSON]
	assert.Equal(t, "#/components/schemas/GetPingResponse", media.Schema.Ref)
	assert.Nil(t, media.Example)
	assert.Empty(t, result.Document.Components.Schemas)
}

func TestAssembleParameters(t *testing.T) {
	ep := mustEndpoint(t, "Get user orders", "/users/{userId}/orders", "get",
		endpoint.WithTags("Users", "Orders"),
		endpoint.WithQueryParams(endpoint.Param{Name: "page", Example: "2"}, endpoint.Param{Name: "size", Example: "10"}),
		endpoint.WithPathParams(endpoint.Param{Name: "userId", Example: "42"}),
	)
	result := Assemble("Users", []*endpoint.Endpoint{ep})

	op := result.Document.Paths["/users/{userId}/orders"].Get
	require.NotNil(t, op)
	assert.Equal(t, []string{"Users", "Orders"}, op.Tags)
	require.Len(t, op.Parameters, 3)
	assert.Equal(t, "page", op.Parameters[0].Name)
	assert.Equal(t, "size", op.Parameters[1].Name)
	assert.Equal(t, "userId", op.Parameters[2].Name)
	assert.Equal(t, oas.ParamInPath, op.Parameters[2].In)
	assert.True(t, op.Parameters[2].Required)
	assert.False(t, op.Parameters[0].Required)
	assert.Contains(t, result.Document.Components.Schemas, "GetGetUserOrdersResponse")
}

func TestAssembleMergesPaths(t *testing.T) {
	list := mustEndpoint(t, "ListOrders", "/orders", "get",
		endpoint.WithResponseExample([]any{map[string]any{"id": int64(1)}}))
	result := Assemble("Orders", []*endpoint.Endpoint{list, createOrder(t)})

	require.Len(t, result.Document.Paths, 1)
	item := result.Document.Paths["/orders"]
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Post)
	assert.Equal(t, 2, result.Stats.OperationCount)
	assert.Contains(t, result.Document.Components.Schemas, "GetListOrdersResponseItem")
}

func TestAssembleDuplicateOperationWarns(t *testing.T) {
	first := mustEndpoint(t, "CreateOrder", "/orders", "post",
		endpoint.WithResponseExample(map[string]any{"id": int64(1)}))
	second := mustEndpoint(t, "CreateOrder", "/orders", "post",
		endpoint.WithResponseExample(map[string]any{"id": "abc"}))

	result := Assemble("Orders", []*endpoint.Endpoint{first, second})

	require.True(t, result.HasWarnings())
	assert.Contains(t, result.Warnings, "operation post /orders is defined more than once, overwriting")
	assert.Contains(t, result.Warnings, "PostCreateOrderResponse is already present in schemas, overwriting")
	assert.Equal(t, oas.TypeString,
		result.Document.Components.Schemas["PostCreateOrderResponse"].Properties["id"].Type)
}

func TestAssembleCollectsInferenceWarnings(t *testing.T) {
	ep := mustEndpoint(t, "Tags", "/tags", "get",
		endpoint.WithResponseExample(map[string]any{"tags": []any{}}))
	result := Assemble("Tags", []*endpoint.Endpoint{ep})

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "can not determine items type of tags")
}

func TestAssembleNoEndpoints(t *testing.T) {
	result := Assemble("Empty", nil)
	assert.Empty(t, result.Document.Paths)
	assert.Empty(t, result.Document.Components.Schemas)
	assert.Equal(t, oas.DocumentStats{}, result.Stats)
}
