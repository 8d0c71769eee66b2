package endpoint

import (
	"errors"
	"testing"

	"github.com/erraggy/postman2openapi/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e, err := New("CreateOrder", "/orders", "POST",
		WithTags("Shop", "Orders"),
		WithQueryParams(Param{Name: "force", Example: "true"}),
		WithResponseExample(map[string]any{"id": int64(1)}),
	)
	require.NoError(t, err)

	assert.Equal(t, "CreateOrder", e.Name())
	assert.Equal(t, "/orders", e.Path())
	assert.Equal(t, "post", e.Method())
	assert.Equal(t, []string{"Shop", "Orders"}, e.Tags())
	assert.Equal(t, []Param{{Name: "force", Example: "true"}}, e.QueryParams())
	assert.Nil(t, e.PathParams())
	body, ok := e.RequestBody()
	assert.False(t, ok)
	assert.Nil(t, body)
	assert.Equal(t, map[string]any{"id": int64(1)}, e.ResponseExample())
	assert.Equal(t, "POST /orders: CreateOrder", e.String())
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		epName    string
		path      string
		method    string
		wantField string
	}{
		{"empty name", "  ", "/x", "get", "name"},
		{"relative path", "x", "x", "get", "path"},
		{"unknown method", "x", "/x", "connect", "method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.epName, tt.path, tt.method)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrEndpoint))
			var epErr *oaserrors.EndpointError
			require.ErrorAs(t, err, &epErr)
			assert.Equal(t, tt.wantField, epErr.Field)
		})
	}
}

func TestEmptyOptionsStayAbsent(t *testing.T) {
	e, err := New("List", "/items", "get", WithTags(), WithQueryParams(), WithPathParams())
	require.NoError(t, err)
	assert.Nil(t, e.Tags())
	assert.Nil(t, e.QueryParams())
	assert.Nil(t, e.PathParams())
}

func TestRequestBodyPresence(t *testing.T) {
	e, err := New("Update", "/items/{id}", "put", WithRequestBody(nil))
	require.NoError(t, err)
	body, ok := e.RequestBody()
	assert.True(t, ok, "explicit nil body is still declared")
	assert.Nil(t, body)
}

func TestAccessorsReturnCopies(t *testing.T) {
	tags := []string{"a"}
	e, err := New("List", "/items", "get",
		WithTags(tags...),
		WithPathParams(Param{Name: "id", Example: "1"}),
	)
	require.NoError(t, err)

	tags[0] = "mutated"
	got := e.Tags()
	got[0] = "mutated too"
	params := e.PathParams()
	params[0].Name = "other"

	assert.Equal(t, []string{"a"}, e.Tags())
	assert.Equal(t, "id", e.PathParams()[0].Name)
}
