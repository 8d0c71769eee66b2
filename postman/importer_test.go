package postman

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/erraggy/postman2openapi/endpoint"
	"github.com/erraggy/postman2openapi/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded is one request seen by the test server.
type recorded struct {
	method string
	body   string
	header http.Header
	query  string
}

type ordersServer struct {
	*httptest.Server
	mu   sync.Mutex
	seen map[string]recorded
}

func newOrdersServer(t *testing.T) *ordersServer {
	t.Helper()
	s := &ordersServer{seen: make(map[string]recorded)}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.seen[r.URL.Path] = recorded{method: r.Method, body: string(body), header: r.Header.Clone(), query: r.URL.RawQuery}
		s.mu.Unlock()

		switch r.URL.Path {
		case "/orders":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id": 1, "total": 12.5}`))
		case "/users/7/orders":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(`[{"id": 1}]`))
		case "/orders/42":
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"ok": false}`))
		default:
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("OK"))
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *ordersServer) request(path string) recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[path]
}

func loadFixtures(t *testing.T, baseURL string) (*Collection, *Environment) {
	t.Helper()
	collection, err := LoadCollection(filepath.Join("testdata", "orders.postman_collection.json"))
	require.NoError(t, err)
	env, err := LoadEnvironment(filepath.Join("testdata", "dev.postman_environment.json"))
	require.NoError(t, err)
	env.Values = append(env.Values, EnvValue{Key: "baseUrl", Value: baseURL})
	return collection, env
}

func byName(endpoints []*endpoint.Endpoint) map[string]*endpoint.Endpoint {
	m := make(map[string]*endpoint.Endpoint, len(endpoints))
	for _, ep := range endpoints {
		m[ep.Name()] = ep
	}
	return m
}

func TestImport(t *testing.T) {
	srv := newOrdersServer(t)
	collection, env := loadFixtures(t, srv.URL)

	result, err := Import(context.Background(), collection, env, WithUserAgent("test-agent"))
	require.NoError(t, err)

	assert.Equal(t, "Orders API", result.Name)
	require.Len(t, result.Endpoints, 3)
	assert.Equal(t, "CreateOrder", result.Endpoints[0].Name())
	assert.Equal(t, "GetUserOrders", result.Endpoints[1].Name())
	assert.Equal(t, "UpdateOrder", result.Endpoints[2].Name())

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "Health", result.Failures[0].Name)
	assert.True(t, errors.Is(result.Failures[0].Err, oaserrors.ErrCapture))
	assert.True(t, result.HasFailures())

	endpoints := byName(result.Endpoints)

	create := endpoints["CreateOrder"]
	assert.Equal(t, "/orders", create.Path())
	assert.Equal(t, "post", create.Method())
	assert.Equal(t, []string{"Orders"}, create.Tags())
	assert.Equal(t, []endpoint.Param{{Name: "force", Example: "true"}}, create.QueryParams())
	assert.Equal(t, []endpoint.Param{{Name: "userId", Example: "7"}}, create.PathParams())
	_, hasBody := create.RequestBody()
	assert.False(t, hasBody)
	assert.Equal(t, map[string]any{"id": int64(1), "total": 12.5}, create.ResponseExample())

	createReq := srv.request("/orders")
	assert.Equal(t, http.MethodPost, createReq.method)
	assert.Equal(t, `""`, createReq.body)
	assert.Equal(t, "force=true", createReq.query)
	assert.Equal(t, "application/json", createReq.header.Get("Content-Type"))
	assert.Equal(t, "env-key", createReq.header.Get("X-Api-Key"))
	assert.Equal(t, "test-agent", createReq.header.Get("User-Agent"))

	orders := endpoints["GetUserOrders"]
	assert.Equal(t, "/users/{userId}/orders", orders.Path())
	assert.Equal(t, []any{map[string]any{"id": int64(1)}}, orders.ResponseExample())
	assert.Nil(t, orders.QueryParams())

	ordersReq := srv.request("/users/7/orders")
	assert.Equal(t, http.MethodGet, ordersReq.method)
	assert.Empty(t, ordersReq.body)
	assert.Equal(t, "abc", ordersReq.header.Get("X-Trace"))
	assert.Empty(t, ordersReq.header.Get("X-Disabled"))
	assert.Empty(t, ordersReq.header.Get("Content-Type"))

	update := endpoints["UpdateOrder"]
	assert.Equal(t, "/orders/42", update.Path())
	body, hasBody := update.RequestBody()
	assert.True(t, hasBody)
	assert.Equal(t, map[string]any{"address": map[string]any{"city": "X"}}, body)
	assert.Equal(t, map[string]any{"ok": false}, update.ResponseExample())

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(srv.request("/orders/42").body), &sent))
	assert.Equal(t, map[string]any{"address": map[string]any{"city": "X"}}, sent)
}

func TestImportWithOptionsFiles(t *testing.T) {
	srv := newOrdersServer(t)

	envPath := filepath.Join(t.TempDir(), "env.json")
	env := Environment{Values: []EnvValue{
		{Key: "baseUrl", Value: srv.URL},
		{Key: "trace", Value: "t"},
		{Key: "__userId__", Value: "7"},
	}}
	data, err := json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(envPath, data, 0o600))

	result, err := ImportWithOptions(context.Background(),
		WithCollectionFile(filepath.Join("testdata", "orders.postman_collection.json")),
		WithEnvironmentFile(envPath),
		WithConcurrency(2),
	)
	require.NoError(t, err)
	assert.Len(t, result.Endpoints, 3)
	assert.Equal(t, "collection-key", srv.request("/orders").header.Get("X-Api-Key"))
}

func TestImportWithOptionsErrors(t *testing.T) {
	collection := &Collection{Info: Info{Name: "c"}}

	tests := []struct {
		name string
		opts []Option
	}{
		{"no collection", nil},
		{"two collections", []Option{WithCollection(collection), WithCollectionFile("x.json")}},
		{"two environments", []Option{WithCollection(collection), WithEnvironment(&Environment{}), WithEnvironmentFile("e.json")}},
		{"nil collection", []Option{WithCollection(nil)}},
		{"negative concurrency", []Option{WithCollection(collection), WithConcurrency(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportWithOptions(context.Background(), tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig), "got %v", err)
		})
	}
}

func TestImportWithOptionsMissingFile(t *testing.T) {
	_, err := ImportWithOptions(context.Background(), WithCollectionFile(filepath.Join(t.TempDir(), "missing.json")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
}

func TestImportNilCollection(t *testing.T) {
	_, err := Import(context.Background(), nil, nil)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestImportEndpointFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	collection := &Collection{
		Info: Info{Name: "Failures"},
		Item: []*Item{
			{Name: "Unresolved", Request: &Request{Method: "GET", URL: URL{Host: []string{"{{baseUrl}}"}, Path: []string{"{{missing}}"}}}},
			{Name: "FormBody", Request: &Request{Method: "POST", URL: URL{Host: []string{"{{baseUrl}}"}}, Body: &Body{Mode: "formdata"}}},
			{Name: "BadJSON", Request: &Request{Method: "POST", URL: URL{Host: []string{"{{baseUrl}}"}}, Body: &Body{Mode: "raw", Raw: "{nope"}}},
			{Name: "BadMethod", Request: &Request{Method: "COPY", URL: URL{Host: []string{"{{baseUrl}}"}}}},
			{Name: "Fine", Request: &Request{Method: "GET", URL: URL{Host: []string{"{{baseUrl}}"}, Path: []string{"ok"}}}},
		},
	}
	env := &Environment{Values: []EnvValue{{Key: "baseUrl", Value: srv.URL}}}

	result, err := Import(context.Background(), collection, env)
	require.NoError(t, err)

	require.Len(t, result.Endpoints, 1)
	assert.Equal(t, "Fine", result.Endpoints[0].Name())
	assert.Equal(t, map[string]any{}, result.Endpoints[0].ResponseExample())

	require.Len(t, result.Failures, 4)
	for _, f := range result.Failures {
		assert.True(t, errors.Is(f.Err, oaserrors.ErrEndpoint), "%s: %v", f.Name, f.Err)
	}
	assert.Equal(t, "Unresolved", result.Failures[0].Name)
	assert.True(t, errors.Is(result.Failures[0].Err, oaserrors.ErrUnresolvedVariable))
}

func TestImportKeepsEmptyJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	collection := &Collection{
		Info: Info{Name: "Empty"},
		Item: []*Item{
			{Name: "Delete Order", Request: &Request{Method: "DELETE", URL: URL{Host: []string{"{{baseUrl}}"}, Path: []string{"orders", "1"}}}},
		},
	}
	env := &Environment{Values: []EnvValue{{Key: "baseUrl", Value: srv.URL}}}

	result, err := Import(context.Background(), collection, env)
	require.NoError(t, err)
	assert.Empty(t, result.Failures)
	require.Len(t, result.Endpoints, 1)
	assert.Nil(t, result.Endpoints[0].ResponseExample())
}

func TestImportConcurrencyLimit(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	collection := &Collection{Info: Info{Name: "Many"}}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		collection.Item = append(collection.Item, &Item{
			Name:    name,
			Request: &Request{Method: "GET", URL: parseRawURL(srv.URL + "/" + name)},
		})
	}

	result, err := Import(context.Background(), collection, nil, WithConcurrency(1))
	require.NoError(t, err)
	assert.Len(t, result.Endpoints, 5)
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestImportCanceled(t *testing.T) {
	srv := newOrdersServer(t)
	collection, env := loadFixtures(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Import(ctx, collection, env)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
