package postman

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/erraggy/postman2openapi/inferrer"
	"github.com/erraggy/postman2openapi/internal/httputil"
	"github.com/erraggy/postman2openapi/oaserrors"
)

// maxResponseSize bounds the response bodies read during capture (10 MiB).
const maxResponseSize = 10 << 20

// emptyPostBody is sent for POST requests that declare no body.
var emptyPostBody = []byte(`""`)

// liveCall is a fully resolved request ready to send.
type liveCall struct {
	method string
	url    string
	header http.Header
	body   []byte
}

// buildURL resolves u into a concrete URL.
//
// Host segments are resolved and joined with '.'. The protocol is prefixed
// when the resolved host carries no scheme. ":name" path segments take their
// value from the URL's own variables, then from the __name__ variable, and
// are sent verbatim otherwise.
func buildURL(u URL, vars Variables) (string, error) {
	hostParts := make([]string, 0, len(u.Host))
	for _, seg := range u.Host {
		resolved, err := vars.Resolve(seg)
		if err != nil {
			return "", err
		}
		hostParts = append(hostParts, resolved)
	}
	base := strings.Join(hostParts, ".")
	if !strings.Contains(base, "://") && u.Protocol != "" {
		base = u.Protocol + "://" + base
	}
	if u.Port != "" {
		base += ":" + u.Port
	}
	base = strings.TrimSuffix(base, "/")

	urlVars := make(map[string]string, len(u.Variable))
	for _, v := range u.Variable {
		if !v.Disabled {
			urlVars[v.Key] = stringify(v.Value)
		}
	}

	var b strings.Builder
	b.WriteString(base)
	for _, seg := range u.Path {
		if seg == "" {
			continue
		}
		b.WriteByte('/')
		if name, ok := strings.CutPrefix(seg, ":"); ok && name != "" {
			b.WriteString(pathValue(name, seg, urlVars, vars))
			continue
		}
		resolved, err := vars.Resolve(seg)
		if err != nil {
			return "", err
		}
		b.WriteString(resolved)
	}

	sep := "?"
	for _, q := range u.Query {
		if q.Disabled {
			continue
		}
		key, err := vars.Resolve(q.Key)
		if err != nil {
			return "", err
		}
		value, err := vars.Resolve(q.Value)
		if err != nil {
			return "", err
		}
		b.WriteString(sep + url.QueryEscape(key) + "=" + url.QueryEscape(value))
		sep = "&"
	}
	return b.String(), nil
}

func pathValue(name, literal string, urlVars map[string]string, vars Variables) string {
	if v, ok := urlVars[name]; ok && v != "" {
		if resolved, err := vars.Resolve(v); err == nil {
			return resolved
		}
	}
	if v, ok := vars.Lookup("__" + name + "__"); ok {
		return v
	}
	return literal
}

// buildHeader assembles request headers: defaults, then auth, then the
// request's own headers. Disabled headers are skipped.
func buildHeader(auth http.Header, headers []Header, vars Variables, userAgent string) (http.Header, error) {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	if userAgent != "" {
		h.Set("User-Agent", userAgent)
	}
	for key, values := range auth {
		h[key] = append([]string(nil), values...)
	}
	for _, header := range headers {
		if header.Disabled {
			continue
		}
		key, err := vars.Resolve(header.Key)
		if err != nil {
			return nil, err
		}
		value, err := vars.Resolve(header.Value)
		if err != nil {
			return nil, err
		}
		if key == "" {
			continue
		}
		h.Set(key, value)
	}
	return h, nil
}

// authHeader builds the header injected by apikey auth. Other auth types
// are not supported and yield no header.
func authHeader(auth *Auth, vars Variables) (http.Header, error) {
	h := make(http.Header)
	if auth == nil || auth.Type != "apikey" {
		return h, nil
	}

	var key, value string
	for _, p := range auth.APIKey {
		switch p.Key {
		case "key":
			key = stringify(p.Value)
		case "value":
			resolved, err := vars.Resolve(stringify(p.Value))
			if err != nil {
				return nil, err
			}
			value = resolved
		}
	}
	if key != "" {
		h.Set(key, value)
	}
	return h, nil
}

// send performs call and decodes the JSON response. Any status code is
// accepted as long as the body is JSON.
func send(ctx context.Context, client *http.Client, call *liveCall) (any, error) {
	method := strings.ToUpper(call.method)

	var body io.Reader
	if call.body != nil {
		body = bytes.NewReader(call.body)
	}
	req, err := http.NewRequestWithContext(ctx, method, call.url, body)
	if err != nil {
		return nil, &oaserrors.CaptureError{Method: method, URL: call.url, Message: "invalid request", Cause: err}
	}
	req.Header = call.header.Clone()
	if call.body != nil && !httputil.IsValidMediaType(req.Header.Get("Content-Type")) {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &oaserrors.CaptureError{Method: method, URL: call.url, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	contentType := resp.Header.Get("Content-Type")
	if !httputil.IsJSONMediaType(contentType) {
		return nil, &oaserrors.CaptureError{
			Method:     method,
			URL:        call.url,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("response content type %q is not JSON", contentType),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, &oaserrors.CaptureError{Method: method, URL: call.url, StatusCode: resp.StatusCode, Message: "failed to read response", Cause: err}
	}
	if len(data) > maxResponseSize {
		return nil, &oaserrors.CaptureError{
			Method:     method,
			URL:        call.url,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("response exceeds %d bytes", maxResponseSize),
		}
	}

	// An empty JSON response (e.g. 204) documents an empty example.
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	example, err := inferrer.ParseExample(data)
	if err != nil {
		return nil, &oaserrors.CaptureError{Method: method, URL: call.url, StatusCode: resp.StatusCode, Message: "invalid JSON response", Cause: err}
	}
	return example, nil
}
