package postman

import (
	"encoding/json"
	"strings"
)

// Collection is a Postman collection (format v2.1). Only the fields the
// importer reads are modeled; everything else is ignored.
type Collection struct {
	Info     Info       `json:"info"`
	Item     []*Item    `json:"item"`
	Auth     *Auth      `json:"auth,omitempty"`
	Variable []Variable `json:"variable,omitempty"`
}

// Info holds collection metadata.
type Info struct {
	Name   string `json:"name"`
	Schema string `json:"schema,omitempty"`
}

// Item is either a folder (Item set) or a request (Request set).
type Item struct {
	Name    string   `json:"name"`
	Item    []*Item  `json:"item,omitempty"`
	Request *Request `json:"request,omitempty"`
}

// IsFolder reports whether the item groups other items.
func (i *Item) IsFolder() bool {
	return i.Request == nil
}

// Request is a saved HTTP request.
type Request struct {
	Method string   `json:"method"`
	URL    URL      `json:"url"`
	Header []Header `json:"header,omitempty"`
	Body   *Body    `json:"body,omitempty"`
}

// URL is a structured request URL. Postman also allows a plain string,
// which UnmarshalJSON splits into the same fields.
type URL struct {
	Raw      string       `json:"raw,omitempty"`
	Protocol string       `json:"protocol,omitempty"`
	Host     []string     `json:"host,omitempty"`
	Port     string       `json:"port,omitempty"`
	Path     []string     `json:"path,omitempty"`
	Query    []QueryParam `json:"query,omitempty"`
	Variable []Variable   `json:"variable,omitempty"`
}

// UnmarshalJSON accepts the object form and the plain string form. In the
// object form host and path may also be given as strings.
func (u *URL) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*u = parseRawURL(raw)
		return nil
	}

	var aux struct {
		Raw      string          `json:"raw"`
		Protocol string          `json:"protocol"`
		Host     json.RawMessage `json:"host"`
		Port     string          `json:"port"`
		Path     json.RawMessage `json:"path"`
		Query    []QueryParam    `json:"query"`
		Variable []Variable      `json:"variable"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	host, err := segments(aux.Host, ".")
	if err != nil {
		return err
	}
	path, err := segments(aux.Path, "/")
	if err != nil {
		return err
	}
	*u = URL{
		Raw:      aux.Raw,
		Protocol: aux.Protocol,
		Host:     host,
		Port:     aux.Port,
		Path:     path,
		Query:    aux.Query,
		Variable: aux.Variable,
	}
	return nil
}

// segments decodes a list of strings or a single sep-separated string.
func segments(data json.RawMessage, sep string) ([]string, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return splitNonEmpty(s, sep), nil
}

// parseRawURL splits a URL string such as
// "{{baseUrl}}/users/:id?verbose=true" into its parts. Tokens are kept
// verbatim; they are resolved when the request is sent.
func parseRawURL(raw string) URL {
	u := URL{Raw: raw}
	rest := raw
	if i := strings.Index(rest, "://"); i >= 0 {
		u.Protocol = rest[:i]
		rest = rest[i+3:]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		for _, pair := range strings.Split(rest[i+1:], "&") {
			if pair == "" {
				continue
			}
			key, value, _ := strings.Cut(pair, "=")
			u.Query = append(u.Query, QueryParam{Key: key, Value: value})
		}
		rest = rest[:i]
	}

	host, path, _ := strings.Cut(rest, "/")
	if host != "" {
		u.Host = []string{host}
	}
	u.Path = splitNonEmpty(path, "/")
	return u
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// QueryParam is one query string pair.
type QueryParam struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Variable is a named value declared on a collection or URL.
type Variable struct {
	Key      string `json:"key"`
	Value    any    `json:"value"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Header is one request header. Key and value may hold {{name}} tokens.
type Header struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Body is a request body. Only mode "raw" is supported.
type Body struct {
	Mode string `json:"mode"`
	Raw  string `json:"raw,omitempty"`
}

// Auth describes collection-level authentication.
type Auth struct {
	Type   string      `json:"type"`
	APIKey []AuthParam `json:"apikey,omitempty"`
}

// AuthParam is one key/value entry of an auth definition.
type AuthParam struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
	Type  string `json:"type,omitempty"`
}

// Environment is a Postman environment file.
type Environment struct {
	Name   string     `json:"name,omitempty"`
	Values []EnvValue `json:"values"`
}

// EnvValue is one environment variable. A nil Enabled counts as enabled.
type EnvValue struct {
	Key     string `json:"key"`
	Value   any    `json:"value"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// IsEnabled reports whether the value takes part in variable resolution.
func (v EnvValue) IsEnabled() bool {
	return v.Enabled == nil || *v.Enabled
}
