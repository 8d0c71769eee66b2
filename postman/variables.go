package postman

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/erraggy/postman2openapi/endpoint"
	"github.com/erraggy/postman2openapi/oaserrors"
)

// tokenPattern matches a {{name}} variable reference.
var tokenPattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// Variables maps variable names to their values.
type Variables map[string]string

// NewVariables merges collection variables with environment values.
// Environment values win; disabled entries on either side are skipped.
// Both arguments may be nil.
func NewVariables(collection *Collection, env *Environment) Variables {
	vars := make(Variables)
	if collection != nil {
		for _, v := range collection.Variable {
			if v.Disabled || v.Key == "" {
				continue
			}
			vars[v.Key] = stringify(v.Value)
		}
	}
	if env != nil {
		for _, v := range env.Values {
			if !v.IsEnabled() || v.Key == "" {
				continue
			}
			vars[v.Key] = stringify(v.Value)
		}
	}
	return vars
}

// Lookup returns the value of name.
func (v Variables) Lookup(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// Resolve replaces every {{name}} token in s. A token without a value
// yields an error wrapping oaserrors.ErrUnresolvedVariable.
func (v Variables) Resolve(s string) (string, error) {
	if !strings.Contains(s, "{{") {
		return s, nil
	}

	var missing string
	out := tokenPattern.ReplaceAllStringFunc(s, func(token string) string {
		name := tokenPattern.FindStringSubmatch(token)[1]
		value, ok := v[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return token
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %s", oaserrors.ErrUnresolvedVariable, missing)
	}
	return out, nil
}

// PathParams returns the path parameter examples declared as __name__
// variables, keyed by name and sorted. It returns nil when there are none.
func (v Variables) PathParams() []endpoint.Param {
	var params []endpoint.Param
	for key, value := range v {
		name, ok := pathParamName(key)
		if !ok {
			continue
		}
		params = append(params, endpoint.Param{Name: name, Example: value})
	}
	sort.Slice(params, func(i, j int) bool { return params[i].Name < params[j].Name })
	return params
}

// pathParamName extracts name from "__name__".
func pathParamName(key string) (string, bool) {
	if len(key) <= 4 || !strings.HasPrefix(key, "__") || !strings.HasSuffix(key, "__") {
		return "", false
	}
	return key[2 : len(key)-2], true
}

// stringify renders a decoded JSON value as a variable value.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
