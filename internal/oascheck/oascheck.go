// Package oascheck runs an independent structural check over generated
// documents using kin-openapi. Findings are advisory: the generator emits
// what it observed even when the result does not validate.
package oascheck

import (
	"context"
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
)

// Check loads data as an OpenAPI 3 document and validates it.
// It returns one message per problem found, or nil.
func Check(ctx context.Context, data []byte) []string {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return []string{"load: " + err.Error()}
	}
	if err := doc.Validate(ctx); err != nil {
		return messages(err)
	}
	return nil
}

func messages(err error) []string {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		out := make([]string, 0, len(multi))
		for _, e := range multi {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
