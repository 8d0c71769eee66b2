package inferrer

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/erraggy/postman2openapi/internal/maputil"
	"github.com/erraggy/postman2openapi/oas"
)

// Derive builds an unsplit draft schema from an example value.
// Array items are the merge of every element's schema; an empty array has
// no items. Merge conflicts are reported as warnings.
func Derive(example any) (*oas.Schema, []string) {
	d := &deriver{}
	schema := d.derive(example, "$")
	return schema, d.warnings
}

type deriver struct {
	warnings []string
}

func (d *deriver) warnf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

func (d *deriver) derive(v any, path string) *oas.Schema {
	switch val := v.(type) {
	case nil:
		return &oas.Schema{Type: oas.TypeNull}
	case string:
		return &oas.Schema{Type: oas.TypeString}
	case bool:
		return &oas.Schema{Type: oas.TypeBoolean}
	case json.Number:
		if strings.ContainsAny(val.String(), ".eE") {
			return &oas.Schema{Type: oas.TypeNumber}
		}
		return &oas.Schema{Type: oas.TypeInteger}
	case float32, float64:
		return &oas.Schema{Type: oas.TypeNumber}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, BigInt, *big.Int:
		return &oas.Schema{Type: oas.TypeInteger}
	case map[string]any:
		props := make(map[string]*oas.Schema, len(val))
		for _, key := range maputil.SortedKeys(val) {
			props[key] = d.derive(val[key], path+"."+key)
		}
		return &oas.Schema{Type: oas.TypeObject, Properties: props}
	case []any:
		schema := &oas.Schema{Type: oas.TypeArray}
		for i, item := range val {
			schema.Items = d.merge(schema.Items, d.derive(item, fmt.Sprintf("%s[%d]", path, i)), path+"[]")
		}
		return schema
	default:
		return d.deriveReflect(v, path)
	}
}

// deriveReflect handles typed maps and slices (e.g. map[string]string) that
// callers may pass instead of decoded JSON.
func (d *deriver) deriveReflect(v any, path string) *oas.Schema {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return d.derive(m, path)
	case reflect.Slice, reflect.Array:
		s := make([]any, rv.Len())
		for i := range s {
			s[i] = rv.Index(i).Interface()
		}
		return d.derive(s, path)
	case reflect.Pointer:
		if rv.IsNil() {
			return &oas.Schema{Type: oas.TypeNull}
		}
		return d.derive(rv.Elem().Interface(), path)
	}
	d.warnf("unsupported example value of type %T at %s, defaulting to string", v, path)
	return &oas.Schema{Type: oas.TypeString}
}

// merge combines two schemas observed for the same location.
func (d *deriver) merge(a, b *oas.Schema, path string) *oas.Schema {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Type == oas.TypeNull:
		return b
	case b.Type == oas.TypeNull:
		return a
	case isNumeric(a.Type) && isNumeric(b.Type):
		if a.Type == oas.TypeNumber || b.Type == oas.TypeNumber {
			return &oas.Schema{Type: oas.TypeNumber}
		}
		return a
	case a.Type != b.Type:
		d.warnf("conflicting types %s and %s at %s, keeping %s", a.Type, b.Type, path, a.Type)
		return a
	case a.Type == oas.TypeObject:
		props := make(map[string]*oas.Schema, len(a.Properties)+len(b.Properties))
		for name, prop := range a.Properties {
			props[name] = prop
		}
		for _, name := range maputil.SortedKeys(b.Properties) {
			props[name] = d.merge(props[name], b.Properties[name], path+"."+name)
		}
		return &oas.Schema{Type: oas.TypeObject, Properties: props}
	case a.Type == oas.TypeArray:
		return &oas.Schema{Type: oas.TypeArray, Items: d.merge(a.Items, b.Items, path+"[]")}
	default:
		return a
	}
}

func isNumeric(t string) bool {
	return t == oas.TypeInteger || t == oas.TypeNumber
}
