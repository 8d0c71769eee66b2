package inferrer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// BigInt is an integral JSON literal outside the int64 and uint64 ranges.
// It marshals as a plain integer in both JSON and YAML.
type BigInt struct {
	*big.Int
}

// MarshalYAML emits the exact digits as a plain scalar. The scalar is left
// untagged: decoders reject an explicit !!int beyond 64 bits.
func (b BigInt) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: b.String()}, nil
}

// ParseExample decodes JSON text into an example value. Integral numbers
// become int64 (uint64 or BigInt when they do not fit) and all other numbers
// float64, so that integer and number types can be told apart by Infer.
func ParseExample(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level JSON value")
	}
	return Normalize(v), nil
}

// Normalize replaces json.Number values in v (recursively) with int64,
// uint64, BigInt or float64. Other values are returned unchanged.
func Normalize(v any) any {
	switch val := v.(type) {
	case json.Number:
		return normalizeNumber(val)
	case map[string]any:
		for k, item := range val {
			val[k] = Normalize(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = Normalize(item)
		}
		return val
	default:
		return v
	}
}

func normalizeNumber(n json.Number) any {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u
		}
		if b, ok := new(big.Int).SetString(s, 10); ok {
			return BigInt{b}
		}
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return s
}

// IsEmpty reports whether an example carries no shape information:
// nil, an empty string, an empty object or an empty array.
func IsEmpty(example any) bool {
	switch v := example.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
