package postman

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/postman2openapi/oaserrors"
)

// LoadCollection reads and decodes a collection file.
func LoadCollection(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read collection", Cause: err}
	}
	return parseCollection(path, data)
}

// ParseCollection decodes a collection from JSON bytes.
func ParseCollection(data []byte) (*Collection, error) {
	return parseCollection("", data)
}

func parseCollection(path string, data []byte) (*Collection, error) {
	var c Collection
	if err := decode(path, "collection", data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadEnvironment reads and decodes an environment file.
func LoadEnvironment(path string) (*Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "failed to read environment", Cause: err}
	}
	return parseEnvironment(path, data)
}

// ParseEnvironment decodes an environment from JSON bytes.
func ParseEnvironment(data []byte) (*Environment, error) {
	return parseEnvironment("", data)
}

func parseEnvironment(path string, data []byte) (*Environment, error) {
	var env Environment
	if err := decode(path, "environment", data, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// decode unmarshals data into v, reporting syntax errors with line and column.
func decode(path, what string, data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return &oaserrors.ParseError{Path: path, Message: what + " is empty"}
	}
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}

	pe := &oaserrors.ParseError{Path: path, Message: fmt.Sprintf("invalid %s JSON", what), Cause: err}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		pe.Line, pe.Column = position(data, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		pe.Line, pe.Column = position(data, typeErr.Offset)
	}
	return pe
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
