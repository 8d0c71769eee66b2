package mcpserver

import (
	"fmt"

	"github.com/erraggy/postman2openapi/internal/options"
	"github.com/erraggy/postman2openapi/postman"
)

// documentInput represents the two ways a Postman document can be provided
// to a tool. At most one of File or Content may be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Postman JSON export on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline Postman JSON export content"`
}

// check enforces the single-source rule and the inline size limit.
func (d documentInput) check(what string, required bool) error {
	sources := []options.Source{
		{Option: "file", Set: d.File != ""},
		{Option: "content", Set: d.Content != ""},
	}
	var err error
	if required {
		err = options.ExactlyOne(what, sources...)
	} else {
		err = options.AtMostOne(what, sources...)
	}
	if err != nil {
		return err
	}
	if len(d.Content) > cfg.MaxInlineSize {
		return fmt.Errorf("inline %s size %d bytes exceeds maximum %d bytes; use file input instead, or set %s to increase",
			what, len(d.Content), cfg.MaxInlineSize, envMaxInlineSize)
	}
	return nil
}

// collection loads the collection from whichever source was provided.
func (d documentInput) collection() (*postman.Collection, error) {
	if err := d.check("collection", true); err != nil {
		return nil, err
	}
	if d.File != "" {
		return postman.LoadCollection(d.File)
	}
	return postman.ParseCollection([]byte(d.Content))
}

// environment loads the environment, or returns nil when none was provided.
func (d documentInput) environment() (*postman.Environment, error) {
	if err := d.check("environment", false); err != nil {
		return nil, err
	}
	switch {
	case d.File != "":
		return postman.LoadEnvironment(d.File)
	case d.Content != "":
		return postman.ParseEnvironment([]byte(d.Content))
	default:
		return nil, nil
	}
}
