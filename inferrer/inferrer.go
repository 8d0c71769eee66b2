package inferrer

import (
	"fmt"

	"github.com/erraggy/postman2openapi/internal/maputil"
	"github.com/erraggy/postman2openapi/internal/naming"
	"github.com/erraggy/postman2openapi/oas"
)

// itemSuffix names the component holding the structured items of an array component.
const itemSuffix = "Item"

// Result contains the component schemas inferred from one example.
type Result struct {
	// Schemas maps component names to schemas. Never nil.
	Schemas map[string]*oas.Schema
	// Warnings lists fallbacks taken during inference.
	Warnings []string
}

// HasWarnings returns true if there are any warnings
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Option configures inference.
type Option func(*config)

type config struct {
	logger oas.Logger
}

// WithLogger sets the logger that receives warnings as they are produced.
func WithLogger(l oas.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// Infer derives the component schemas for example, rooted at a component
// named prefix. An empty example (see IsEmpty) yields an empty map.
func Infer(prefix string, example any, opts ...Option) *Result {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &splitter{
		root:    prefix,
		schemas: make(map[string]*oas.Schema),
		logger:  oas.OrNop(cfg.logger).With("component", prefix),
	}
	if IsEmpty(example) {
		return &Result{Schemas: s.schemas}
	}

	draft, warnings := Derive(example)
	for _, w := range warnings {
		s.warn(w)
	}
	s.component(prefix, draft)

	return &Result{Schemas: s.schemas, Warnings: s.warnings}
}

// splitter turns a draft schema into named components. Property components
// are named after the root prefix at every depth, so deep names stay short and
// may collide (see put).
type splitter struct {
	root     string
	schemas  map[string]*oas.Schema
	warnings []string
	logger   oas.Logger
}

func (s *splitter) warn(msg string) {
	s.warnings = append(s.warnings, msg)
	s.logger.Warn(msg)
}

// component emits draft under name, splitting nested structures out.
func (s *splitter) component(name string, draft *oas.Schema) {
	switch draft.Type {
	case oas.TypeObject:
		s.object(name, draft)
	case oas.TypeArray:
		s.put(name, &oas.Schema{Type: oas.TypeArray, Items: s.items(name, itemSuffix, name+itemSuffix, draft)})
	default:
		s.put(name, leaf(draft))
	}
}

func (s *splitter) object(name string, draft *oas.Schema) {
	properties := make(map[string]*oas.Schema, len(draft.Properties))
	for _, prop := range maputil.SortedKeys(draft.Properties) {
		propSchema := draft.Properties[prop]
		switch propSchema.Type {
		case oas.TypeObject:
			child := naming.Nested(s.root, prop)
			properties[prop] = oas.RefTo(child)
			s.component(child, propSchema)
		case oas.TypeArray:
			properties[prop] = &oas.Schema{Type: oas.TypeArray, Items: s.items(name, prop, naming.Nested(s.root, prop), propSchema)}
		case oas.TypeNull:
			properties[prop] = &oas.Schema{Type: oas.TypeObject}
		default:
			properties[prop] = leaf(propSchema)
		}
	}

	schema := &oas.Schema{
		Type:                 oas.TypeObject,
		AdditionalProperties: false,
	}
	if len(properties) > 0 {
		schema.Properties = properties
	}
	s.put(name, schema)
}

// items returns the items schema for the array field of component owner.
// Structured items are emitted as component child and referenced.
func (s *splitter) items(owner, field, child string, array *oas.Schema) *oas.Schema {
	switch {
	case array.Items == nil:
		s.warn(fmt.Sprintf("can not determine items type of %s in %s, defaulting to string", field, owner))
		return &oas.Schema{Type: oas.TypeString}
	case array.Items.Type == oas.TypeObject || array.Items.Type == oas.TypeArray:
		s.component(child, array.Items)
		return oas.RefTo(child)
	default:
		return leaf(array.Items)
	}
}

func (s *splitter) put(name string, schema *oas.Schema) {
	if _, exists := s.schemas[name]; exists {
		s.warn(fmt.Sprintf("%s is already present in schemas, overwriting", name))
	}
	s.schemas[name] = schema
}

// leaf returns an inline copy of a primitive schema. Null carries no
// information, so it is widened to object.
func leaf(draft *oas.Schema) *oas.Schema {
	if draft.Type == oas.TypeNull {
		return &oas.Schema{Type: oas.TypeObject}
	}
	return draft.Copy()
}
