package oas

// Schema type constants (used in Schema.Type)
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// RefPrefix is the JSON pointer prefix for component schema references.
const RefPrefix = "#/components/schemas/"

// Schema represents the JSON Schema subset used by OpenAPI 3.0.
type Schema struct {
	Ref   string  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Type  string  `yaml:"type,omitempty" json:"type,omitempty"`
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	// AdditionalProperties holds a bool or *Schema; nil omits it.
	AdditionalProperties any      `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string `yaml:"required,omitempty" json:"required,omitempty"`
}

// RefTo returns a schema that references the named component schema.
func RefTo(name string) *Schema {
	return &Schema{Ref: RefPrefix + name}
}

// Copy returns a deep copy of s.
func (s *Schema) Copy() *Schema {
	if s == nil {
		return nil
	}
	c := *s
	c.Items = s.Items.Copy()
	if s.Properties != nil {
		c.Properties = make(map[string]*Schema, len(s.Properties))
		for name, prop := range s.Properties {
			c.Properties[name] = prop.Copy()
		}
	}
	if sub, ok := s.AdditionalProperties.(*Schema); ok {
		c.AdditionalProperties = sub.Copy()
	}
	if s.Required != nil {
		c.Required = append([]string(nil), s.Required...)
	}
	return &c
}
