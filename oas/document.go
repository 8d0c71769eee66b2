package oas

// Version is the OpenAPI version written to every generated document.
const Version = "3.0.2"

// Document represents an OpenAPI Specification 3.0 document.
// Reference: https://spec.openapis.org/oas/v3.0.2.html
type Document struct {
	OpenAPI    string      `yaml:"openapi" json:"openapi"`
	Info       *Info       `yaml:"info" json:"info"`
	Paths      Paths       `yaml:"paths" json:"paths"`
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
}

// Info provides metadata about the API
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// Components holds reusable objects. Only schemas are generated.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas" json:"schemas"`
}

// NewDocument returns an empty document with the fixed version fields set.
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI: Version,
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths: make(Paths),
		Components: &Components{
			Schemas: make(map[string]*Schema),
		},
	}
}
