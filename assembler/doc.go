// Package assembler builds an OpenAPI 3.0.2 document from captured endpoints.
//
// For every endpoint the assembler infers component schemas from the request
// and response examples (see package inferrer), builds one operation and
// merges it into the document:
//
//	result := assembler.Assemble("Orders API", endpoints)
//	for _, w := range result.Warnings {
//		fmt.Println("warning:", w)
//	}
//	data, err := assembler.MarshalYAML(result.Document)
//
// Operations sharing a path are merged into one path item. Component schemas
// from every endpoint are merged into a flat components.schemas map; a name
// produced twice keeps the later schema and records a warning.
//
// Parameters are always typed as strings. Path parameters carry
// required: true. requestBody is only emitted for endpoints with a non-empty
// request example, while responses.200 always references the response
// component.
//
// # Serialization
//
// [MarshalYAML] emits the root keys in the order openapi, info, paths,
// components and renders multi-line strings in literal block style.
// [WriteFile] writes the same bytes with owner-only permissions.
package assembler
