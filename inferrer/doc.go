// Package inferrer derives OpenAPI component schemas from example JSON values.
//
// Inference is example-driven: one concrete value is inspected and its shape
// becomes a schema. Nested structures are split into their own named
// components so they can be referenced with $ref:
//
//	result := inferrer.Infer("PostCreateOrderRequest", map[string]any{
//	    "address": map[string]any{"city": "X"},
//	})
//	// result.Schemas["PostCreateOrderRequest"].Properties["address"].Ref ==
//	//     "#/components/schemas/PostCreateOrderRequestAddress"
//	// result.Schemas["PostCreateOrderRequestAddress"].Properties["city"].Type == "string"
//
// # Splitting rules
//
// For every property of an object schema:
//   - an object becomes a $ref to {Name}{Property} and is split recursively
//   - an array with no observable items gets items of type string (with a warning)
//   - an array of objects or arrays gets items that $ref {Name}{Property}
//   - a null becomes {type: object}, since nothing more is known about it
//   - anything else stays inline
//
// Object components always carry additionalProperties: false.
//
// Infer never mutates shared state; every call returns a fresh map that the
// caller merges. Generating a name twice within one call is reported as a
// warning and the later schema wins.
//
// This is not a general JSON Schema engine: there is no oneOf/anyOf, format
// or pattern inference.
package inferrer
