// Package postman2openapi generates OpenAPI 3.0.2 documents from Postman collections.
//
// Every request in a collection is replayed against the live server to capture
// a real response. JSON Schemas are inferred from the request and response
// examples, nested objects are split into named components, and the result is
// written as a single YAML document.
//
// # Packages
//
//   - postman: load collections and environments, resolve variables and capture responses
//   - inferrer: derive component schemas from example JSON values
//   - assembler: build and serialize the OpenAPI document
//   - endpoint: the immutable Endpoint value passed between the stages above
//   - oas: the OpenAPI 3.0 document model and the Logger interface
//   - oaserrors: typed errors for use with errors.Is and errors.As
//
// # Quick Start
//
//	ctx := context.Background()
//	imported, err := postman.ImportWithOptions(ctx,
//		postman.WithCollectionFile("orders.postman_collection.json"),
//		postman.WithEnvironmentFile("dev.postman_environment.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range imported.Failures {
//		log.Printf("skipped %s: %v", f.Name, f.Err)
//	}
//
//	result := assembler.Assemble(imported.Name, imported.Endpoints)
//	if err := assembler.WriteFile("openapi.yaml", result.Document); err != nil {
//		log.Fatal(err)
//	}
//
// # Command line
//
//	postman2openapi -pc orders.postman_collection.json -pe dev.postman_environment.json -o openapi.yaml
//
// See cmd/postman2openapi for the full list of commands and flags.
package postman2openapi
