// Package postman imports Postman collections as endpoints.
//
// The importer walks the collection's item tree, turns every request into an
// endpoint.Endpoint and replays the request against the live server to
// capture a response example:
//
//	result, err := postman.ImportWithOptions(ctx,
//		postman.WithCollectionFile("orders.postman_collection.json"),
//		postman.WithEnvironmentFile("dev.postman_environment.json"),
//	)
//
// # Variables
//
// Collection variables are loaded first and environment values override
// them. {{name}} tokens in URLs, headers, auth values and raw bodies are
// resolved before the live call; a token without a value fails the item
// with an error wrapping oaserrors.ErrUnresolvedVariable. Environment
// variables named __name__ document the path parameter "name".
//
// # Items
//
// Folder names become the tags of the requests they contain. Two requests
// with the same folders, name and method collapse into one (the later wins).
// A POST request that declares no body is probed with the JSON string ""
// and documented without a request body. Only raw bodies are supported.
//
// # Capture
//
// Requests run concurrently, bounded by WithConcurrency. Any status code is
// accepted as long as the response is JSON. Failed items are logged and
// listed in Result.Failures; they never fail the import. Only apikey auth
// is applied, as a header on every call.
package postman
