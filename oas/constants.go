package oas

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
)

// MediaTypeJSON is the only media type generated for bodies.
const MediaTypeJSON = "application/json"
