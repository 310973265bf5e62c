// Package response defines the response value exchanged through the routing
// pipeline and the HTTP error taxonomy used to convert failures into
// responses.
//
// # Responses
//
// Response is a concrete value carrying status, headers and body. The
// pipeline inspects and replaces responses, so unlike a streaming writer the
// body is materialized up front. Constructors cover the common cases:
//
//	response.String("hello")
//	response.JSONWithStatus(payload, http.StatusCreated)
//	response.Redirect("/login")
//
// Fluent decorators return modified copies, leaving the original intact:
//
//	resp := response.String("ok").WithHeader("X-Served-By", "routekit")
//
// Two markers participate in dispatch semantics: NeverCache renders
// Cache-Control headers that forbid caching, and Final produces the terminal
// variant that stops any further response modification.
//
// Render writes a Response to an http.ResponseWriter, which is how a host
// application serves pipeline output through net/http.
//
// # HTTP Errors
//
// HTTPError is a structured error with an HTTP status, machine-readable
// code, human-readable message and optional wrapped cause. Predefined values
// exist for the common statuses:
//
//	return nil, response.ErrNotFound.WithMessage("no such user")
package response
