// Package handler defines the function types executed by the routing
// pipeline and the request Context they receive.
//
// # Context
//
// Context replaces by-name reflection-based argument injection with explicit
// typed accessors: the matched path, the inbound request, the current
// response (modifiers), the resolved HTTP error (error builders) and the
// captured path parameters are all reachable from one value. Typed parameter
// access goes through the binder registry:
//
//	func showUser(ctx *handler.Context) (*response.Response, error) {
//		id, err := ctx.Int("id")
//		if err != nil {
//			return nil, err // rendered as 400 by the router
//		}
//		return response.JSON(lookup(id)), nil
//	}
//
// Context also implements context.Context by delegating to the request
// context, so it can be passed directly to downstream APIs.
//
// # Handler Kinds
//
// All four pipeline stages share the same calling convention; returning a
// nil response (or VerdictAbstain for guards) defers to the next candidate:
//
//   - HandlerFunc: route handlers; first non-nil response wins
//   - GuardFunc: pre-route access control returning a Verdict
//   - ModifierFunc: post-dispatch response transformation
//   - ErrorBuilderFunc: status-scoped error response construction
package handler
