package handler

import (
	"github.com/dmitrymomot/routekit/core/response"
)

// HandlerFunc is a route handler. Returning a nil response with a nil error
// means "no response": the router keeps trying lower-priority routes.
// A non-nil error is converted to an HTTP error response.
type HandlerFunc func(ctx *Context) (*response.Response, error)

// GuardFunc is a pre-route access-control check. VerdictAllow grants access
// and stops guard evaluation, VerdictDeny rejects the request with 403, and
// VerdictAbstain defers to the next guard.
type GuardFunc func(ctx *Context) (Verdict, error)

// ModifierFunc is a post-dispatch response transformation step. Returning a
// nil response keeps the current response unchanged; a non-nil response
// replaces it.
type ModifierFunc func(ctx *Context) (*response.Response, error)

// ErrorBuilderFunc builds a response for a resolved HTTP error. Returning a
// nil response defers to the next builder in the specificity cascade.
type ErrorBuilderFunc func(ctx *Context) (*response.Response, error)

// Verdict is a guard decision.
type Verdict int

const (
	// VerdictAbstain defers the decision to the next guard. It is the zero
	// value, so a guard that has no opinion can return it implicitly.
	VerdictAbstain Verdict = iota

	// VerdictAllow grants access and stops guard evaluation.
	VerdictAllow

	// VerdictDeny rejects the request with 403 Forbidden.
	VerdictDeny
)

// String implements fmt.Stringer for log output.
func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "allow"
	case VerdictDeny:
		return "deny"
	default:
		return "abstain"
	}
}
