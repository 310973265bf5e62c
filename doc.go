// Package routekit provides an embeddable HTTP request routing pipeline
// built around a composable path-matcher algebra: guards for access
// control, priority-ordered route dispatch, response modifiers and
// specificity-scoped error response builders.
//
// # Package Organization
//
// The library is organized into core packages, each covering one concern:
//
//	github.com/dmitrymomot/routekit/core/matcher  - composable path matchers (exact, pattern, prefix, suffix, transform)
//	github.com/dmitrymomot/routekit/core/binder   - type-conversion registry and query/form struct binders
//	github.com/dmitrymomot/routekit/core/response - response values and the HTTP error taxonomy
//	github.com/dmitrymomot/routekit/core/handler  - handler function types and the request Context
//	github.com/dmitrymomot/routekit/core/router   - the dispatch pipeline and registration surface
//	github.com/dmitrymomot/routekit/core/logger   - slog attribute helpers for dispatch diagnostics
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/routekit/core/router
//	go doc -all github.com/dmitrymomot/routekit/core/matcher
//
// # Quick Start
//
//	r := router.New()
//
//	r.Guard(matcher.Prefix("admin"), func(ctx *handler.Context) (handler.Verdict, error) {
//		if !isAdmin(ctx.Request()) {
//			return handler.VerdictDeny, nil
//		}
//		return handler.VerdictAllow, nil
//	})
//
//	r.Get(matcher.Pattern("users/:id"), func(ctx *handler.Context) (*response.Response, error) {
//		id, err := ctx.Int("id")
//		if err != nil {
//			return nil, err
//		}
//		return response.JSON(loadUser(id)), nil
//	})
//
//	http.ListenAndServe(":8080", r)
package routekit
