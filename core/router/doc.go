// Package router implements the request dispatch pipeline: matcher-driven
// route selection with priority ordering, pre-route guards, post-dispatch
// response modifiers and specificity-scoped error response builders.
//
// # Pipeline
//
// A single call to Run resolves exactly one response through four stages:
//
//  1. Route extraction and normalization: the raw path (by default the URL
//     path) is normalized by trimming slashes; the root collapses to "".
//     Failure here short-circuits to a minimal plaintext 500 that bypasses
//     custom error builders.
//  2. Guards, in priority order: the first VerdictAllow grants access, the
//     first VerdictDeny renders 403 and skips routing, VerdictAbstain
//     continues. All-abstain grants access.
//  3. Routes, in priority order: the first handler returning a non-nil
//     response wins. A matching handler returning nil lets iteration
//     continue, including into lower priorities. Exhaustion renders 404.
//  4. Modifiers, in priority order: each may replace the current response;
//     a Final response stops modifier processing immediately.
//
// Handler errors never escape Run: they are resolved to an HTTPError through
// the exception handler registry (exact match first, then wrapped/As match,
// then a default 500) and rendered through the error builder cascade, most
// specific status pattern first ("404", then "40x", "4xx", "default").
//
// # Usage
//
//	r := router.New()
//	r.Get(matcher.Pattern("users/:id"), func(ctx *handler.Context) (*response.Response, error) {
//		id, err := ctx.Int("id")
//		if err != nil {
//			return nil, err
//		}
//		return response.JSON(map[string]int{"id": id}), nil
//	})
//
//	http.ListenAndServe(":8080", r)
//
// Registration is meant for startup. The router takes no internal locks;
// registering while serving requests is not safe.
package router
