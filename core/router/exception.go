package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"github.com/dmitrymomot/routekit/core/binder"
	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/logger"
	"github.com/dmitrymomot/routekit/core/response"
)

// exceptionEntry is one registered error converter. The exact predicate is
// the direct-identity pass (no unwrapping); matches additionally walks the
// wrap chain. Resolution runs all exact predicates before any matches
// predicate, in registration order.
type exceptionEntry struct {
	key     any
	exact   func(error) bool
	matches func(error) bool
	convert func(error) *response.HTTPError
}

// ExceptionHandlerIs registers a converter for errors matching a sentinel
// target: identity equality counts as an exact match, errors.Is over the
// wrap chain as an instance match. A nil fn removes the registration for
// the same target.
func (r *Router) ExceptionHandlerIs(target error, fn func(error) *response.HTTPError) {
	if target == nil {
		return
	}
	if fn == nil {
		r.removeExceptionHandler(target)
		return
	}
	r.exceptions = append(r.exceptions, exceptionEntry{
		key:     target,
		exact:   func(err error) bool { return err == target },
		matches: func(err error) bool { return errors.Is(err, target) },
		convert: fn,
	})
}

// ExceptionHandlerAs registers a converter for errors of type T: a direct
// type assertion counts as an exact match, errors.As over the wrap chain as
// an instance match. A nil fn removes the registration for the same type.
func ExceptionHandlerAs[T error](r *Router, fn func(T) *response.HTTPError) {
	key := reflect.TypeOf((*T)(nil)).Elem()
	if fn == nil {
		r.removeExceptionHandler(key)
		return
	}
	r.exceptions = append(r.exceptions, exceptionEntry{
		key: key,
		exact: func(err error) bool {
			_, ok := err.(T)
			return ok
		},
		matches: func(err error) bool {
			var t T
			return errors.As(err, &t)
		},
		convert: func(err error) *response.HTTPError {
			var t T
			if !errors.As(err, &t) {
				return nil
			}
			return fn(t)
		},
	})
}

func (r *Router) removeExceptionHandler(key any) {
	kept := r.exceptions[:0]
	for _, e := range r.exceptions {
		if e.key != key {
			kept = append(kept, e)
		}
	}
	r.exceptions = kept
}

// registerDefaultExceptionHandlers installs the built-in mappings: HTTPError
// values pass through unchanged, parameter binding failures become 400,
// malformed query strings 500 and malformed form data 400. All of them can
// be removed or overridden through the public registration surface.
func (r *Router) registerDefaultExceptionHandlers() {
	ExceptionHandlerAs(r, func(e response.HTTPError) *response.HTTPError {
		return &e
	})
	r.ExceptionHandlerIs(binder.ErrFailedToBindParam, func(err error) *response.HTTPError {
		e := response.ErrBadRequest.WithError(err)
		return &e
	})
	r.ExceptionHandlerIs(binder.ErrFailedToParseQuery, func(err error) *response.HTTPError {
		e := response.ErrInternalServerError.WithError(err)
		return &e
	})
	r.ExceptionHandlerIs(binder.ErrFailedToParseForm, func(err error) *response.HTTPError {
		e := response.ErrBadRequest.WithError(err)
		return &e
	})
}

// resolveException converts an arbitrary handler error to an HTTPError:
// exact-match converters first, then wrap-chain matches, both in
// registration order, falling back to a 500 wrapping the cause. A converter
// returning nil declines and the search continues.
func (r *Router) resolveException(err error) response.HTTPError {
	for _, e := range r.exceptions {
		if e.exact(err) {
			if he := e.convert(err); he != nil {
				return *he
			}
		}
	}
	for _, e := range r.exceptions {
		if e.matches(err) {
			if he := e.convert(err); he != nil {
				return *he
			}
		}
	}
	return response.ErrInternalServerError.WithError(err)
}

// renderError resolves err and renders it through the builder cascade.
func (r *Router) renderError(route string, req *http.Request, err error, log *slog.Logger) *response.Response {
	return r.renderHTTPError(route, req, r.resolveException(err), log)
}

// renderHTTPError walks the status pattern cascade from most to least
// specific, and within each pattern the priority buckets in registration
// order. The first builder producing a non-nil response wins. A builder
// that fails is logged and skipped, keeping the guarantee that the client
// always receives a well-formed response.
func (r *Router) renderHTTPError(route string, req *http.Request, httpErr response.HTTPError, log *slog.Logger) *response.Response {
	for _, pattern := range statusCandidates(httpErr.Status) {
		bucket, ok := r.builders[pattern]
		if !ok {
			continue
		}
		for _, list := range bucket.lists {
			for _, e := range list {
				if !e.allows(requestMethod(req)) {
					continue
				}
				m := e.matcher.Match(route, req)
				if m == nil {
					continue
				}
				ctx := handler.NewContext(route, m, r.types)
				ctx.SetException(&httpErr)
				resp, err := safeCall(func() (*response.Response, error) {
					return e.fn(ctx)
				})
				if err != nil {
					log.Error("error response builder failed",
						logger.Error(err), logger.Status(httpErr.Status))
					continue
				}
				if resp != nil {
					return resp
				}
			}
		}
	}
	return fallbackErrorResponse(httpErr)
}

// statusCandidates builds the pattern keys for a status code from most to
// least specific: "404", "40x", "4xx", "default".
func statusCandidates(status int) []string {
	s := strconv.Itoa(status)
	if len(s) != 3 {
		// Out-of-range codes only ever hit the default bucket.
		return []string{"default"}
	}
	return []string{s, s[:2] + "x", s[:1] + "xx", "default"}
}

// fallbackErrorResponse is the unconditional last resort: a plain-text,
// non-cacheable "Error {code}: {reason}" body.
func fallbackErrorResponse(httpErr response.HTTPError) *response.Response {
	reason := httpErr.Message
	if reason == "" {
		reason = http.StatusText(httpErr.Status)
	}
	body := fmt.Sprintf("Error %d: %s", httpErr.Status, reason)
	return response.StringWithStatus(body, httpErr.Status).NeverCache()
}
