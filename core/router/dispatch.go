package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/logger"
	"github.com/dmitrymomot/routekit/core/response"
)

// ErrNoRequestPath indicates the route could not be derived from the
// request (nil request or missing URL).
var ErrNoRequestPath = errors.New("request has no path to route")

// Run resolves exactly one response for the request: extraction and
// normalization, guards, routes, then modifiers. Handler errors never
// escape; every failure is rendered as an HTTP error response.
func (r *Router) Run(req *http.Request) *response.Response {
	start := time.Now()
	log := r.log.With(logger.RequestID(uuid.NewString()))
	if req != nil {
		log = log.With(logger.Method(req.Method))
	}

	route, err := r.resolveRoute(req)
	if err != nil {
		// Extraction failure is too early to trust custom builders: render
		// a fixed plaintext 500 instead of entering the cascade.
		log.Error("route extraction failed", logger.Error(err))
		return response.StringWithStatus(
			fmt.Sprintf("Error %d: %s", http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)),
			http.StatusInternalServerError,
		).NeverCache()
	}
	log = log.With(logger.Route(route))

	current := r.runGuards(route, req, log)
	if current == nil {
		current = r.runRoutes(route, req, log)
	}

	if !current.IsFinal() {
		current = r.runModifiers(route, req, current, log)
	}

	log.Debug("request served", logger.Status(current.Status()), logger.Elapsed(start))
	return current
}

// ServeHTTP adapts the pipeline to net/http: it runs the request and
// renders the resulting response to the writer.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp := r.Run(req)
	if err := resp.Render(w, req); err != nil {
		r.log.Error("failed to render response", logger.Error(err))
	}
}

// ExtractRoute obtains the raw route path, using the custom extractor when
// one is set and the request URL path otherwise.
func (r *Router) ExtractRoute(req *http.Request) (string, error) {
	if r.extractor != nil {
		return r.extractor(req)
	}
	if req == nil || req.URL == nil {
		return "", ErrNoRequestPath
	}
	return req.URL.Path, nil
}

// NormalizeRoute applies the custom normalizer, if any, then always trims
// leading and trailing slashes, collapsing the root path to "".
func (r *Router) NormalizeRoute(path string) (string, error) {
	if r.normalizer != nil {
		var err error
		path, err = r.normalizer(path)
		if err != nil {
			return "", err
		}
	}
	return strings.Trim(path, "/"), nil
}

// resolveRoute runs extraction and normalization with panic containment:
// any failure here is an extraction failure.
func (r *Router) resolveRoute(req *http.Request) (string, error) {
	return safeCall(func() (string, error) {
		raw, err := r.ExtractRoute(req)
		if err != nil {
			return "", err
		}
		return r.NormalizeRoute(raw)
	})
}

// runGuards evaluates guards in priority order. A nil result grants access;
// a non-nil response (denial or guard failure) replaces stage 3 entirely
// and proceeds to the modifiers.
func (r *Router) runGuards(route string, req *http.Request, log *slog.Logger) *response.Response {
	for _, list := range r.guards.lists {
		for _, e := range list {
			if !e.allows(requestMethod(req)) {
				continue
			}
			m := e.matcher.Match(route, req)
			if m == nil {
				continue
			}
			verdict, err := safeCall(func() (handler.Verdict, error) {
				return e.fn(handler.NewContext(route, m, r.types))
			})
			if err != nil {
				log.Debug("guard failed", logger.Error(err))
				return r.renderError(route, req, err, log)
			}
			switch verdict {
			case handler.VerdictAllow:
				return nil
			case handler.VerdictDeny:
				log.Debug("access denied by guard")
				return r.renderHTTPError(route, req, response.ErrForbidden, log)
			}
		}
	}
	// Every guard abstained (or none exist): access granted.
	return nil
}

// runRoutes evaluates routes in priority order. The first non-nil response
// wins; matching handlers returning nil fall through. Exhaustion renders a
// 404 through the builder cascade.
func (r *Router) runRoutes(route string, req *http.Request, log *slog.Logger) *response.Response {
	for _, list := range r.routes.lists {
		for _, e := range list {
			if !e.allows(requestMethod(req)) {
				continue
			}
			m := e.matcher.Match(route, req)
			if m == nil {
				continue
			}
			resp, err := safeCall(func() (*response.Response, error) {
				return e.fn(handler.NewContext(route, m, r.types))
			})
			if err != nil {
				log.Debug("route handler failed", logger.Error(err))
				return r.renderError(route, req, err, log)
			}
			if resp != nil {
				return resp
			}
		}
	}
	log.Debug("no route produced a response")
	return r.renderHTTPError(route, req, response.ErrNotFound, log)
}

// runModifiers applies modifiers in priority order to the current response.
// A nil return keeps the response; a non-nil return replaces it; a Final
// replacement stops iteration. A failing modifier aborts the rest and its
// rendered error becomes the final response.
func (r *Router) runModifiers(route string, req *http.Request, current *response.Response, log *slog.Logger) *response.Response {
	for _, list := range r.modifiers.lists {
		for _, e := range list {
			if !e.allows(requestMethod(req)) {
				continue
			}
			m := e.matcher.Match(route, req)
			if m == nil {
				continue
			}
			ctx := handler.NewContext(route, m, r.types)
			ctx.SetResponse(current)
			resp, err := safeCall(func() (*response.Response, error) {
				return e.fn(ctx)
			})
			if err != nil {
				log.Debug("modifier failed", logger.Error(err))
				return r.renderError(route, req, err, log)
			}
			if resp != nil {
				current = resp
				if current.IsFinal() {
					return current
				}
			}
		}
	}
	return current
}

// requestMethod tolerates nil requests, which a custom extractor may
// accept; entries with a method filter simply never match then.
func requestMethod(req *http.Request) string {
	if req == nil {
		return ""
	}
	return req.Method
}

// safeCall invokes fn with panic containment, converting a panic into a
// returned error so it feeds the same resolution path as handler errors.
func safeCall[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = toError(rec)
		}
	}()
	return fn()
}

// toError converts a recovered panic value to an error.
func toError(v any) error {
	switch e := v.(type) {
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("panic: %v", e)
	}
}
