package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/dmitrymomot/routekit/core/binder"
	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/matcher"
)

// Priority orders registrations within each pipeline stage. Within a bucket
// insertion order is preserved and breaks ties.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityNormal
	PriorityLow
)

// ExtractorFunc obtains the raw route path from a request.
type ExtractorFunc func(r *http.Request) (string, error)

// NormalizerFunc rewrites an extracted path before the built-in trimming.
type NormalizerFunc func(path string) (string, error)

// Router is the dispatch orchestrator. Configure it at startup with the
// registration methods, then serve requests through Run or ServeHTTP.
// Registration and request handling must not be interleaved: the router
// takes no internal locks.
type Router struct {
	guards    buckets[handler.GuardFunc]
	routes    buckets[handler.HandlerFunc]
	modifiers buckets[handler.ModifierFunc]
	builders  map[string]*buckets[handler.ErrorBuilderFunc]

	types      *binder.Registry
	exceptions []exceptionEntry

	extractor  ExtractorFunc
	normalizer NormalizerFunc

	log *slog.Logger
}

// Option configures a Router during creation.
type Option func(*Router)

// WithLogger sets the structured logger for dispatch diagnostics. The
// default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(r *Router) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a router with the built-in type handlers and the default
// exception mappings registered (all removable through the public surface).
func New(opts ...Option) *Router {
	r := &Router{
		builders: make(map[string]*buckets[handler.ErrorBuilderFunc]),
		types:    binder.NewRegistry(),
		log:      slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)})),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerDefaultExceptionHandlers()
	return r
}

// Add registers a route handler. Without options the route answers GET and
// POST at normal priority.
func (r *Router) Add(m matcher.Matcher, h handler.HandlerFunc, opts ...RouteOption) {
	if m == nil {
		panic(ErrNilMatcher)
	}
	if h == nil {
		panic(ErrNilHandler)
	}
	cfg := newRouteConfig(opts)
	methods := cfg.methods
	if methods == nil {
		methods = []string{http.MethodGet, http.MethodPost}
	}
	r.routes.add(cfg.priority, entry[handler.HandlerFunc]{
		matcher: m,
		fn:      h,
		methods: methodSet(methods),
	})
}

// Get registers a route handler for GET requests only.
func (r *Router) Get(m matcher.Matcher, h handler.HandlerFunc, opts ...RouteOption) {
	r.Add(m, h, append(opts, WithMethods(http.MethodGet))...)
}

// Post registers a route handler for POST requests only.
func (r *Router) Post(m matcher.Matcher, h handler.HandlerFunc, opts ...RouteOption) {
	r.Add(m, h, append(opts, WithMethods(http.MethodPost))...)
}

// Put registers a route handler for PUT requests only.
func (r *Router) Put(m matcher.Matcher, h handler.HandlerFunc, opts ...RouteOption) {
	r.Add(m, h, append(opts, WithMethods(http.MethodPut))...)
}

// Patch registers a route handler for PATCH requests only.
func (r *Router) Patch(m matcher.Matcher, h handler.HandlerFunc, opts ...RouteOption) {
	r.Add(m, h, append(opts, WithMethods(http.MethodPatch))...)
}

// Delete registers a route handler for DELETE requests only.
func (r *Router) Delete(m matcher.Matcher, h handler.HandlerFunc, opts ...RouteOption) {
	r.Add(m, h, append(opts, WithMethods(http.MethodDelete))...)
}

// Guard registers a pre-route access-control check. Without options it
// applies to all methods at normal priority.
func (r *Router) Guard(m matcher.Matcher, g handler.GuardFunc, opts ...RouteOption) {
	if m == nil {
		panic(ErrNilMatcher)
	}
	if g == nil {
		panic(ErrNilHandler)
	}
	cfg := newRouteConfig(opts)
	r.guards.add(cfg.priority, entry[handler.GuardFunc]{
		matcher: m,
		fn:      g,
		methods: methodSet(cfg.methods),
	})
}

// Modify registers a post-dispatch response modifier. Without options it
// applies to all methods at normal priority.
func (r *Router) Modify(m matcher.Matcher, f handler.ModifierFunc, opts ...RouteOption) {
	if m == nil {
		panic(ErrNilMatcher)
	}
	if f == nil {
		panic(ErrNilHandler)
	}
	cfg := newRouteConfig(opts)
	r.modifiers.add(cfg.priority, entry[handler.ModifierFunc]{
		matcher: m,
		fn:      f,
		methods: methodSet(cfg.methods),
	})
}

// statusPatternRe accepts an exact code ("404"), a tens wildcard ("40x") or
// a hundreds wildcard ("4xx").
var statusPatternRe = regexp.MustCompile(`^[1-9](?:[0-9][0-9x]|xx)$`)

// AddErrorResponseBuilder registers an error response builder for a status
// pattern: an exact code ("404"), a tens wildcard ("40x"), a hundreds
// wildcard ("4xx") or "default". The builder runs only when its scope
// matcher (default: catchall) matches the request route.
func (r *Router) AddErrorResponseBuilder(statusPattern string, b handler.ErrorBuilderFunc, opts ...RouteOption) {
	if b == nil {
		panic(ErrNilHandler)
	}
	if statusPattern != "default" && !statusPatternRe.MatchString(statusPattern) {
		panic(fmt.Errorf("%w: %q", ErrInvalidStatusPattern, statusPattern))
	}
	cfg := newRouteConfig(opts)
	scope := cfg.scope
	if scope == nil {
		scope = matcher.Catchall()
	}
	bucket, ok := r.builders[statusPattern]
	if !ok {
		bucket = &buckets[handler.ErrorBuilderFunc]{}
		r.builders[statusPattern] = bucket
	}
	bucket.add(cfg.priority, entry[handler.ErrorBuilderFunc]{
		matcher: scope,
		fn:      b,
		methods: methodSet(cfg.methods),
	})
}

// TypeHandler registers a conversion function for a parameter type name.
// A nil fn unregisters the type, including the built-ins.
func (r *Router) TypeHandler(name string, fn binder.TypeHandlerFunc) {
	r.types.Register(name, fn)
}

// RouteExtractor sets a custom route extraction function; nil restores the
// default (the request URL path).
func (r *Router) RouteExtractor(fn ExtractorFunc) {
	r.extractor = fn
}

// RouteNormalizer sets a custom normalization step applied before the
// built-in slash trimming; nil removes it.
func (r *Router) RouteNormalizer(fn NormalizerFunc) {
	r.normalizer = fn
}

// entry is one registration in a priority bucket. A nil method set means
// the entry applies to every method.
type entry[T any] struct {
	matcher matcher.Matcher
	fn      T
	methods map[string]struct{}
}

func (e entry[T]) allows(method string) bool {
	if e.methods == nil {
		return true
	}
	_, ok := e.methods[method]
	return ok
}

// buckets keeps registrations grouped by priority, preserving insertion
// order within each group.
type buckets[T any] struct {
	lists [3][]entry[T]
}

func (b *buckets[T]) add(p Priority, e entry[T]) {
	if p < PriorityHigh || p > PriorityLow {
		p = PriorityNormal
	}
	b.lists[p] = append(b.lists[p], e)
}

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodConnect: {},
	http.MethodTrace:   {},
}

// methodSet validates and normalizes a method list. Nil input means "all
// methods" and stays nil.
func methodSet(methods []string) map[string]struct{} {
	if methods == nil {
		return nil
	}
	set := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(m)
		if _, ok := knownMethods[m]; !ok {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, m))
		}
		set[m] = struct{}{}
	}
	return set
}
