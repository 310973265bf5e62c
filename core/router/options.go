package router

import "github.com/dmitrymomot/routekit/core/matcher"

// RouteOption configures a single registration (route, guard, modifier or
// error response builder).
type RouteOption func(*routeConfig)

type routeConfig struct {
	methods  []string
	priority Priority
	scope    matcher.Matcher
}

func newRouteConfig(opts []RouteOption) routeConfig {
	cfg := routeConfig{priority: PriorityNormal}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMethods restricts a registration to the given HTTP methods. Routes
// default to GET+POST; guards, modifiers and error builders default to all
// methods.
func WithMethods(methods ...string) RouteOption {
	return func(cfg *routeConfig) {
		cfg.methods = methods
	}
}

// WithPriority places a registration in the given priority bucket.
func WithPriority(p Priority) RouteOption {
	return func(cfg *routeConfig) {
		cfg.priority = p
	}
}

// Scoped limits an error response builder to requests whose route matches
// the given matcher. The default scope is a catchall.
func Scoped(m matcher.Matcher) RouteOption {
	return func(cfg *routeConfig) {
		cfg.scope = m
	}
}
