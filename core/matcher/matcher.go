package matcher

import (
	"net/http"
)

// Matcher tests a request path. A nil result means "no match"; matching
// failure is normal control flow, not an error. Implementations are
// immutable values, safe to share and to call concurrently.
type Matcher interface {
	Match(path string, r *http.Request) *MatchedRoute
}

// Composable is a Matcher that can delegate the narrowed portion of the path
// to a child matcher.
type Composable interface {
	Matcher

	// With returns a new matcher with child attached; the receiver is never
	// mutated. If the receiver already holds a composable child, the child
	// is attached at the deepest composable point of the existing chain. A
	// non-composable child is replaced outright.
	With(child Matcher) Composable
}

// MatchedRoute is the immutable result of a successful match.
type MatchedRoute struct {
	// Path is the exact path the match was evaluated against. After a
	// Transform matcher it is the transformed path, not the original.
	Path string

	// Request is the inbound request the path was derived from.
	Request *http.Request

	// Params maps capture names to their raw string values. Conversion to
	// richer types happens at binding time, never here.
	Params map[string]string
}

// Param returns the raw value of a captured parameter.
func (m *MatchedRoute) Param(name string) (string, bool) {
	v, ok := m.Params[name]
	return v, ok
}

// newMatch builds a MatchedRoute, allocating an empty parameter map when
// none is supplied so callers can rely on Params being non-nil.
func newMatch(path string, r *http.Request, params map[string]string) *MatchedRoute {
	if params == nil {
		params = make(map[string]string)
	}
	return &MatchedRoute{Path: path, Request: r, Params: params}
}

// Option configures capture behavior of a composable matcher.
type Option func(*captureConfig)

type captureConfig struct {
	key string
}

// CaptureAs stores the captured path fragment under the given key instead of
// the constructor's default.
func CaptureAs(key string) Option {
	return func(c *captureConfig) {
		c.key = key
	}
}

// NoCapture disables storing the captured path fragment entirely.
func NoCapture() Option {
	return func(c *captureConfig) {
		c.key = ""
	}
}

func captureKey(def string, opts []Option) string {
	cfg := captureConfig{key: def}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.key
}

// attach implements the shared With contract for composable matchers: thread
// through an existing composable child, replace a non-composable one.
func attach(current, child Matcher) Matcher {
	if current != nil {
		if c, ok := current.(Composable); ok {
			return c.With(child)
		}
	}
	return child
}
