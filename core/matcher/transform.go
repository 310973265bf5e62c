package matcher

import (
	"maps"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TransformFunc rewrites a path before matching. Returning false rejects the
// match outright, regardless of any child matcher.
type TransformFunc func(path string) (string, bool)

// transformMatcher rewrites the path and delegates to a mandatory child.
type transformMatcher struct {
	fn      TransformFunc
	capture string
	child   Matcher
}

// Transform returns a composable matcher that applies fn to the path and
// matches the child against the transformed result. A Transform without a
// child never matches. On success the original, untransformed path is stored
// under "original_path" unless reconfigured, and the resulting
// MatchedRoute.Path is the transformed path.
func Transform(fn TransformFunc, opts ...Option) Composable {
	return transformMatcher{fn: fn, capture: captureKey("original_path", opts)}
}

func (m transformMatcher) With(child Matcher) Composable {
	m.child = attach(m.child, child)
	return m
}

func (m transformMatcher) Match(path string, r *http.Request) *MatchedRoute {
	if m.fn == nil || m.child == nil {
		return nil
	}
	transformed, ok := m.fn(path)
	if !ok {
		return nil
	}

	cm := m.child.Match(transformed, r)
	if cm == nil {
		return nil
	}

	params := make(map[string]string, len(cm.Params)+1)
	maps.Copy(params, cm.Params)
	// Capture is applied last and wins over a same-named child parameter.
	if m.capture != "" {
		params[m.capture] = path
	}
	return newMatch(transformed, r, params)
}

// Lowercase returns a TransformFunc that lowercases the path using Unicode
// case mapping, the usual building block for case-insensitive routing.
func Lowercase() TransformFunc {
	return func(path string) (string, bool) {
		return cases.Lower(language.Und).String(path), true
	}
}
