package matcher

import "net/http"

// exactMatcher matches a single fixed path, byte-exact and case-sensitive.
type exactMatcher struct {
	target string
}

// Exact returns a matcher that matches only the given path, case-sensitive.
// It produces no parameters.
func Exact(target string) Matcher {
	return exactMatcher{target: target}
}

func (m exactMatcher) Match(path string, r *http.Request) *MatchedRoute {
	if path != m.target {
		return nil
	}
	return newMatch(path, r, nil)
}

// catchallMatcher matches every path.
type catchallMatcher struct{}

// Catchall returns a matcher that matches any path and produces no
// parameters. It is the default scope for error response builders.
func Catchall() Matcher {
	return catchallMatcher{}
}

func (catchallMatcher) Match(path string, r *http.Request) *MatchedRoute {
	return newMatch(path, r, nil)
}
