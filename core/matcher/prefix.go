package matcher

import (
	"maps"
	"net/http"
	"strings"
)

// prefixMatcher strips a literal prefix and delegates the remainder.
type prefixMatcher struct {
	prefix  string
	capture string
	child   Matcher
}

// Prefix returns a composable matcher that matches paths starting with the
// literal prefix. The remainder (path with the prefix stripped) is handed to
// the child matcher, if any, and stored under "prefix_remainder" unless
// reconfigured with CaptureAs or NoCapture.
func Prefix(prefix string, opts ...Option) Composable {
	return prefixMatcher{prefix: prefix, capture: captureKey("prefix_remainder", opts)}
}

func (m prefixMatcher) With(child Matcher) Composable {
	m.child = attach(m.child, child)
	return m
}

func (m prefixMatcher) Match(path string, r *http.Request) *MatchedRoute {
	remainder, ok := strings.CutPrefix(path, m.prefix)
	if !ok {
		return nil
	}

	params := make(map[string]string)
	if m.child != nil {
		cm := m.child.Match(remainder, r)
		if cm == nil {
			return nil
		}
		maps.Copy(params, cm.Params)
	}
	// Capture is applied last and wins over a same-named child parameter.
	if m.capture != "" {
		params[m.capture] = remainder
	}
	return newMatch(path, r, params)
}

// prefixPatternMatcher strips a templated prefix and delegates the remainder.
type prefixPatternMatcher struct {
	prog    *program
	capture string
	child   Matcher
}

// PrefixPattern returns a composable matcher whose prefix is a :name
// template anchored at the start of the path only. Parameters captured by
// the template are merged with the child matcher's parameters (child keys
// win), then the remainder after the consumed span is stored under
// "prefix_remainder" unless reconfigured.
//
// The template is not required to end at a "/" boundary: a trailing capture
// absorbs adjacent non-slash text.
func PrefixPattern(template string, opts ...Option) Composable {
	return prefixPatternMatcher{
		prog:    newProgram(template, anchorStart),
		capture: captureKey("prefix_remainder", opts),
	}
}

func (m prefixPatternMatcher) With(child Matcher) Composable {
	m.child = attach(m.child, child)
	return m
}

func (m prefixPatternMatcher) Match(path string, r *http.Request) *MatchedRoute {
	re, names := m.prog.compiled()
	idx := re.FindStringSubmatchIndex(path)
	if idx == nil {
		return nil
	}

	params := make(map[string]string, len(names))
	for i, name := range names {
		params[name] = path[idx[2*(i+1)]:idx[2*(i+1)+1]]
	}

	remainder := path[idx[1]:]
	if m.child != nil {
		cm := m.child.Match(remainder, r)
		if cm == nil {
			return nil
		}
		maps.Copy(params, cm.Params)
	}
	if m.capture != "" {
		params[m.capture] = remainder
	}
	return newMatch(path, r, params)
}
