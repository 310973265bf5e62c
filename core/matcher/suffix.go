package matcher

import (
	"maps"
	"net/http"
	"strings"
)

// suffixMatcher strips a literal suffix and delegates the base.
type suffixMatcher struct {
	suffix  string
	capture string
	child   Matcher
}

// Suffix returns a composable matcher that matches paths ending with the
// literal suffix. The base (path with the suffix stripped) is handed to the
// child matcher, if any, and stored under "suffix_base" unless reconfigured
// with CaptureAs or NoCapture.
func Suffix(suffix string, opts ...Option) Composable {
	return suffixMatcher{suffix: suffix, capture: captureKey("suffix_base", opts)}
}

func (m suffixMatcher) With(child Matcher) Composable {
	m.child = attach(m.child, child)
	return m
}

func (m suffixMatcher) Match(path string, r *http.Request) *MatchedRoute {
	base, ok := strings.CutSuffix(path, m.suffix)
	if !ok {
		return nil
	}

	params := make(map[string]string)
	if m.child != nil {
		cm := m.child.Match(base, r)
		if cm == nil {
			return nil
		}
		maps.Copy(params, cm.Params)
	}
	// Capture is applied last and wins over a same-named child parameter.
	if m.capture != "" {
		params[m.capture] = base
	}
	return newMatch(path, r, params)
}

// suffixPatternMatcher strips a templated suffix and delegates the base.
type suffixPatternMatcher struct {
	prog    *program
	capture string
	child   Matcher
}

// SuffixPattern returns a composable matcher whose suffix is a :name
// template anchored at the end of the path only. Parameters captured by the
// template are merged with the child matcher's parameters (child keys win),
// then the base before the consumed span is stored under "suffix_remainder"
// unless reconfigured.
func SuffixPattern(template string, opts ...Option) Composable {
	return suffixPatternMatcher{
		prog:    newProgram(template, anchorEnd),
		capture: captureKey("suffix_remainder", opts),
	}
}

func (m suffixPatternMatcher) With(child Matcher) Composable {
	m.child = attach(m.child, child)
	return m
}

func (m suffixPatternMatcher) Match(path string, r *http.Request) *MatchedRoute {
	re, names := m.prog.compiled()
	idx := re.FindStringSubmatchIndex(path)
	if idx == nil {
		return nil
	}

	params := make(map[string]string, len(names))
	for i, name := range names {
		params[name] = path[idx[2*(i+1)]:idx[2*(i+1)+1]]
	}

	base := path[:idx[0]]
	if m.child != nil {
		cm := m.child.Match(base, r)
		if cm == nil {
			return nil
		}
		maps.Copy(params, cm.Params)
	}
	if m.capture != "" {
		params[m.capture] = base
	}
	return newMatch(path, r, params)
}
