package matcher

import (
	"net/http"
	"regexp"
	"strings"
	"sync"
)

// anchorMode controls how a compiled template is anchored within the path.
type anchorMode int

const (
	anchorBoth  anchorMode = iota // ^...$ : whole path
	anchorStart                   // ^...  : leading span only
	anchorEnd                     //  ...$ : trailing span only
)

// program is the compiled form of a :name template. Compilation is lazy and
// happens at most once; matcher values copied during composition share the
// same program through this pointer.
type program struct {
	template string
	anchor   anchorMode

	once  sync.Once
	re    *regexp.Regexp
	names []string
}

func newProgram(template string, anchor anchorMode) *program {
	return &program{template: template, anchor: anchor}
}

// tokenRe recognizes :name capture tokens inside a template.
var tokenRe = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// compiled builds the regular expression on first use. Each :name token
// becomes a one-or-more non-slash capture; everything between tokens is
// matched literally. A capture can never match an empty string or cross a
// "/" boundary, and without a trailing delimiter it greedily absorbs
// adjacent non-slash text.
func (p *program) compiled() (*regexp.Regexp, []string) {
	p.once.Do(func() {
		var b strings.Builder
		if p.anchor != anchorEnd {
			b.WriteString("^")
		}
		last := 0
		for _, loc := range tokenRe.FindAllStringSubmatchIndex(p.template, -1) {
			b.WriteString(regexp.QuoteMeta(p.template[last:loc[0]]))
			p.names = append(p.names, p.template[loc[2]:loc[3]])
			b.WriteString("([^/]+)")
			last = loc[1]
		}
		b.WriteString(regexp.QuoteMeta(p.template[last:]))
		if p.anchor != anchorStart {
			b.WriteString("$")
		}
		p.re = regexp.MustCompile(b.String())
	})
	return p.re, p.names
}

// patternMatcher matches the whole path against a :name template.
type patternMatcher struct {
	prog *program
}

// Pattern returns a matcher for a /-delimited template where ":name" tokens
// capture one-or-more non-slash characters and all other text matches
// literally. The template is compiled once, lazily, and must match the path
// end-to-end.
//
//	matcher.Pattern("users/:id/posts/:slug")
func Pattern(template string) Matcher {
	return patternMatcher{prog: newProgram(template, anchorBoth)}
}

func (m patternMatcher) Match(path string, r *http.Request) *MatchedRoute {
	re, names := m.prog.compiled()
	sub := re.FindStringSubmatch(path)
	if sub == nil {
		return nil
	}
	params := make(map[string]string, len(names))
	for i, name := range names {
		params[name] = sub[i+1]
	}
	return newMatch(path, r, params)
}
