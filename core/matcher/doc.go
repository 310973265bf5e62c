// Package matcher provides a composable path-matching algebra for HTTP
// routing. Matchers are small immutable values that test a request path and,
// on success, produce a MatchedRoute carrying the matched path and any
// captured parameters.
//
// # Matcher Families
//
// Simple matchers stand alone:
//
//   - Exact: byte-exact comparison against a fixed path
//   - Catchall: matches every path
//   - Pattern: /-delimited template with :name segment captures
//
// Composable matchers narrow the search space and delegate the remainder to
// an optional child matcher attached with With:
//
//   - Prefix, PrefixPattern: match and strip a leading span
//   - Suffix, SuffixPattern: match and strip a trailing span
//   - Transform: rewrite the path before matching
//
// # Composition
//
// With never mutates the receiver. It returns a new matcher value, threading
// the child through any existing composable chain so a base matcher can be
// reused for many compositions:
//
//	api := matcher.Prefix("api/")
//	users := api.With(matcher.Pattern("users/:id"))
//	posts := api.With(matcher.Pattern("posts/:id"))
//	// api itself is unchanged and still has no child
//
// # Captures
//
// Composable matchers store the stripped remainder (or, for Transform, the
// original path) in the parameter map under a configurable key. Defaults are
// per constructor (prefix_remainder, suffix_base, suffix_remainder,
// original_path); use CaptureAs to rename or NoCapture to disable. The
// capture is written after child parameters are merged, so on a name
// collision the capture wins.
package matcher
