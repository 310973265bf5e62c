package router

import "errors"

// Registration misuse panics with these errors; they indicate programmer
// mistakes at startup, not request-time conditions.
var (
	ErrInvalidMethod        = errors.New("invalid http method")
	ErrInvalidStatusPattern = errors.New("invalid status pattern")
	ErrNilMatcher           = errors.New("matcher cannot be nil")
	ErrNilHandler           = errors.New("handler cannot be nil")
)
