package binder

import "errors"

// Error variables define common binding failures that occur while supplying
// handler parameters or parsing request data.
var (
	// ErrFailedToBindParam indicates a handler parameter could not be
	// supplied: the value did not convert to any of the declared types, or
	// no conversion handler was registered for them.
	ErrFailedToBindParam = errors.New("failed to bind handler parameter")

	// ErrFailedToParseQuery indicates the request query string is malformed
	// or could not be bound to the target struct.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrFailedToParseForm indicates submitted form data is malformed or
	// could not be bound to the target struct.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrUnsupportedMediaType indicates the Content-Type header specifies a
	// media type the form binder doesn't support.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrMissingContentType indicates the request lacks a Content-Type
	// header when one is required for parsing.
	ErrMissingContentType = errors.New("missing content type")
)
