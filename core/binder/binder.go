package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// Binder binds HTTP request data to a Go value. It provides a unified
// interface for extracting data from different parts of a request (query
// string, form body) into tagged structs.
type Binder func(r *http.Request, v any) error

// Query creates a query-string binder.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` binds to query parameter "name"
//   - `query:"-"` skips the field
//
// Supported field types: string, signed/unsigned integers, floats, bool,
// slices of those for multi-value parameters, and pointers for optional
// fields.
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data request bodies, using `form` struct tags with the
// same conventions and field types as Query.
func Form() Binder {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type %q", ErrFailedToParseForm, contentType)
		}

		var values map[string][]string
		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case strings.HasPrefix(mediaType, "multipart/"):
			if err := r.ParseMultipartForm(defaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}

// defaultMaxMemory bounds in-memory multipart parsing; larger bodies spill
// to disk (10MB).
const defaultMaxMemory = 10 << 20
