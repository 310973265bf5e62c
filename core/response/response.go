package response

import (
	"encoding/json"
	"maps"
	"net/http"
)

// Response is a materialized HTTP response: status code, headers and body.
// The zero value is not useful; build responses with the constructors below.
// Decorator methods return copies, so a Response can be shared safely as
// long as SetBody is not used on the shared value.
type Response struct {
	status      int
	contentType string
	header      http.Header
	body        []byte
	neverCache  bool
	final       bool
}

// Status returns the HTTP status code, defaulting to 200.
func (r *Response) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Body returns the response body.
func (r *Response) Body() []byte {
	return r.body
}

// SetBody replaces the response body in place.
func (r *Response) SetBody(body []byte) {
	r.body = body
}

// ContentType returns the Content-Type the response renders with.
func (r *Response) ContentType() string {
	return r.contentType
}

// Header returns the value of a previously set custom header.
func (r *Response) Header(key string) string {
	return r.header.Get(key)
}

// IsFinal reports whether this is a terminal response that stops further
// modifier processing.
func (r *Response) IsFinal() bool {
	return r.final
}

// IsNeverCache reports whether the response forbids caching.
func (r *Response) IsNeverCache() bool {
	return r.neverCache
}

// WithStatus returns a copy with a different status code.
func (r *Response) WithStatus(status int) *Response {
	c := r.clone()
	c.status = status
	return c
}

// WithBody returns a copy with a different body.
func (r *Response) WithBody(body []byte) *Response {
	c := r.clone()
	c.body = body
	return c
}

// WithContentType returns a copy with a different Content-Type.
func (r *Response) WithContentType(contentType string) *Response {
	c := r.clone()
	c.contentType = contentType
	return c
}

// WithHeader returns a copy with an additional custom header.
func (r *Response) WithHeader(key, value string) *Response {
	c := r.clone()
	if c.header == nil {
		c.header = make(http.Header)
	}
	c.header.Set(key, value)
	return c
}

// NeverCache returns a copy that renders with caching disabled.
func (r *Response) NeverCache() *Response {
	c := r.clone()
	c.neverCache = true
	return c
}

// Final returns a copy marked terminal: once produced, the pipeline skips
// all remaining modifier processing.
func (r *Response) Final() *Response {
	c := r.clone()
	c.final = true
	return c
}

func (r *Response) clone() *Response {
	c := *r
	if r.header != nil {
		c.header = maps.Clone(r.header)
	}
	return &c
}

// Render writes the response to w: custom headers first, then Content-Type,
// cache directives, status and body.
func (r *Response) Render(w http.ResponseWriter, req *http.Request) error {
	h := w.Header()
	for k, vs := range r.header {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	if r.contentType != "" {
		h.Set("Content-Type", r.contentType)
	}
	if r.neverCache {
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		h.Set("Pragma", "no-cache")
	}

	w.WriteHeader(r.Status())
	if len(r.body) > 0 {
		_, err := w.Write(r.body)
		return err
	}
	return nil
}

// String creates a text/plain response with 200 OK status.
func String(content string) *Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain response with a custom status code.
func StringWithStatus(content string, status int) *Response {
	return &Response{
		status:      status,
		contentType: "text/plain; charset=utf-8",
		body:        []byte(content),
	}
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string) *Response {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus creates a text/html response with a custom status code.
func HTMLWithStatus(content string, status int) *Response {
	return &Response{
		status:      status,
		contentType: "text/html; charset=utf-8",
		body:        []byte(content),
	}
}

// Bytes creates a response with a custom content type and 200 OK status.
func Bytes(content []byte, contentType string) *Response {
	return BytesWithStatus(content, contentType, http.StatusOK)
}

// BytesWithStatus creates a response with a custom content type and status.
func BytesWithStatus(content []byte, contentType string, status int) *Response {
	return &Response{
		status:      status,
		contentType: contentType,
		body:        content,
	}
}

// JSON creates an application/json response with 200 OK status. If v cannot
// be encoded, a plain 500 response is returned instead.
func JSON(v any) *Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom status
// code. If v cannot be encoded, a plain 500 response is returned instead.
func JSONWithStatus(v any, status int) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		return StringWithStatus(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
	return &Response{
		status:      status,
		contentType: "application/json; charset=utf-8",
		body:        body,
	}
}

// Status creates an empty response with the given status code.
func Status(status int) *Response {
	return &Response{status: status}
}

// NoContent creates a 204 No Content response.
func NoContent() *Response {
	return Status(http.StatusNoContent)
}

// Redirect creates a 302 Found redirect to the given URL.
func Redirect(url string) *Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectPermanent creates a 301 Moved Permanently redirect.
func RedirectPermanent(url string) *Response {
	return RedirectWithStatus(url, http.StatusMovedPermanently)
}

// RedirectWithStatus creates a redirect with a custom 3xx status code,
// falling back to 302 for out-of-range values.
func RedirectWithStatus(url string, status int) *Response {
	if status < 300 || status >= 400 {
		status = http.StatusFound
	}
	r := &Response{status: status}
	return r.WithHeader("Location", url)
}
