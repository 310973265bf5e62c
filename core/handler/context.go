package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/routekit/core/binder"
	"github.com/dmitrymomot/routekit/core/matcher"
	"github.com/dmitrymomot/routekit/core/response"
)

// Context carries everything a pipeline handler may need for one invocation:
// the match result, the inbound request, the current response (modifiers
// only), the resolved HTTP error (error builders only) and typed access to
// captured path parameters. A fresh Context is built for every handler
// invocation and must not be retained after the handler returns.
type Context struct {
	route string
	match *matcher.MatchedRoute
	types *binder.Registry
	resp  *response.Response
	exc   *response.HTTPError
}

// NewContext creates a handler context for a successful match. The types
// registry drives the typed parameter accessors.
func NewContext(route string, match *matcher.MatchedRoute, types *binder.Registry) *Context {
	return &Context{route: route, match: match, types: types}
}

// SetResponse attaches the current response, making it visible to modifier
// handlers through Response.
func (c *Context) SetResponse(resp *response.Response) {
	c.resp = resp
}

// SetException attaches the resolved HTTP error, making it visible to error
// builder handlers through Exception.
func (c *Context) SetException(exc *response.HTTPError) {
	c.exc = exc
}

// Path returns the path the matcher evaluated, which may differ from the
// request path after a transform.
func (c *Context) Path() string {
	return c.match.Path
}

// Route returns the normalized route extracted from the request, before any
// matcher transformation.
func (c *Context) Route() string {
	return c.route
}

// Request returns the inbound HTTP request.
func (c *Context) Request() *http.Request {
	return c.match.Request
}

// Response returns the current response during modifier processing, or nil
// in every other stage.
func (c *Context) Response() *response.Response {
	return c.resp
}

// Exception returns the HTTP error being rendered during error builder
// processing, or nil in every other stage.
func (c *Context) Exception() *response.HTTPError {
	return c.exc
}

// Param returns the raw string value of a captured path parameter.
func (c *Context) Param(name string) (string, bool) {
	return c.match.Param(name)
}

// As converts a captured parameter by trying the declared type names in
// order against the type-handler registry. Missing parameters and failed
// conversions wrap binder.ErrFailedToBindParam.
func (c *Context) As(name string, types ...string) (any, error) {
	raw, ok := c.match.Param(name)
	if !ok {
		return nil, fmt.Errorf("%w: missing parameter %q", binder.ErrFailedToBindParam, name)
	}
	return c.types.Convert(raw, types...)
}

// String returns a captured parameter through the "string" type handler.
func (c *Context) String(name string) (string, error) {
	v, err := c.As(name, "string")
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q: string handler returned %T", binder.ErrFailedToBindParam, name, v)
	}
	return s, nil
}

// Int returns a captured parameter through the "int" type handler. Only
// canonical decimal forms convert.
func (c *Context) Int(name string) (int, error) {
	v, err := c.As(name, "int")
	if err != nil {
		return 0, err
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: %q: int handler returned %T", binder.ErrFailedToBindParam, name, v)
	}
	return n, nil
}

// Float returns a captured parameter through the "float" type handler.
func (c *Context) Float(name string) (float64, error) {
	v, err := c.As(name, "float")
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %q: float handler returned %T", binder.ErrFailedToBindParam, name, v)
	}
	return f, nil
}

// Bool returns a captured parameter through the "bool" type handler.
func (c *Context) Bool(name string) (bool, error) {
	v, err := c.As(name, "bool")
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q: bool handler returned %T", binder.ErrFailedToBindParam, name, v)
	}
	return b, nil
}

// BindQuery binds the request query string into a `query`-tagged struct.
func (c *Context) BindQuery(v any) error {
	return binder.Query()(c.Request(), v)
}

// BindForm binds the request form body into a `form`-tagged struct.
func (c *Context) BindForm(v any) error {
	return binder.Form()(c.Request(), v)
}

// reqContext returns the request context, or a background context when the
// request carries none.
func (c *Context) reqContext() context.Context {
	if r := c.match.Request; r != nil {
		return r.Context()
	}
	return context.Background()
}

// Deadline implements context.Context by delegating to the request context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.reqContext().Deadline()
}

// Done implements context.Context by delegating to the request context.
func (c *Context) Done() <-chan struct{} {
	return c.reqContext().Done()
}

// Err implements context.Context by delegating to the request context.
func (c *Context) Err() error {
	return c.reqContext().Err()
}

// Value implements context.Context by delegating to the request context.
func (c *Context) Value(key any) any {
	return c.reqContext().Value(key)
}
