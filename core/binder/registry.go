package binder

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeHandlerFunc converts a raw string parameter value to a typed value.
// Returning ok=false means the string does not represent a value of this
// type; it is not an error, and the caller tries the next declared type.
type TypeHandlerFunc func(raw string) (any, bool)

// Registry maps type names to conversion functions. It is configured once
// at startup and treated as read-only afterwards; Register must not be
// interleaved with request handling.
type Registry struct {
	handlers map[string]TypeHandlerFunc
}

// NewRegistry returns a registry pre-populated with the built-in "int",
// "float", "bool" and "string" handlers.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]TypeHandlerFunc)}
	r.Register("int", intHandler)
	r.Register("float", floatHandler)
	r.Register("bool", boolHandler)
	r.Register("string", stringHandler)
	return r
}

// Register adds or replaces the conversion function for a type name.
// A nil fn removes the handler.
func (r *Registry) Register(name string, fn TypeHandlerFunc) {
	if fn == nil {
		delete(r.handlers, name)
		return
	}
	r.handlers[name] = fn
}

// Convert tries the registered handler of each declared type in order and
// returns the first successful conversion. An empty type list passes the
// raw string through unconverted. If no declared type has a handler, or
// every handler rejects the value, Convert fails with ErrFailedToBindParam.
func (r *Registry) Convert(raw string, types ...string) (any, error) {
	if len(types) == 0 {
		return raw, nil
	}
	for _, name := range types {
		h, ok := r.handlers[name]
		if !ok {
			continue
		}
		if v, ok := h(raw); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q does not convert to any of %v", ErrFailedToBindParam, raw, types)
}

// intHandler accepts only canonical decimal forms: the value must round-trip
// through int-then-string unchanged, so "01", "+1" and "1e2" all fail.
func intHandler(raw string) (any, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || strconv.Itoa(n) != raw {
		return nil, false
	}
	return n, true
}

func floatHandler(raw string) (any, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

func boolHandler(raw string) (any, bool) {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return nil, false
}

func stringHandler(raw string) (any, bool) {
	return raw, true
}
