// Package binder converts raw request strings into typed Go values for the
// routing pipeline.
//
// # Type-Handler Registry
//
// The Registry maps type names to conversion functions. A handler reports
// "no value" (ok=false) rather than an error when a string does not fit, so
// the caller can try the next declared type:
//
//	reg := binder.NewRegistry()
//	v, err := reg.Convert("123", "int")        // v = 123 (int)
//	v, err = reg.Convert("abc", "int", "string") // v = "abc" (string)
//
// Built-in handlers cover "int" (canonical decimal forms only), "float",
// "bool" (1/true/yes/on and 0/false/no/off, case-insensitive) and "string"
// (identity). All four can be replaced or removed by name with Register.
// Custom types plug in the same way:
//
//	reg.Register("uuid", func(raw string) (any, bool) {
//		id, err := uuid.Parse(raw)
//		return id, err == nil
//	})
//
// # Request Binders
//
// Query and Form bind query-string and form data into tagged structs:
//
//	type SearchRequest struct {
//		Query string   `query:"q"`
//		Page  int      `query:"page"`
//		Tags  []string `query:"tags"`
//	}
//
//	var req SearchRequest
//	err := binder.Query()(r, &req)
//
// Binding failures carry the package's sentinel errors so the router can map
// them to HTTP statuses (ErrFailedToParseQuery, ErrFailedToParseForm,
// ErrFailedToBindParam).
package binder
