package response

import "net/http"

// HTTPError is a structured error carrying an HTTP status code, a
// machine-readable code, a human-readable reason and an optional wrapped
// cause. It is a value type; the With* methods return modified copies.
type HTTPError struct {
	Status  int    // HTTP status code
	Code    string // machine-readable error code
	Message string // human-readable reason phrase

	cause error
}

// NewHTTPError creates an HTTPError with the given status and reason. An
// empty reason falls back to the standard status text.
func NewHTTPError(status int, reason string) HTTPError {
	if reason == "" {
		reason = http.StatusText(status)
	}
	return HTTPError{Status: status, Message: reason}
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// Unwrap returns the wrapped cause, if any.
func (e HTTPError) Unwrap() error {
	return e.cause
}

// WithMessage returns a copy of the error with a custom reason phrase.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithError returns a copy of the error wrapping the given cause.
func (e HTTPError) WithError(err error) HTTPError {
	e.cause = err
	return e
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	// 4xx Client Errors
	ErrBadRequest          = HTTPError{Status: http.StatusBadRequest, Code: "bad_request", Message: http.StatusText(http.StatusBadRequest)}
	ErrUnauthorized        = HTTPError{Status: http.StatusUnauthorized, Code: "unauthorized", Message: http.StatusText(http.StatusUnauthorized)}
	ErrForbidden           = HTTPError{Status: http.StatusForbidden, Code: "forbidden", Message: http.StatusText(http.StatusForbidden)}
	ErrNotFound            = HTTPError{Status: http.StatusNotFound, Code: "not_found", Message: http.StatusText(http.StatusNotFound)}
	ErrMethodNotAllowed    = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed", Message: http.StatusText(http.StatusMethodNotAllowed)}
	ErrConflict            = HTTPError{Status: http.StatusConflict, Code: "conflict", Message: http.StatusText(http.StatusConflict)}
	ErrUnprocessableEntity = HTTPError{Status: http.StatusUnprocessableEntity, Code: "unprocessable_entity", Message: http.StatusText(http.StatusUnprocessableEntity)}
	ErrTooManyRequests     = HTTPError{Status: http.StatusTooManyRequests, Code: "too_many_requests", Message: http.StatusText(http.StatusTooManyRequests)}

	// 5xx Server Errors
	ErrInternalServerError = HTTPError{Status: http.StatusInternalServerError, Code: "internal_server_error", Message: http.StatusText(http.StatusInternalServerError)}
	ErrNotImplemented      = HTTPError{Status: http.StatusNotImplemented, Code: "not_implemented", Message: http.StatusText(http.StatusNotImplemented)}
	ErrBadGateway          = HTTPError{Status: http.StatusBadGateway, Code: "bad_gateway", Message: http.StatusText(http.StatusBadGateway)}
	ErrServiceUnavailable  = HTTPError{Status: http.StatusServiceUnavailable, Code: "service_unavailable", Message: http.StatusText(http.StatusServiceUnavailable)}
	ErrGatewayTimeout      = HTTPError{Status: http.StatusGatewayTimeout, Code: "gateway_timeout", Message: http.StatusText(http.StatusGatewayTimeout)}
)
