package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "alertKey", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type every handler returns to the global error handler.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: written to the client verbatim as the plain-text body.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors, logged but not rendered.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors"`

	// cause is the lower-level error, kept for logs and errors.Unwrap.
	cause error
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError target, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// Unwrap returns the error this HTTPError was built from, if any.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
