package errs

import (
	"fmt"
	"net/http"
)

const (
	// CodeDownstreamRejected marks a downstream that answered with a non-2xx status.
	CodeDownstreamRejected = "DOWNSTREAM_REJECTED"

	// CodeDownstreamUnreachable marks an outbound call that never got a response.
	CodeDownstreamUnreachable = "DOWNSTREAM_UNREACHABLE"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors carries
// field-level details.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a generic 500 whose message is only the status text.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewDownstreamRejectedError reports a downstream that answered with a
// non-2xx status. The status code and the downstream body are surfaced to
// the caller unchanged.
func NewDownstreamRejectedError(status int, body string) *HTTPError {
	return &HTTPError{
		Code: CodeDownstreamRejected,
		Message: fmt.Sprintf(
			"Error: Could not submit your response. The application reported an issue. Status: %d. Details: %s",
			status, body,
		),
		Status: http.StatusInternalServerError,
	}
}

// NewDownstreamUnreachableError reports an outbound call that failed before
// a response arrived (refused connection, timeout, malformed response).
// cause is kept for logging; description is what the caller sees.
func NewDownstreamUnreachableError(description string, cause error) *HTTPError {
	return &HTTPError{
		Code:    CodeDownstreamUnreachable,
		Message: "Error: Could not process your request. " + description,
		Status:  http.StatusInternalServerError,
		cause:   cause,
	}
}
