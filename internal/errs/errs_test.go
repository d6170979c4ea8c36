package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)))
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("missing", nil, []FieldError{{Field: "alertKey", Error: "is required"}})
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "missing", err.Error())
	assert.Len(t, err.Errors, 1)

	code := "MISSING_PARAMETERS"
	assert.Equal(t, code, NewBadRequestError("missing", &code, nil).Code)
}

func TestNewDownstreamRejectedError(t *testing.T) {
	err := NewDownstreamRejectedError(http.StatusServiceUnavailable, "unavailable")
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, CodeDownstreamRejected, err.Code)
	assert.Equal(t,
		"Error: Could not submit your response. The application reported an issue. Status: 503. Details: unavailable",
		err.Message)
}

func TestNewDownstreamUnreachableError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
	err := NewDownstreamUnreachableError(cause.Error(), fmt.Errorf("forward: %w", cause))

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, CodeDownstreamUnreachable, err.Code)
	assert.Equal(t, "Error: Could not process your request. dial tcp 127.0.0.1:1: connect: connection refused", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	base := NewNotFoundError("Route not found", nil)
	wrapped := fmt.Errorf("router: %w", base)

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Route not found", httpErr.Message)
}
