package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/basshead301/attendance-intermediary-service/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that runs New().Struct(req)
type Validatable interface {
	Validate() error
}

// FailureMessenger lets a payload replace the generic "Validation failed"
// message with one written for its callers.
type FailureMessenger interface {
	ValidationFailureMessage() string
}

// New returns a validator that reports fields by their query/json name
// instead of the Go field name, so FieldError.Field matches what the
// caller actually sent.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	return v
}

// queryBinder binds `query:` tags only. The request body, its content type
// and path params never reach the payload.
var queryBinder = &echo.DefaultBinder{}

// BindAndValidate binds the query string into payload and validates it.
//
// Flow:
//  1. Query params populate the struct through its `query:` tags.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) with field-level errors if validation fails.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := queryBinder.BindQueryParams(c, payload); err != nil {
		message := "Invalid request"
		if echoErr, ok := err.(*echo.HTTPError); ok {
			if msg, ok := echoErr.Message.(string); ok {
				message = msg
			}
		}
		return errs.NewBadRequestError(message, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		if messenger, ok := payload.(FailureMessenger); ok {
			msg = messenger.ValidationFailureMessage()
		}
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	switch e := err.(type) {
	case validator.ValidationErrors:
		for _, fe := range e {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: fe.Field(),
				Error: fieldMessage(fe),
			})
		}

	default:
		// Not a field-level failure; still a 400.
		fieldErrors = []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return "must be a valid email address"

	case "url":
		return "must be a valid URL"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
}
