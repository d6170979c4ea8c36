package model

import (
	"net/url"

	"github.com/basshead301/attendance-intermediary-service/internal/validation"
)

// MissingParametersMessage is the body of the 400 returned when a required
// query parameter is absent or empty.
const MissingParametersMessage = "Error: Missing required query parameters (alertKey, employeeName, responseText)."

var validate = validation.New()

// RespondRequest is the query string of an emailed attendance link:
//
//	GET /respond?alertKey=...&employeeName=...&responseText=...&sender=...
//
// Sender is only logged.
type RespondRequest struct {
	AlertKey     string `query:"alertKey" validate:"required"`
	EmployeeName string `query:"employeeName" validate:"required"`
	ResponseText string `query:"responseText" validate:"required"`
	Sender       string `query:"sender"`
}

func (r *RespondRequest) Validate() error {
	return validate.Struct(r)
}

func (r *RespondRequest) ValidationFailureMessage() string {
	return MissingParametersMessage
}

// ForwardRequest builds the payload sent downstream. Fields are copied
// verbatim; Sender has no counterpart.
func (r *RespondRequest) ForwardRequest() ForwardRequest {
	return ForwardRequest{
		AlertKey:     r.AlertKey,
		EmployeeName: r.EmployeeName,
		ResponseText: r.ResponseText,
	}
}

// DisplayName returns the employee name for the confirmation page.
//
// Email clients sometimes encode links twice, so the already-decoded query
// value is unescaped once more. A value that is not valid escaping is shown
// as received.
func (r *RespondRequest) DisplayName() string {
	name, err := url.PathUnescape(r.EmployeeName)
	if err != nil {
		return r.EmployeeName
	}
	return name
}

// ForwardRequest is the JSON body POSTed to the downstream service.
type ForwardRequest struct {
	AlertKey     string `json:"alertKey"`
	EmployeeName string `json:"employeeName"`
	ResponseText string `json:"responseText"`
}
