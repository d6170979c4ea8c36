package page

// Template is a string-based enum naming page templates.
type Template string

const (
	// TemplateConfirmation corresponds to templates/confirmation.html.
	TemplateConfirmation Template = "confirmation"
)

// ConfirmationData is rendered into TemplateConfirmation.
type ConfirmationData struct {
	EmployeeName string
	ResponseText string
}
