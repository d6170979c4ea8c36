// Package page renders the HTML pages shown to people who follow an emailed link.
//
// Templates are embedded into the binary and parsed once with html/template,
// so every value is escaped for its HTML context. Sprig functions are
// available inside templates.
package page

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("pages").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.html"),
)

// Render executes the named template with data and returns the HTML.
func Render(name Template, data interface{}) (string, error) {
	tmpl := templates.Lookup(string(name) + ".html")
	if tmpl == nil {
		return "", errors.Errorf("page template %s not found", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute page template %s", name)
	}

	return body.String(), nil
}

// Confirmation renders the page shown after a response reached the downstream.
func Confirmation(employeeName, responseText string) (string, error) {
	return Render(TemplateConfirmation, ConfirmationData{
		EmployeeName: employeeName,
		ResponseText: responseText,
	})
}
