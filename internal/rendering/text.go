package rendering

import (
	"bytes"
	"text/template"
)

// RenderText renders a result as plain text for terminal output.
func RenderText(result *Result) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/result.txt.tmpl")
	if err != nil {
		return "", &TemplateError{
			Message: "failed to parse text template",
			Cause:   err,
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "result.txt.tmpl", result); err != nil {
		return "", &RenderError{
			Message: "failed to execute text template",
			Cause:   err,
		}
	}
	return buf.String(), nil
}
