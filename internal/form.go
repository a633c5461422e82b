package internal

import (
	"html/template"
	"strings"

	"borica/entity"
)

var formTemplate = template.Must(template.New("form").Parse(`<form id="borica-form" action="{{.Action}}" method="POST">
{{- range .Fields}}
<input type="hidden" name="{{.Key}}" value="{{.Value}}">
{{- end}}
{{- if .AutoSubmit}}
<script>document.getElementById("borica-form").submit();</script>
{{- else}}
<button type="submit">Pay</button>
{{- end}}
</form>
`))

// RenderForm writes the fields as a POST form to action. Values are HTML
// escaped. With autoSubmit the browser posts the form on load.
func RenderForm(action string, fields []entity.WireValue, autoSubmit bool) (string, error) {
	var b strings.Builder
	err := formTemplate.Execute(&b, struct {
		Action     string
		Fields     []entity.WireValue
		AutoSubmit bool
	}{action, fields, autoSubmit})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
