package client

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page renders the full document for s.
func Page(s State) templ.Component {
	return templ.FromGoHTML(templates.Lookup("page"), s)
}

// AppFragment renders the #app element for s: error banner, loading
// indicator, and the user list.
func AppFragment(s State) templ.Component {
	return templ.FromGoHTML(templates.Lookup("app"), s)
}
