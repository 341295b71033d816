// Package renderer renders the bank client views for a terminal.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// loginData is the data of the login template.
type loginData struct {
	Error string
}

// LoginMarkdown renders the login view, with the last login error if any.
func LoginMarkdown(loginError string) string {
	return renderTemplate("login", "templates/login.md", loginData{Error: loginError})
}

// renderTemplate renders an embedded template to a markdown string.
// Errors are rendered in place of the content.
func renderTemplate(name, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
