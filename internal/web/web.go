// Package web holds the embedded page templates and the small pieces of UI
// state that every form shares.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"slices"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageData is embedded by every page view model.
type PageData struct {
	Title string
	Page  string
	Error string // banner shown above the form
}

// AcceptedPage confirms a submission the gateway accepted.
type AcceptedPage struct {
	PageData
	Heading   string
	ReceiptID string
}

var funcs = template.FuncMap{
	"contains": slices.Contains[[]string, string],
	"remaining": func(limit int, s string) int {
		return limit - len([]rune(s))
	},
	"runes": func(s string) int {
		return len([]rune(s))
	},
}

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// MustTemplates is Templates for process start-up.
func MustTemplates() *template.Template {
	tmpl, err := Templates()
	if err != nil {
		panic(err)
	}
	return tmpl
}
