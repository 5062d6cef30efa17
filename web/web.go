// Package web holds the embedded assets for the hosted payment page.
package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed index.html.tmpl app.js
var Assets embed.FS

var page = template.Must(template.ParseFS(Assets, "index.html.tmpl"))

// PageData carries the server-side values rendered into the form page.
type PageData struct {
	PublishableKey string
	EmailPattern   string
	EmailError     string
	CompanyError   string
}

func RenderPage(w io.Writer, data PageData) error {
	return page.ExecuteTemplate(w, "index.html.tmpl", data)
}
