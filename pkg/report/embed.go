package report

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS returns the embedded report template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
