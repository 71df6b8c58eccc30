package report

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	htmlTemplateOnce sync.Once
	htmlTemplate     *pongo2.Template
	htmlTemplateErr  error
)

// HTML renders the report through the embedded template.
func (r Report) HTML() (string, error) {
	htmlTemplateOnce.Do(func() {
		set := pongo2.NewSet("formcheck-report", pongo2.NewFSLoader(TemplatesFS()))
		htmlTemplate, htmlTemplateErr = set.FromFile("templates/report.tmpl")
	})
	if htmlTemplateErr != nil {
		return "", fmt.Errorf("report: load template: %w", htmlTemplateErr)
	}

	out, err := htmlTemplate.Execute(pongo2.Context{"report": r})
	if err != nil {
		return "", fmt.Errorf("report: render html: %w", err)
	}
	return out, nil
}
