// Package report summarizes a submit pass for tooling: the CLI prints it as
// text or renders it to HTML for sharing.
package report

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/controller"
)

// Field is one control's outcome in a submit pass.
type Field struct {
	Name    string
	Valid   bool
	Reason  string
	Message string
}

// Report captures the outcome of one form's submit pass.
type Report struct {
	Form    string
	Valid   bool
	Blocked bool
	Fields  []Field
}

// New builds a report from a controller and the submit result it produced.
// The displayed slot message is included for fields that failed.
func New(ctrl *controller.Controller, result controller.SubmitResult) Report {
	report := Report{
		Form:    formName(ctrl),
		Valid:   result.Valid,
		Blocked: result.Blocked,
	}

	for _, fr := range result.Fields {
		entry := Field{
			Name:   fr.Name,
			Valid:  fr.Verdict.Valid,
			Reason: string(fr.Verdict.Reason),
		}
		if entry.Name == "" {
			entry.Name = "(unnamed)"
		}
		if !fr.Verdict.Valid {
			if slot := ctrl.SlotFor(fr.Element); slot != nil {
				entry.Message = strings.TrimSpace(slot.Message())
			}
		}
		report.Fields = append(report.Fields, entry)
	}
	return report
}

// Text renders the report as aligned plain text.
func (r Report) Text() string {
	var b strings.Builder
	status := "VALID"
	if !r.Valid {
		status = "BLOCKED"
	}
	fmt.Fprintf(&b, "form %s: %s\n", r.Form, status)

	width := 0
	for _, f := range r.Fields {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	for _, f := range r.Fields {
		mark := "ok"
		if !f.Valid {
			mark = f.Reason
		}
		fmt.Fprintf(&b, "  %-*s  %s", width, f.Name, mark)
		if f.Message != "" {
			fmt.Fprintf(&b, "  %q", f.Message)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formName(ctrl *controller.Controller) string {
	form := ctrl.Form()
	for _, attr := range []string{"name", "id", "data-name"} {
		if value, ok := form.Attr(attr); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return "(anonymous form)"
}
