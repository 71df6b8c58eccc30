package report_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formcheck/pkg/controller"
	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/report"
)

func submitReport(t *testing.T) report.Report {
	t.Helper()
	root, err := dom.ParseString(`<form id="signup" data-form-validation>
		<input type="text" name="name" value="Ada" required>
		<input type="email" name="email" required>
		<div data-error-field="Email">Email is required</div>
	</form>`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	ctrl := controller.Setup(root)[0]
	return report.New(ctrl, ctrl.Submit())
}

func TestReportText(t *testing.T) {
	text := submitReport(t).Text()

	if !strings.Contains(text, "form signup: BLOCKED") {
		t.Fatalf("missing blocked header:\n%s", text)
	}
	if !strings.Contains(text, "name") || !strings.Contains(text, "ok") {
		t.Fatalf("missing passing field line:\n%s", text)
	}
	if !strings.Contains(text, "required") || !strings.Contains(text, `"Email is required"`) {
		t.Fatalf("missing failing field detail:\n%s", text)
	}
}

func TestReportHTML(t *testing.T) {
	html, err := submitReport(t).HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}

	for _, want := range []string{"signup", "Submission blocked", "email", "Email is required"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered report missing %q:\n%s", want, html)
		}
	}
}

func TestReportValidForm(t *testing.T) {
	root, err := dom.ParseString(`<form id="ok" data-form-validation>
		<input type="text" name="name" value="Ada" required>
	</form>`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	ctrl := controller.Setup(root)[0]
	r := report.New(ctrl, ctrl.Submit())

	if !r.Valid || r.Blocked {
		t.Fatalf("report = %+v, want valid", r)
	}
	if !strings.Contains(r.Text(), "form ok: VALID") {
		t.Fatalf("text report:\n%s", r.Text())
	}
}
