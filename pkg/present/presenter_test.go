package present_test

import (
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/errmap"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/present"
)

func fixture(t *testing.T, markup string) (*dom.Element, map[string]*errmap.Slot) {
	t.Helper()
	root, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	form := root.FindFirst(func(el *dom.Element) bool { return el.Tag() == "form" })
	if form == nil {
		t.Fatal("no form in markup")
	}
	return form, errmap.Build(form)
}

func TestPresentWithoutSlotTogglesMarkerOnly(t *testing.T) {
	form, _ := fixture(t, `<form><input name="phone" type="tel"></form>`)
	input := form.FindFirst(func(el *dom.Element) bool { return el.Tag() == "input" })
	p := present.New()

	p.Present(input, nil, true, model.Invalid(model.ReasonFormat))
	if !input.HasClass(present.DefaultFieldInvalidClass) {
		t.Fatal("invalid marker not applied")
	}

	p.Present(input, nil, false, model.Valid())
	if input.HasClass(present.DefaultFieldInvalidClass) {
		t.Fatal("invalid marker not cleared")
	}
}

func TestPresentShowsDefaultMessageForRequired(t *testing.T) {
	form, slots := fixture(t, `<form>
		<input name="email" type="email" data-second-error-message="Check the format">
		<div data-error-field="Email">Email is required</div>
	</form>`)
	input := form.FindFirst(func(el *dom.Element) bool { return el.Tag() == "input" })
	slot := slots["email"]
	p := present.New()

	p.Present(input, slot, true, model.Invalid(model.ReasonRequired))

	if !slot.Visible() {
		t.Fatal("slot not shown")
	}
	if got := slot.Message(); got != "Email is required" {
		t.Fatalf("required failure displayed %q, want default message", got)
	}
}

func TestPresentFormatOverride(t *testing.T) {
	form, slots := fixture(t, `<form>
		<input name="email" type="email" data-second-error-message="Check the format">
		<div data-error-field="Email">Email is required</div>
	</form>`)
	input := form.FindFirst(func(el *dom.Element) bool { return el.Tag() == "input" })
	slot := slots["email"]
	p := present.New()

	p.Present(input, slot, true, model.Invalid(model.ReasonFormat))
	if got := slot.Message(); got != "Check the format" {
		t.Fatalf("format failure displayed %q, want override", got)
	}

	// Going valid again restores the originally captured text.
	p.Present(input, slot, false, model.Valid())
	if slot.Visible() {
		t.Fatal("slot still visible after valid presentation")
	}
	if got := slot.Message(); got != "Email is required" {
		t.Fatalf("default message not restored, got %q", got)
	}
	if input.HasClass(present.DefaultFieldInvalidClass) {
		t.Fatal("invalid marker not cleared")
	}
}

func TestPresentFormatWithoutOverrideUsesDefault(t *testing.T) {
	form, slots := fixture(t, `<form>
		<input name="email" type="email">
		<div data-error-field="Email">Enter a valid email</div>
	</form>`)
	input := form.FindFirst(func(el *dom.Element) bool { return el.Tag() == "input" })
	p := present.New()

	p.Present(input, slots["email"], true, model.Invalid(model.ReasonFormat))
	if got := slots["email"].Message(); got != "Enter a valid email" {
		t.Fatalf("displayed %q, want default message", got)
	}
}

func TestPresentSanitizesOverrideMarkup(t *testing.T) {
	form, slots := fixture(t, `<form>
		<input name="email" type="email" data-second-error-message="<script>alert(1)</script>Use a work address">
		<div data-error-field="Email">Email is required</div>
	</form>`)
	input := form.FindFirst(func(el *dom.Element) bool { return el.Tag() == "input" })
	p := present.New()

	p.Present(input, slots["email"], true, model.Invalid(model.ReasonFormat))
	if got := slots["email"].Message(); got != "Use a work address" {
		t.Fatalf("sanitized override = %q", got)
	}
}

func TestPresenterClassOverrides(t *testing.T) {
	p := present.New(
		present.WithInvalidClass("is-bad"),
		present.WithVisibleClass("is-shown"),
	)
	if p.InvalidClass() != "is-bad" || p.ErrorVisibleClass() != "is-shown" {
		t.Fatalf("option overrides not applied: %q, %q", p.InvalidClass(), p.ErrorVisibleClass())
	}
}

func TestPresenterThemeTokens(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme: "dashboard",
		Tokens: map[string]string{
			present.ThemeTokenFieldInvalid: "dash-invalid",
			present.ThemeTokenErrorVisible: "dash-error-on",
		},
	}
	p := present.New(present.WithThemeConfig(cfg))
	if p.InvalidClass() != "dash-invalid" || p.ErrorVisibleClass() != "dash-error-on" {
		t.Fatalf("theme tokens not applied: %q, %q", p.InvalidClass(), p.ErrorVisibleClass())
	}

	// Missing tokens keep defaults.
	p = present.New(present.WithThemeConfig(&theme.RendererConfig{}))
	if p.InvalidClass() != present.DefaultFieldInvalidClass {
		t.Fatalf("empty theme config overrode defaults: %q", p.InvalidClass())
	}
}
