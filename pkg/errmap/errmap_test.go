package errmap_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/errmap"
)

func parseForm(t *testing.T, markup string) *dom.Element {
	t.Helper()
	root, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	form := root.FindFirst(func(el *dom.Element) bool { return el.Tag() == "form" })
	if form == nil {
		t.Fatal("no form in markup")
	}
	return form
}

func TestBuildIndexesByNormalizedKey(t *testing.T) {
	form := parseForm(t, `<form>
		<div data-error-field="Last Name">Last name is required</div>
		<div data-error-field="EMAIL">Enter a valid email</div>
	</form>`)

	slots := errmap.Build(form)

	got := make(map[string]string, len(slots))
	for key, slot := range slots {
		got[key] = slot.Message()
	}
	want := map[string]string{
		"lastname": "Last name is required",
		"email":    "Enter a valid email",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("slot map mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFirstWinsOnCollision(t *testing.T) {
	form := parseForm(t, `<form>
		<div id="first" data-error-field="Email">first</div>
		<div id="second" data-error-field="E-Mail">second</div>
	</form>`)

	slots := errmap.Build(form)

	slot := slots["email"]
	if slot == nil {
		t.Fatal("missing email slot")
	}
	if id, _ := slot.Element().Attr("id"); id != "first" {
		t.Fatalf("collision kept %q, want first", id)
	}
	if len(slots) != 1 {
		t.Fatalf("expected one slot, got %d", len(slots))
	}
}

func TestBuildSkipsEmptyKeys(t *testing.T) {
	form := parseForm(t, `<form>
		<div data-error-field="--- ">unreachable</div>
		<div data-error-field="">also unreachable</div>
	</form>`)

	if slots := errmap.Build(form); len(slots) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(slots))
	}
}

func TestBuildResetsVisibility(t *testing.T) {
	form := parseForm(t, `<form>
		<div class="formcheck-error-visible" data-error-field="Email">err</div>
		<div class="formcheck-error-visible" data-error-field=" ">stale</div>
	</form>`)

	errmap.Build(form)

	visible := form.Find(func(el *dom.Element) bool { return el.HasClass(errmap.DefaultVisibleClass) })
	if len(visible) != 0 {
		t.Fatalf("build left %d slots visible; reset must cover skipped slots too", len(visible))
	}
}

func TestBuildZeroSlots(t *testing.T) {
	form := parseForm(t, `<form><input name="a"></form>`)
	if slots := errmap.Build(form); len(slots) != 0 {
		t.Fatalf("expected empty map, got %d", len(slots))
	}
}

func TestSlotDefaultMessageCapture(t *testing.T) {
	form := parseForm(t, `<form><div data-error-field="Email">Original text</div></form>`)
	slot := errmap.Build(form)["email"]

	slot.SetMessage("Override")
	if got := slot.Message(); got != "Override" {
		t.Fatalf("Message = %q after SetMessage", got)
	}

	slot.SetMessage("Second override")
	slot.RestoreDefault()
	if got := slot.Message(); got != "Original text" {
		t.Fatalf("RestoreDefault yielded %q, want original", got)
	}
	if got := slot.DefaultMessage(); got != "Original text" {
		t.Fatalf("DefaultMessage = %q", got)
	}
}

func TestSlotVisibilityToggle(t *testing.T) {
	form := parseForm(t, `<form><div data-error-field="Email">err</div></form>`)
	slot := errmap.Build(form)["email"]

	if slot.Visible() {
		t.Fatal("slot visible after build")
	}
	slot.Show()
	if !slot.Visible() {
		t.Fatal("Show had no effect")
	}
	slot.Hide()
	if slot.Visible() {
		t.Fatal("Hide had no effect")
	}
}

func TestBuildCustomOptions(t *testing.T) {
	form := parseForm(t, `<form><span data-msg-for="Name" class="shown">required</span></form>`)

	slots := errmap.Build(form,
		errmap.WithSlotAttr("data-msg-for"),
		errmap.WithVisibleClass("shown"),
	)

	slot := slots["name"]
	if slot == nil {
		t.Fatal("custom slot attribute not honored")
	}
	if slot.Visible() {
		t.Fatal("custom visible class not reset at build")
	}
}
