package controller

import (
	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/field"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// FieldResult captures one field's outcome during a submit pass.
type FieldResult struct {
	Element *dom.Element
	Name    string
	Verdict model.Verdict
}

// SubmitResult aggregates a submit pass over the whole form. When Blocked is
// true the host must cancel its submission; FirstInvalid points at the field
// that received focus.
type SubmitResult struct {
	Valid        bool
	Blocked      bool
	FirstInvalid *dom.Element
	Fields       []FieldResult
}

// Submit validates every field with the submit context, displaying errors
// with no suppression. If anything is invalid the submission is blocked and
// focus moves to the first field marked invalid in document order; otherwise
// the host's own submission proceeds untouched.
func (c *Controller) Submit() SubmitResult {
	result := SubmitResult{Valid: true}

	for _, el := range c.Fields() {
		verdict := c.HandleEvent(model.ContextSubmit, el)
		result.Fields = append(result.Fields, FieldResult{
			Element: el,
			Name:    field.Identity(el),
			Verdict: verdict,
		})
		if !verdict.Valid {
			result.Valid = false
		}
	}

	if !result.Valid {
		result.Blocked = true
		result.FirstInvalid = c.firstInvalid()
		if result.FirstInvalid != nil {
			c.focus(result.FirstInvalid)
		}
	}
	return result
}

// RequestSubmit routes gate-button activation through the form's normal
// submit pathway so alternate triggers share the same validation gate.
func (c *Controller) RequestSubmit() SubmitResult {
	return c.Submit()
}

// GateButtons returns the elements marked as alternate submit triggers,
// under either accepted attribute spelling.
func (c *Controller) GateButtons() []*dom.Element {
	return c.form.Find(func(el *dom.Element) bool {
		return el.HasAttr(field.AttrSubmitGate) || el.HasAttr(field.AttrSubmitGateAlt)
	})
}

// firstInvalid finds the first control currently carrying the invalid marker
// in document order.
func (c *Controller) firstInvalid() *dom.Element {
	invalidClass := c.presenter.InvalidClass()
	return c.form.FindFirst(func(el *dom.Element) bool {
		return field.IsControl(el) && el.HasClass(invalidClass)
	})
}

// defaultFocus marks el with FocusAttr and clears the marker elsewhere in
// the form, keeping the single-focus invariant.
func (c *Controller) defaultFocus(el *dom.Element) {
	for _, other := range c.form.Find(func(e *dom.Element) bool { return e.HasAttr(FocusAttr) }) {
		other.RemoveAttr(FocusAttr)
	}
	el.SetAttr(FocusAttr, "")
}
