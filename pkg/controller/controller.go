// Package controller orchestrates validation for opted-in forms: it wires
// interaction contexts to the validator, applies the display-suppression
// policy, and aggregates verdicts at submit time.
package controller

import (
	"strings"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/errmap"
	"github.com/goliatone/go-formcheck/pkg/field"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/present"
	"github.com/goliatone/go-formcheck/pkg/validate"
)

// Option configures a Controller.
type Option func(*config)

type config struct {
	presenter *present.Presenter
	slotAttr  string
	focus     func(*dom.Element)
}

// WithPresenter injects a configured presenter. The default presenter uses
// the stock marker classes.
func WithPresenter(p *present.Presenter) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.presenter = p
		}
	}
}

// WithSlotAttr overrides the attribute declaring error slots.
func WithSlotAttr(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.slotAttr = name
		}
	}
}

// WithFocusHandler replaces how the controller moves focus to the first
// invalid field after a blocked submit. The default marks the element with a
// data-formcheck-focus attribute, clearing the marker from its siblings.
func WithFocusHandler(fn func(*dom.Element)) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.focus = fn
		}
	}
}

// FocusAttr marks the element the default focus handler selected.
const FocusAttr = "data-formcheck-focus"

// Controller drives validation for a single opted-in form. Build one per
// form via New or Setup; the error map is built once and stays fixed for the
// controller's lifetime.
type Controller struct {
	form      *dom.Element
	slots     map[string]*errmap.Slot
	presenter *present.Presenter
	focus     func(*dom.Element)
}

// New builds a controller for form, indexing its error slots and resetting
// their visibility.
func New(form *dom.Element, opts ...Option) *Controller {
	cfg := config{
		presenter: present.New(),
		slotAttr:  field.AttrErrorFor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c := &Controller{
		form:      form,
		presenter: cfg.presenter,
		focus:     cfg.focus,
	}
	if c.focus == nil {
		c.focus = c.defaultFocus
	}
	c.slots = errmap.Build(form,
		errmap.WithSlotAttr(cfg.slotAttr),
		errmap.WithVisibleClass(cfg.presenter.ErrorVisibleClass()),
	)
	return c
}

// Form returns the controlled form element.
func (c *Controller) Form() *dom.Element {
	return c.form
}

// Fields returns the form's validatable controls in document order.
func (c *Controller) Fields() []*dom.Element {
	return c.form.Find(field.IsControl)
}

// SlotFor returns the error slot matched to el by normalized key, or nil.
func (c *Controller) SlotFor(el *dom.Element) *errmap.Slot {
	key := field.Key(el)
	if key == "" {
		return nil
	}
	return c.slots[key]
}

// Validate computes el's verdict without touching any display state. Use it
// for direct validity checks; HandleEvent and Submit drive presentation.
func (c *Controller) Validate(el *dom.Element) model.Verdict {
	in := validate.Input{
		Kind:        field.KindOf(el),
		Value:       field.Value(el),
		Checked:     field.Checked(el),
		Constraints: field.Constraints(el),
	}
	return validate.Validate(in, c.SlotFor(el) != nil)
}

// HandleEvent validates el in response to an interaction context and updates
// the display per the suppression policy. The returned verdict is always the
// real one, even when display was suppressed.
//
// Input events only re-validate text-like controls and textareas; everything
// else waits for change or blur. Checkbox and radio errors are displayed
// only at submit. Generic fields whose trimmed value is empty never display
// outside submit, which keeps "required" from flashing mid-entry.
func (c *Controller) HandleEvent(ctx model.EventContext, el *dom.Element) model.Verdict {
	verdict := c.Validate(el)

	kind := field.KindOf(el)
	if ctx == model.ContextInput && !kind.TextLike() {
		return verdict
	}

	c.presenter.Present(el, c.SlotFor(el), c.shouldShow(ctx, el, kind, verdict), verdict)
	return verdict
}

func (c *Controller) shouldShow(ctx model.EventContext, el *dom.Element, kind model.FieldKind, verdict model.Verdict) bool {
	if verdict.Valid {
		return false
	}
	if ctx == model.ContextSubmit {
		return true
	}
	if kind.Checkable() {
		return false
	}
	if strings.TrimSpace(field.Value(el)) == "" {
		return false
	}
	return true
}
