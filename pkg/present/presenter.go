// Package present turns validation verdicts into visible state: the field's
// invalid marker, the error slot's visibility, and the displayed message
// text. Only this package mutates presentation state, and only in response
// to a verdict.
package present

import (
	"strings"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/errmap"
	"github.com/goliatone/go-formcheck/pkg/field"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// Presenter applies verdicts to the page.
type Presenter struct {
	invalidClass string
	visibleClass string
}

// New constructs a Presenter applying any provided options.
func New(opts ...Option) *Presenter {
	cfg := config{
		invalidClass: DefaultFieldInvalidClass,
		visibleClass: DefaultErrorVisibleClass,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Presenter{
		invalidClass: cfg.invalidClass,
		visibleClass: cfg.visibleClass,
	}
}

// InvalidClass returns the class marking a field invalid.
func (p *Presenter) InvalidClass() string {
	return p.invalidClass
}

// ErrorVisibleClass returns the class marking an error slot visible. The
// error-map builder uses it so both layers toggle the same marker.
func (p *Presenter) ErrorVisibleClass() string {
	return p.visibleClass
}

// Present applies a verdict to one field and its slot, if any.
//
// Without a slot only the field's invalid marker is toggled. With a slot and
// show on, a format failure displays the field's secondary message override
// when one is declared; every other reason, required included, displays the
// slot's default message. With show off the marker and slot reset and the
// default message is restored so a stale override never sticks.
func (p *Presenter) Present(el *dom.Element, slot *errmap.Slot, show bool, verdict model.Verdict) {
	if show {
		el.AddClass(p.invalidClass)
	} else {
		el.RemoveClass(p.invalidClass)
	}

	if slot == nil {
		return
	}

	if !show {
		slot.Hide()
		slot.RestoreDefault()
		return
	}

	slot.Show()
	if verdict.Reason == model.ReasonFormat {
		raw, _ := el.Attr(field.AttrSecondMessage)
		if override := strings.TrimSpace(raw); override != "" {
			slot.SetMessage(sanitizeMessage(override))
			return
		}
	}
	slot.RestoreDefault()
}
