// Package errmap discovers the error-display elements inside a form and
// indexes them by normalized key so fields can be matched to their messages.
package errmap

import (
	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/field"
	"github.com/goliatone/go-formcheck/pkg/keys"
)

// DefaultVisibleClass marks a slot as shown. Hosts own its styling; the
// library only toggles it.
const DefaultVisibleClass = "formcheck-error-visible"

// Option configures the builder.
type Option func(*config)

type config struct {
	slotAttr     string
	visibleClass string
}

// WithSlotAttr overrides the attribute that declares an element as an error
// slot.
func WithSlotAttr(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.slotAttr = name
		}
	}
}

// WithVisibleClass overrides the class toggled to show or hide a slot.
func WithVisibleClass(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.visibleClass = name
		}
	}
}

// Build scans form's descendants for error slots and returns them keyed by
// normalized label. Slots with an empty normalized key are skipped since no
// field could ever match them. On key collision the first-registered slot
// wins, keeping behavior deterministic for page authors. Every discovered
// slot's visibility is forced off, so building is safe even when the markup
// already shows an error state. A form with no slots yields an empty map.
func Build(form *dom.Element, opts ...Option) map[string]*Slot {
	cfg := config{
		slotAttr:     field.AttrErrorFor,
		visibleClass: DefaultVisibleClass,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	slots := make(map[string]*Slot)
	for _, el := range form.Find(func(el *dom.Element) bool { return el.HasAttr(cfg.slotAttr) }) {
		label, _ := el.Attr(cfg.slotAttr)
		slot := &Slot{el: el, visibleClass: cfg.visibleClass}
		slot.Hide()

		key := keys.Normalize(label)
		if key == "" {
			continue
		}
		if _, taken := slots[key]; taken {
			continue
		}
		slots[key] = slot
	}
	return slots
}
