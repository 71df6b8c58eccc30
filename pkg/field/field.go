// Package field reads the attribute surface of form controls: identity,
// kind classification, current value, and the constraint record driving
// validation. It is the only package that interprets raw attributes; the
// validator consumes the parsed records.
package field

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/keys"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// Identity returns the raw identifier matching a field to its error slot,
// checking name, then id, then data-name. Empty when none is set.
func Identity(el *dom.Element) string {
	for _, attr := range []string{"name", "id", AttrDataName} {
		if value, ok := el.Attr(attr); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// Key returns the normalized identity used for error-map lookups.
func Key(el *dom.Element) string {
	return keys.Normalize(Identity(el))
}

// KindOf classifies a control element. Unknown input types and bare inputs
// count as text so the generic rules apply.
func KindOf(el *dom.Element) model.FieldKind {
	switch el.Tag() {
	case "textarea":
		return model.KindTextArea
	case "select":
		return model.KindSelect
	case "input":
		raw, _ := el.Attr("type")
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "checkbox":
			return model.KindCheckbox
		case "radio":
			return model.KindRadio
		case "email":
			return model.KindEmail
		case "tel":
			return model.KindTel
		case "url":
			return model.KindURL
		case "number":
			return model.KindNumber
		case "password":
			return model.KindPassword
		case "search":
			return model.KindSearch
		default:
			return model.KindText
		}
	}
	return model.KindText
}

// IsControl reports whether el is a form control that participates in
// validation. Buttons and submit/reset/hidden inputs are excluded.
func IsControl(el *dom.Element) bool {
	switch el.Tag() {
	case "select", "textarea":
		return true
	case "input":
		raw, _ := el.Attr("type")
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "submit", "button", "reset", "hidden", "image":
			return false
		default:
			return true
		}
	default:
		return false
	}
}

// Constraints parses the explicit configuration record from el's attributes.
// Malformed numeric attributes are ignored so one bad value does not disable
// the rest of the field's rules.
func Constraints(el *dom.Element) model.Constraints {
	cons := model.Constraints{
		Kind:              KindOf(el),
		Required:          el.HasAttr("required"),
		BusinessEmailOnly: el.HasAttr(AttrBusinessEmail),
	}

	if raw, ok := el.Attr("min"); ok {
		if value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			cons.Min = &value
		}
	}
	if raw, ok := el.Attr("max"); ok {
		if value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			cons.Max = &value
		}
	}
	if raw, ok := el.Attr("minlength"); ok {
		if value, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			cons.MinLength = &value
		}
	}
	if raw, ok := el.Attr("maxlength"); ok {
		if value, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			cons.MaxLength = &value
		}
	}
	if raw, ok := el.Attr("pattern"); ok {
		cons.Pattern = raw
	}
	if raw, ok := el.Attr(AttrSecondMessage); ok {
		cons.SecondErrorMessage = raw
	}
	return cons
}

// Value returns the control's current value: the selected option for selects,
// the text content for textareas, and the value attribute otherwise.
func Value(el *dom.Element) string {
	switch el.Tag() {
	case "textarea":
		return el.Text()
	case "select":
		selected := el.FindFirst(func(opt *dom.Element) bool {
			return opt.Tag() == "option" && opt.HasAttr("selected")
		})
		if selected == nil {
			return ""
		}
		if value, ok := selected.Attr("value"); ok {
			return value
		}
		return strings.TrimSpace(selected.Text())
	default:
		value, _ := el.Attr("value")
		return value
	}
}

// SetValue writes a value into the control using the same representation
// Value reads.
func SetValue(el *dom.Element, value string) {
	switch el.Tag() {
	case "textarea":
		el.SetText(value)
	case "select":
		options := el.Find(func(opt *dom.Element) bool { return opt.Tag() == "option" })
		for _, opt := range options {
			optValue, ok := opt.Attr("value")
			if !ok {
				optValue = strings.TrimSpace(opt.Text())
			}
			if optValue == value {
				opt.SetAttr("selected", "")
			} else {
				opt.RemoveAttr("selected")
			}
		}
	default:
		el.SetAttr("value", value)
	}
}

// Checked reports the checked state of a checkbox or radio control.
func Checked(el *dom.Element) bool {
	return el.HasAttr("checked")
}

// SetChecked toggles the checked state of a checkbox or radio control.
func SetChecked(el *dom.Element, checked bool) {
	if checked {
		el.SetAttr("checked", "")
		return
	}
	el.RemoveAttr("checked")
}
