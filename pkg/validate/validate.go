// Package validate holds the field validation policy: given a control's kind,
// current state, and parsed constraints, it produces a verdict. The function
// is pure; presentation and event handling live elsewhere.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// Input carries everything a verdict needs about one field. Controllers
// assemble it from the live element; tests build it directly.
type Input struct {
	Kind        model.FieldKind
	Value       string
	Checked     bool
	Constraints model.Constraints
}

// Validate applies the validation policy to one field.
//
// A field counts as required when it carries the native required marker or
// when a matching error slot exists: the presence of a dedicated error message
// implies the field is mandatory. That convention is deliberate, not a
// browser default.
//
// Whitespace-only values are treated as empty everywhere.
func Validate(in Input, hasSlot bool) model.Verdict {
	required := in.Constraints.Required || hasSlot

	if in.Kind.Checkable() {
		if !required || in.Checked {
			return model.Valid()
		}
		return model.Invalid(model.ReasonRequired)
	}

	value := strings.TrimSpace(in.Value)
	if value == "" {
		if required {
			return model.Invalid(model.ReasonRequired)
		}
		return model.Valid()
	}

	if !formatOK(in.Kind, value, in.Constraints) {
		return model.Invalid(model.ReasonFormat)
	}
	return model.Valid()
}

// formatOK runs the type-specific checks in fixed order, short-circuiting on
// the first failure: type shape, then length bounds, then the author pattern.
// The maximum length is re-checked here even though hosts usually enforce it
// natively while typing.
func formatOK(kind model.FieldKind, value string, cons model.Constraints) bool {
	switch kind {
	case model.KindTel:
		if !telOK(value) {
			return false
		}
	case model.KindEmail:
		if !emailOK(value, cons.BusinessEmailOnly) {
			return false
		}
	case model.KindURL:
		if !urlOK(value) {
			return false
		}
	case model.KindNumber:
		if !numberOK(value, cons) {
			return false
		}
	}

	length := utf8.RuneCountInString(value)
	if cons.MinLength != nil && length < *cons.MinLength {
		return false
	}
	if cons.MaxLength != nil && length > *cons.MaxLength {
		return false
	}

	return patternOK(value, cons.Pattern)
}
