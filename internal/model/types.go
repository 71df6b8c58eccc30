package model

// FieldKind classifies a form control for validation purposes. Kinds map to
// the host markup's control types: input type attributes plus the select and
// textarea tags. Unknown or missing input types fall back to KindText so the
// generic text rules apply.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindTel      FieldKind = "tel"
	KindURL      FieldKind = "url"
	KindNumber   FieldKind = "number"
	KindPassword FieldKind = "password"
	KindSearch   FieldKind = "search"
	KindCheckbox FieldKind = "checkbox"
	KindRadio    FieldKind = "radio"
	KindSelect   FieldKind = "select"
	KindTextArea FieldKind = "textarea"
)

// Checkable reports whether the kind carries its state as checked/unchecked
// rather than as a text value.
func (k FieldKind) Checkable() bool {
	return k == KindCheckbox || k == KindRadio
}

// TextLike reports whether the kind accepts live typing and therefore
// re-validates on the input context. Other kinds wait for change or blur.
func (k FieldKind) TextLike() bool {
	switch k {
	case KindText, KindEmail, KindTel, KindURL, KindPassword, KindSearch, KindTextArea:
		return true
	default:
		return false
	}
}

// Reason identifies why a field failed validation. Both values are expected,
// user-facing outcomes; there is no system-error reason.
type Reason string

const (
	ReasonNone     Reason = "none"
	ReasonRequired Reason = "required"
	ReasonFormat   Reason = "format"
)

// Verdict is the result of a single validation call. It is produced per call
// and consumed immediately; nothing persists it.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason Reason `json:"reason"`
}

// Valid returns the passing verdict.
func Valid() Verdict {
	return Verdict{Valid: true, Reason: ReasonNone}
}

// Invalid returns a failing verdict with the given reason.
func Invalid(reason Reason) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

// EventContext names the interaction that triggered a validation pass.
type EventContext string

const (
	ContextInput  EventContext = "input"
	ContextBlur   EventContext = "blur"
	ContextChange EventContext = "change"
	ContextSubmit EventContext = "submit"
)

// Constraints is the explicit configuration record parsed once from a field's
// attributes. Pointer members distinguish "not declared" from zero values.
type Constraints struct {
	Kind               FieldKind
	Required           bool
	Min                *float64
	Max                *float64
	MinLength          *int
	MaxLength          *int
	Pattern            string
	BusinessEmailOnly  bool
	SecondErrorMessage string
}
