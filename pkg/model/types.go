package model

import internalmodel "github.com/goliatone/go-formcheck/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	KindText     = internalmodel.KindText
	KindEmail    = internalmodel.KindEmail
	KindTel      = internalmodel.KindTel
	KindURL      = internalmodel.KindURL
	KindNumber   = internalmodel.KindNumber
	KindPassword = internalmodel.KindPassword
	KindSearch   = internalmodel.KindSearch
	KindCheckbox = internalmodel.KindCheckbox
	KindRadio    = internalmodel.KindRadio
	KindSelect   = internalmodel.KindSelect
	KindTextArea = internalmodel.KindTextArea
)

// Reason re-exports the internal failure reason enumeration.
type Reason = internalmodel.Reason

const (
	ReasonNone     = internalmodel.ReasonNone
	ReasonRequired = internalmodel.ReasonRequired
	ReasonFormat   = internalmodel.ReasonFormat
)

// EventContext re-exports the interaction context enumeration.
type EventContext = internalmodel.EventContext

const (
	ContextInput  = internalmodel.ContextInput
	ContextBlur   = internalmodel.ContextBlur
	ContextChange = internalmodel.ContextChange
	ContextSubmit = internalmodel.ContextSubmit
)

type Verdict = internalmodel.Verdict
type Constraints = internalmodel.Constraints

// Valid returns the passing verdict.
func Valid() Verdict { return internalmodel.Valid() }

// Invalid returns a failing verdict with the given reason.
func Invalid(reason Reason) Verdict { return internalmodel.Invalid(reason) }
