package field

// Attribute names forming the public markup contract. Forms opt in with
// AttrFormValidation; error elements declare the field they belong to with
// AttrErrorFor; the remaining attributes configure individual fields or mark
// alternate submit triggers.
const (
	// AttrFormValidation is the form-level boolean opt-in marker.
	AttrFormValidation = "data-form-validation"

	// AttrErrorFor holds the raw label string naming the field an error
	// element belongs to. The label is matched against field identities
	// after normalization.
	AttrErrorFor = "data-error-field"

	// AttrSecondMessage holds alternate error text shown for format
	// failures only; required failures keep the slot's default message.
	AttrSecondMessage = "data-second-error-message"

	// AttrBusinessEmail restricts an email field to non-consumer domains.
	AttrBusinessEmail = "data-business-email-only"

	// AttrSubmitGate and AttrSubmitGateAlt are the two accepted spellings
	// marking an element as an alternate submit trigger.
	AttrSubmitGate    = "data-submit-button"
	AttrSubmitGateAlt = "data-form-submit"

	// AttrDataName is the fallback identity attribute checked after name
	// and id.
	AttrDataName = "data-name"
)
