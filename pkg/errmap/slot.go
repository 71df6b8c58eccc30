package errmap

import "github.com/goliatone/go-formcheck/pkg/dom"

// Slot pairs an error-display element with its captured default message.
// The default is captured lazily the first time the message is touched, so a
// later override never loses the original author text.
type Slot struct {
	el           *dom.Element
	visibleClass string
	defaultMsg   string
	captured     bool
}

// Element returns the underlying error element.
func (s *Slot) Element() *dom.Element {
	return s.el
}

// Show toggles the visibility marker on.
func (s *Slot) Show() {
	s.el.AddClass(s.visibleClass)
}

// Hide toggles the visibility marker off.
func (s *Slot) Hide() {
	s.el.RemoveClass(s.visibleClass)
}

// Visible reports whether the visibility marker is currently on.
func (s *Slot) Visible() bool {
	return s.el.HasClass(s.visibleClass)
}

// Message returns the currently displayed message text.
func (s *Slot) Message() string {
	return s.el.Text()
}

// SetMessage replaces the displayed message, capturing the default first.
func (s *Slot) SetMessage(text string) {
	s.rememberDefault()
	s.el.SetText(text)
}

// RestoreDefault puts the captured default message back.
func (s *Slot) RestoreDefault() {
	s.rememberDefault()
	s.el.SetText(s.defaultMsg)
}

// DefaultMessage returns the default message, capturing it if needed.
func (s *Slot) DefaultMessage() string {
	s.rememberDefault()
	return s.defaultMsg
}

func (s *Slot) rememberDefault() {
	if s.captured {
		return
	}
	s.defaultMsg = s.el.Text()
	s.captured = true
}
