// Package formcheck adds attribute-driven validation to parsed HTML forms.
// A form opts in with a boolean marker attribute; its fields carry constraints
// as ordinary attributes; error elements declare which field they belong to.
// Setup builds one controller per opted-in form, and the host routes its
// interaction events through the controllers.
package formcheck

import (
	"fmt"
	"io"

	"github.com/goliatone/go-formcheck/pkg/controller"
	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/present"
)

// Verdict is the outcome of one validation call.
type Verdict = model.Verdict

// Reason identifies why a field failed.
type Reason = model.Reason

// EventContext names the interaction driving a validation pass.
type EventContext = model.EventContext

// Controller drives validation for one opted-in form.
type Controller = controller.Controller

// SubmitResult aggregates a submit pass.
type SubmitResult = controller.SubmitResult

// Option configures controllers built by Setup.
type Option = controller.Option

// Setup discovers every opted-in form under root and returns one controller
// per form. There is no implicit registry; callers own the returned slice.
func Setup(root *dom.Element, opts ...Option) []*Controller {
	return controller.Setup(root, opts...)
}

// ParseAndSetup parses an HTML document and initializes its opted-in forms in
// one call. It is the simplest entry point for hosts holding raw markup.
func ParseAndSetup(r io.Reader, opts ...Option) (*dom.Element, []*Controller, error) {
	root, err := dom.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("formcheck: %w", err)
	}
	return root, Setup(root, opts...), nil
}

// WithPresenter forwards a configured presenter to every controller Setup
// builds, so marker classes can be customized in one place.
func WithPresenter(p *present.Presenter) Option {
	return controller.WithPresenter(p)
}
