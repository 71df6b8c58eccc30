package controller

import (
	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/field"
)

// Setup discovers every opted-in form under root and returns one controller
// per form, in document order. Discovery is explicit: there is no
// process-wide registry, and calling Setup twice yields independent
// controllers. Forms without the opt-in marker are left untouched.
func Setup(root *dom.Element, opts ...Option) []*Controller {
	forms := root.Find(func(el *dom.Element) bool {
		return el.Tag() == "form" && el.HasAttr(field.AttrFormValidation)
	})

	controllers := make([]*Controller, 0, len(forms))
	for _, form := range forms {
		controllers = append(controllers, New(form, opts...))
	}
	return controllers
}
