// Package export emits a form's parsed constraint set as an OpenAPI schema
// so server-side code can mirror the page's validation rules. The mapping is
// one object schema per form: each control becomes a property carrying its
// type, format, bounds, and pattern, with required membership matching the
// validator's policy (native required or a dedicated error slot).
package export

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcheck/pkg/controller"
	"github.com/goliatone/go-formcheck/pkg/field"
	"github.com/goliatone/go-formcheck/pkg/model"
)

// FormSchema builds an object schema describing every validatable control in
// the controller's form. Controls without an identity are skipped since
// nothing could address them server-side.
func FormSchema(ctrl *controller.Controller) *openapi3.Schema {
	schema := &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: make(openapi3.Schemas),
	}

	for _, el := range ctrl.Fields() {
		name := field.Identity(el)
		if name == "" {
			continue
		}
		if _, exists := schema.Properties[name]; exists {
			continue
		}

		cons := field.Constraints(el)
		schema.Properties[name] = openapi3.NewSchemaRef("", propertySchema(cons))

		if cons.Required || ctrl.SlotFor(el) != nil {
			schema.Required = append(schema.Required, name)
		}
	}
	return schema
}

func propertySchema(cons model.Constraints) *openapi3.Schema {
	prop := &openapi3.Schema{}

	switch cons.Kind {
	case model.KindCheckbox:
		prop.Type = &openapi3.Types{openapi3.TypeBoolean}
		return prop
	case model.KindNumber:
		prop.Type = &openapi3.Types{openapi3.TypeNumber}
		prop.Min = cons.Min
		prop.Max = cons.Max
		return prop
	}

	prop.Type = &openapi3.Types{openapi3.TypeString}
	switch cons.Kind {
	case model.KindEmail:
		prop.Format = "email"
	case model.KindTel:
		prop.Format = "tel"
	case model.KindURL:
		prop.Format = "uri"
	}

	if cons.MinLength != nil && *cons.MinLength > 0 {
		prop.MinLength = uint64(*cons.MinLength)
	}
	if cons.MaxLength != nil && *cons.MaxLength >= 0 {
		max := uint64(*cons.MaxLength)
		prop.MaxLength = &max
	}
	prop.Pattern = cons.Pattern
	return prop
}
