package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	formcheck "github.com/goliatone/go-formcheck"
	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/export"
	"github.com/goliatone/go-formcheck/pkg/field"
	"github.com/goliatone/go-formcheck/pkg/keys"
	"github.com/goliatone/go-formcheck/pkg/prompt"
	"github.com/goliatone/go-formcheck/pkg/report"
)

type runOptions struct {
	Input        string `validate:"required"`
	Values       string
	Format       string `validate:"oneof=text html"`
	Output       string
	SchemaOutput string
	Interactive  bool
}

// valuesFile is the YAML document feeding field values into a run. Forms are
// matched by normalized name/id; field entries by normalized identity.
type valuesFile struct {
	Forms map[string]formValues `yaml:"forms"`
}

type formValues struct {
	Values  map[string]string `yaml:"values"`
	Checked []string          `yaml:"checked"`
}

func main() {
	input := flag.String("input", "", "HTML page to validate")
	values := flag.String("values", "", "YAML file with field values (optional)")
	format := flag.String("format", "text", "report format: text or html")
	output := flag.String("output", "", "report file (stdout if empty)")
	schemaOut := flag.String("export-schema", "", "write the forms' constraint schema as OpenAPI JSON")
	interactive := flag.Bool("interactive", false, "prompt for field values")
	flag.Parse()

	opts := runOptions{
		Input:        strings.TrimSpace(*input),
		Values:       strings.TrimSpace(*values),
		Format:       strings.TrimSpace(*format),
		Output:       strings.TrimSpace(*output),
		SchemaOutput: strings.TrimSpace(*schemaOut),
		Interactive:  *interactive,
	}
	if err := validator.New().Struct(opts); err != nil {
		log.Fatalf("invalid options: %v", err)
	}

	page, err := os.Open(opts.Input)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer page.Close()

	_, controllers, err := formcheck.ParseAndSetup(page)
	if err != nil {
		log.Fatalf("parse page: %v", err)
	}
	if len(controllers) == 0 {
		log.Fatalf("no opted-in forms found in %s", opts.Input)
	}

	if opts.Values != "" {
		if err := applyValuesFile(controllers, opts.Values); err != nil {
			log.Fatalf("apply values: %v", err)
		}
	}
	if opts.Interactive {
		if err := promptValues(context.Background(), controllers, prompt.NewSurveyDriver()); err != nil {
			log.Fatalf("interactive entry: %v", err)
		}
	}

	blocked := false
	var rendered strings.Builder
	for _, ctrl := range controllers {
		result := ctrl.Submit()
		if result.Blocked {
			blocked = true
		}
		rep := report.New(ctrl, result)
		switch opts.Format {
		case "html":
			html, err := rep.HTML()
			if err != nil {
				log.Fatalf("render report: %v", err)
			}
			rendered.WriteString(html)
		default:
			rendered.WriteString(rep.Text())
		}
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(rendered.String()), 0o644); err != nil {
			log.Fatalf("write report: %v", err)
		}
	} else {
		fmt.Print(rendered.String())
	}

	if opts.SchemaOutput != "" {
		if err := writeSchemas(controllers, opts.SchemaOutput); err != nil {
			log.Fatalf("export schema: %v", err)
		}
	}

	if blocked {
		os.Exit(1)
	}
}

// applyValuesFile loads the YAML values document and writes its entries into
// the matching forms' controls.
func applyValuesFile(controllers []*formcheck.Controller, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc valuesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for formName, entries := range doc.Forms {
		ctrl := matchController(controllers, formName)
		if ctrl == nil {
			return fmt.Errorf("no form matches %q", formName)
		}
		for rawKey, value := range entries.Values {
			el := matchField(ctrl, rawKey)
			if el == nil {
				return fmt.Errorf("form %q has no field matching %q", formName, rawKey)
			}
			field.SetValue(el, value)
		}
		for _, rawKey := range entries.Checked {
			el := matchField(ctrl, rawKey)
			if el == nil {
				return fmt.Errorf("form %q has no field matching %q", formName, rawKey)
			}
			field.SetChecked(el, true)
		}
	}
	return nil
}

func matchController(controllers []*formcheck.Controller, name string) *formcheck.Controller {
	want := keys.Normalize(name)
	for _, ctrl := range controllers {
		form := ctrl.Form()
		for _, attr := range []string{"name", "id", field.AttrDataName} {
			if value, ok := form.Attr(attr); ok && keys.Normalize(value) == want {
				return ctrl
			}
		}
	}
	return nil
}

func matchField(ctrl *formcheck.Controller, rawKey string) *dom.Element {
	want := keys.Normalize(rawKey)
	if want == "" {
		return nil
	}
	for _, el := range ctrl.Fields() {
		if field.Key(el) == want {
			return el
		}
	}
	return nil
}

// promptValues walks every control and asks for its value, confirming
// checkable controls instead of reading text.
func promptValues(ctx context.Context, controllers []*formcheck.Controller, driver prompt.Driver) error {
	for _, ctrl := range controllers {
		for _, el := range ctrl.Fields() {
			name := field.Identity(el)
			if name == "" {
				continue
			}
			if field.KindOf(el).Checkable() {
				checked, err := driver.Confirm(ctx, prompt.ConfirmConfig{
					Message: fmt.Sprintf("Check %q?", name),
					Default: field.Checked(el),
				})
				if err != nil {
					return err
				}
				field.SetChecked(el, checked)
				continue
			}
			value, err := driver.Input(ctx, prompt.InputConfig{
				Message: fmt.Sprintf("Value for %q", name),
				Default: field.Value(el),
			})
			if err != nil {
				return err
			}
			field.SetValue(el, value)
		}
	}
	return nil
}

// writeSchemas exports one OpenAPI object schema per form, keyed by form
// name, as a single JSON document.
func writeSchemas(controllers []*formcheck.Controller, path string) error {
	schemas := make(map[string]json.RawMessage, len(controllers))
	for i, ctrl := range controllers {
		payload, err := export.FormSchema(ctrl).MarshalJSON()
		if err != nil {
			return err
		}
		schemas[schemaKey(ctrl, i)] = payload
	}
	payload, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func schemaKey(ctrl *formcheck.Controller, index int) string {
	form := ctrl.Form()
	for _, attr := range []string{"name", "id", field.AttrDataName} {
		if value, ok := form.Attr(attr); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return fmt.Sprintf("form-%d", index)
}
