// Package fieldbuild constructs validated fields: it resolves the kind
// against the registry, sanitizes the identifier, merges synthesized,
// example-derived, and caller-supplied attributes in ascending priority, and
// guarantees every required attribute is present on the result.
package fieldbuild

import (
	"fmt"
	"strings"

	"github.com/tobidsn/anticms-schemagen/internal/synth"
	"github.com/tobidsn/anticms-schemagen/pkg/registry"
	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// Example scoring weights. Ties keep the first example in input order.
const (
	scoreNameContains = 10
	scoreNameExact    = 15
	scoreContextMatch = 8
	scoreOptionMatch  = 5
)

// Options carries caller-supplied overrides. Attributes win over both
// synthesized and example values; Multilanguage is reserved and attached to
// the field itself, never merged into the attribute map.
type Options struct {
	Attributes    map[string]any
	Multilanguage *bool
}

// Build constructs a field of the given kind. It fails with
// schema.ErrInvalidFieldName when name or label is empty or the name
// sanitizes away entirely, and with schema.ErrUnsupportedFieldKind when the
// registry does not know the kind.
func Build(name, label string, kind schema.FieldKind, opts Options, reg *registry.Registry, sectionContext string) (schema.Field, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(label) == "" {
		return schema.Field{}, &schema.InvalidFieldNameError{Name: name}
	}

	def, err := reg.Lookup(kind)
	if err != nil {
		return schema.Field{}, err
	}

	sanitized := SanitizeName(name)
	if sanitized == "" {
		return schema.Field{}, &schema.InvalidFieldNameError{Name: name}
	}

	context := strings.ToLower(strings.TrimSpace(sectionContext))

	attrs := synth.Synthesize(sanitized, kind, context)
	if example, ok := bestExample(def.Examples, sanitized, context, opts); ok {
		mergeExample(attrs, example, sanitized)
	}
	for key, value := range opts.Attributes {
		if key == "multilanguage" {
			continue
		}
		attrs[key] = schema.CloneValue(value)
	}

	if err := fillRequired(attrs, def); err != nil {
		return schema.Field{}, err
	}

	if kind == schema.KindRepeater || kind == schema.KindGroup {
		if err := validateNested(attrs["fields"], reg); err != nil {
			return schema.Field{}, err
		}
	}

	field := schema.Field{
		Name:       sanitized,
		Label:      label,
		Kind:       kind,
		Attributes: attrs,
	}
	if opts.Multilanguage != nil {
		value := *opts.Multilanguage
		field.Multilanguage = &value
	}
	return field, nil
}

// bestExample scores the registry examples against the field under
// construction. A zero-score board still yields the first example, preserving
// the observed upstream tie-break.
func bestExample(examples []registry.Example, sanitized, context string, opts Options) (registry.Example, bool) {
	if len(examples) == 0 {
		return registry.Example{}, false
	}

	best := 0
	bestIdx := 0
	for idx, example := range examples {
		score := scoreExample(example, sanitized, context, opts)
		if score > best {
			best = score
			bestIdx = idx
		}
	}
	return examples[bestIdx], true
}

// scoreExample rates one example against the field under construction. The
// name checks are cumulative: an exact match also passes the contains check
// and scores both.
func scoreExample(example registry.Example, sanitized, context string, opts Options) int {
	score := 0
	name := strings.ToLower(example.Name)
	if strings.Contains(name, sanitized) {
		score += scoreNameContains
	}
	if name == sanitized {
		score += scoreNameExact
	}
	if context != "" && (strings.Contains(name, context) || strings.Contains(strings.ToLower(example.Label), context)) {
		score += scoreContextMatch
	}
	score += optionMatches(example, opts) * scoreOptionMatch
	score += len(example.Attributes)
	return score
}

func optionMatches(example registry.Example, opts Options) int {
	matches := 0
	if want, ok := stringValue(opts.Attributes["type"]); ok {
		if have, ok := stringValue(example.Attributes["type"]); ok && want == have {
			matches++
		}
	}
	wantAccept := stringSlice(opts.Attributes["accept"])
	haveAccept := stringSlice(example.Attributes["accept"])
	for _, want := range wantAccept {
		for _, have := range haveAccept {
			if want == have {
				matches++
			}
		}
	}
	return matches
}

// mergeExample copies example attributes over the synthesized map. For
// placeholder and caption an existing synthesized value is only replaced when
// the example's value mentions the field name itself; generic example copy
// loses to the name-aware synthesized default.
func mergeExample(attrs map[string]any, example registry.Example, sanitized string) {
	for key, value := range example.Attributes {
		if key == "placeholder" || key == "caption" {
			if _, exists := attrs[key]; exists {
				text, _ := stringValue(value)
				if !strings.Contains(strings.ToLower(text), sanitized) {
					continue
				}
			}
		}
		attrs[key] = schema.CloneValue(value)
	}
}

// fillRequired injects a value for every required attribute still absent:
// first from the kind's example defaults, then from the hard-coded fallback
// table. A required attribute with neither is a registry misconfiguration.
func fillRequired(attrs map[string]any, def registry.Definition) error {
	for _, required := range def.Required {
		if _, ok := attrs[required]; ok {
			continue
		}
		if value, ok := def.ExampleDefault(required); ok {
			attrs[required] = value
			continue
		}
		value, ok := fallbackDefault(required)
		if !ok {
			return &schema.MissingRequiredAttributeError{Kind: def.Kind, Attribute: required}
		}
		attrs[required] = value
	}
	return nil
}

func fallbackDefault(attr string) (any, bool) {
	switch attr {
	case "type":
		return "text", true
	case "accept":
		return []any{"image"}, true
	case "options":
		return []any{
			map[string]any{"label": "Option 1", "value": "option_1"},
			map[string]any{"label": "Option 2", "value": "option_2"},
		}, true
	case "fields":
		return []schema.Field{}, true
	case "filter":
		return map[string]any{
			"post_type":   []any{"post"},
			"post_status": "publish",
		}, true
	case "api_prefix":
		return "/api/v1/", true
	case "columns":
		return []any{
			map[string]any{"name": "column_1", "label": "Column 1", "type": "input"},
			map[string]any{"name": "column_2", "label": "Column 2", "type": "input"},
		}, true
	default:
		return nil, false
	}
}

// validateNested checks every nested field entry's kind against the
// registry, failing fast on the first unsupported kind.
func validateNested(value any, reg *registry.Registry) error {
	switch nested := value.(type) {
	case nil:
		return nil
	case []schema.Field:
		for _, field := range nested {
			if _, err := reg.Lookup(field.Kind); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, entry := range nested {
			if err := validateNestedEntry(entry, reg); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("fieldbuild: nested fields must be a field list, got %T", value)
	}
}

func validateNestedEntry(entry any, reg *registry.Registry) error {
	switch nested := entry.(type) {
	case schema.Field:
		_, err := reg.Lookup(nested.Kind)
		return err
	case map[string]any:
		kind, _ := stringValue(nested["field"])
		_, err := reg.Lookup(schema.FieldKind(kind))
		return err
	default:
		return fmt.Errorf("fieldbuild: nested field entry must be a field, got %T", entry)
	}
}

func stringValue(value any) (string, bool) {
	str, ok := value.(string)
	return str, ok
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}
