// Package compose turns a classified section into its concrete field list.
// Field construction is delegated to fieldbuild; per-field failures degrade
// to a best-effort fallback field and never abort the section, and sections
// the composer cannot make sense of degrade to a minimal generic section.
package compose

import (
	"errors"
	"strings"

	"github.com/gertd/go-pluralize"

	"github.com/tobidsn/anticms-schemagen/internal/classify"
	"github.com/tobidsn/anticms-schemagen/internal/fieldbuild"
	"github.com/tobidsn/anticms-schemagen/pkg/content"
	"github.com/tobidsn/anticms-schemagen/pkg/registry"
	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// Collection reference bounds.
const (
	postCollectionMin = 1
	postCollectionMax = 12
)

// Repeater bounds for synthesized repeater sections.
const (
	sectionRepeaterMin = 1
	sectionRepeaterMax = 8
)

// Logger receives reports about registry misconfigurations surfaced during
// section synthesis. It is a subset of the generator's leveled logger, so
// that logger plugs in directly.
type Logger interface {
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any) {}

// Option customises a Composer.
type Option func(*Composer)

// WithLogger wires the misconfiguration reporting hook.
func WithLogger(logger Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Composer builds sections against one registry. It is stateless beyond the
// injected dependencies and safe for concurrent use.
type Composer struct {
	registry *registry.Registry
	singular *pluralize.Client
	logger   Logger
}

// New returns a composer bound to the supplied registry.
func New(reg *registry.Registry, options ...Option) *Composer {
	c := &Composer{
		registry: reg,
		singular: pluralize.NewClient(),
		logger:   noopLogger{},
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Section emits the schema section for a classified content section. The
// returned section carries no order; the template assigns one on append.
func (c *Composer) Section(section content.Section, analysis classify.Analysis) schema.Section {
	out := schema.Section{
		KeyName: sectionKey(section.Name),
		Label:   sectionLabel(section),
	}

	if len(section.Elements) == 0 {
		out.Fields = c.genericFields(section)
		return out
	}

	switch analysis.Archetype {
	case classify.ArchetypePostCollection:
		out.Fields = c.postCollectionFields(section)
	case classify.ArchetypeRepeater:
		out.Fields = c.repeaterFields(section, analysis)
	case classify.ArchetypeGroup:
		out.Fields = c.groupFields(section, analysis)
	case classify.ArchetypeMediaGallery:
		out.Fields = c.mediaGalleryFields(section)
	case classify.ArchetypeForm:
		out.Fields = c.formFields(section)
	case classify.ArchetypeSingle:
		out.Fields = c.singleFields(section)
	default:
		out.Fields = c.genericFields(section)
	}

	if len(out.Fields) == 0 {
		out.Fields = c.genericFields(section)
	}
	return out
}

// postCollectionFields emits a status toggle and one reference field pointed
// at the external collection named by the section.
func (c *Composer) postCollectionFields(section content.Section) []schema.Field {
	fields := []schema.Field{c.statusToggle(section.Name)}

	postType := c.singular.Singular(sectionKey(section.Name))
	reference := c.buildOrFallback(section.Name, sectionLabel(section), schema.KindPostRelated, fieldbuild.Options{
		Attributes: map[string]any{
			"min": postCollectionMin,
			"max": postCollectionMax,
			"filter": map[string]any{
				"post_type":   []any{postType},
				"post_status": "publish",
			},
		},
	}, section.Name)
	return append(fields, reference)
}

// repeaterFields wraps the per-element sub-fields in one repeater named after
// the section, preceded by a status toggle.
func (c *Composer) repeaterFields(section content.Section, analysis classify.Analysis) []schema.Field {
	fields := []schema.Field{c.statusToggle(section.Name)}

	repeater := c.buildOrFallback(section.Name, sectionLabel(section), schema.KindRepeater, fieldbuild.Options{
		Attributes: map[string]any{
			"min":    sectionRepeaterMin,
			"max":    sectionRepeaterMax,
			"fields": c.suggestedFields(analysis, section.Name),
		},
	}, section.Name)
	return append(fields, repeater)
}

// groupFields wraps the per-element sub-fields in one group, preceded by a
// status toggle.
func (c *Composer) groupFields(section content.Section, analysis classify.Analysis) []schema.Field {
	fields := []schema.Field{c.statusToggle(section.Name)}

	group := c.buildOrFallback(section.Name, sectionLabel(section), schema.KindGroup, fieldbuild.Options{
		Attributes: map[string]any{
			"fields": c.suggestedFields(analysis, section.Name),
		},
	}, section.Name)
	return append(fields, group)
}

// mediaGalleryFields emits a title plus a gallery repeater when an image grid
// was detected and a carousel repeater when carousel cues were detected. The
// two are independent and may coexist. No leading status toggle: parity with
// the observed source behavior.
func (c *Composer) mediaGalleryFields(section content.Section) []schema.Field {
	fields := []schema.Field{
		c.buildOrFallback("section_title", "Section Title", schema.KindInput, fieldbuild.Options{}, section.Name),
	}

	if section.Hints.ImageGrid {
		fields = append(fields, c.buildOrFallback("gallery", "Gallery", schema.KindRepeater, fieldbuild.Options{
			Attributes: map[string]any{
				"fields": []schema.Field{
					c.buildOrFallback("image", "Image", schema.KindMedia, fieldbuild.Options{}, section.Name),
					c.buildOrFallback("caption", "Caption", schema.KindInput, fieldbuild.Options{}, section.Name),
					c.buildOrFallback("alt_text", "Alt Text", schema.KindInput, fieldbuild.Options{}, section.Name),
				},
			},
		}, section.Name))
	}
	if section.Hints.Carousel {
		fields = append(fields, c.buildOrFallback("carousel", "Carousel", schema.KindRepeater, fieldbuild.Options{
			Attributes: map[string]any{
				"fields": []schema.Field{
					c.buildOrFallback("image", "Image", schema.KindMedia, fieldbuild.Options{}, section.Name),
					c.buildOrFallback("title", "Title", schema.KindInput, fieldbuild.Options{}, section.Name),
					c.buildOrFallback("description", "Description", schema.KindTextarea, fieldbuild.Options{}, section.Name),
				},
			},
		}, section.Name))
	}
	return fields
}

// formFields emits the form scaffold: title, description, a form-fields
// repeater when input elements exist, and the submit button text. No leading
// status toggle.
func (c *Composer) formFields(section content.Section) []schema.Field {
	fields := []schema.Field{
		c.buildOrFallback("section_title", "Section Title", schema.KindInput, fieldbuild.Options{}, section.Name),
		c.buildOrFallback("form_description", "Form Description", schema.KindTextarea, fieldbuild.Options{}, section.Name),
	}

	if hasElementType(section.Elements, content.ElementInput) {
		fields = append(fields, c.buildOrFallback("form_fields", "Form Fields", schema.KindRepeater, fieldbuild.Options{
			Attributes: map[string]any{
				"fields": []schema.Field{
					c.buildOrFallback("label", "Label", schema.KindInput, fieldbuild.Options{}, section.Name),
					c.buildOrFallback("type", "Type", schema.KindInput, fieldbuild.Options{}, section.Name),
					c.buildOrFallback("placeholder", "Placeholder", schema.KindInput, fieldbuild.Options{}, section.Name),
					c.buildOrFallback("required", "Required", schema.KindToggle, fieldbuild.Options{}, section.Name),
				},
			},
		}, section.Name))
	}

	return append(fields, c.buildOrFallback("submit_button_text", "Submit Button Text", schema.KindInput, fieldbuild.Options{}, section.Name))
}

// singleFields gates each field on the element evidence independently: the
// gates are not mutually exclusive. No leading status toggle.
func (c *Composer) singleFields(section content.Section) []schema.Field {
	var fields []schema.Field

	if hasRole(section.Elements, content.RoleHeading) {
		fields = append(fields, c.buildOrFallback("section_title", "Section Title", schema.KindInput, fieldbuild.Options{}, section.Name))
	}
	if hasBodyText(section.Elements) {
		fields = append(fields, c.buildOrFallback("content", "Content", schema.KindTexteditor, fieldbuild.Options{}, section.Name))
	}
	if hasElementType(section.Elements, content.ElementImage) {
		fields = append(fields, c.buildOrFallback("image", "Image", schema.KindMedia, fieldbuild.Options{}, section.Name))
	}
	if hasElementType(section.Elements, content.ElementButton) {
		fields = append(fields,
			c.buildOrFallback("cta_text", "CTA Text", schema.KindInput, fieldbuild.Options{}, section.Name),
			c.buildOrFallback("cta_link", "CTA Link", schema.KindInput, fieldbuild.Options{}, section.Name),
		)
	}
	return fields
}

// genericFields is the minimal degraded section: a status toggle, a title,
// and a free-text content field.
func (c *Composer) genericFields(section content.Section) []schema.Field {
	return []schema.Field{
		c.statusToggle(section.Name),
		c.buildOrFallback("section_title", "Section Title", schema.KindInput, fieldbuild.Options{}, section.Name),
		c.buildOrFallback("content", "Content", schema.KindTexteditor, fieldbuild.Options{}, section.Name),
	}
}

// suggestedFields materializes the classifier's per-element sketches into
// built fields, skipping nothing: a sketch that fails to build becomes a
// fallback field under the same name.
func (c *Composer) suggestedFields(analysis classify.Analysis, context string) []schema.Field {
	fields := make([]schema.Field, 0, len(analysis.Suggestions))
	for _, suggestion := range analysis.Suggestions {
		fields = append(fields, c.buildOrFallback(suggestion.Name, suggestion.Label, suggestion.Kind, fieldbuild.Options{}, context))
	}
	return fields
}

func (c *Composer) statusToggle(context string) schema.Field {
	return c.buildOrFallback("status", "Status", schema.KindToggle, fieldbuild.Options{}, context)
}

// buildOrFallback shields section synthesis from single-field failures:
// unsupported kinds and unsanitizable names degrade to a plain text input
// instead of propagating. A missing required attribute means the registry
// itself is misconfigured, so it is reported before degrading.
func (c *Composer) buildOrFallback(name, label string, kind schema.FieldKind, opts fieldbuild.Options, context string) schema.Field {
	field, err := fieldbuild.Build(name, label, kind, opts, c.registry, context)
	if err == nil {
		return field
	}
	if errors.Is(err, schema.ErrMissingRequiredAttribute) {
		c.logger.Warn("registry misconfiguration, degrading to text input",
			"field", name,
			"kind", string(kind),
			"section", context,
			"error", err.Error(),
		)
	}
	return fallbackField(name, label)
}

// fallbackField is the best-effort stand-in for a field that could not be
// built. Constructed directly so it cannot fail in turn.
func fallbackField(name, label string) schema.Field {
	key := fieldbuild.SanitizeName(name)
	if key == "" {
		key = "field"
	}
	if strings.TrimSpace(label) == "" {
		label = sectionLabelFromKey(key)
	}
	return schema.Field{
		Name:       key,
		Label:      label,
		Kind:       schema.KindInput,
		Attributes: map[string]any{"type": "text"},
	}
}

func hasElementType(elements []content.Element, kind content.ElementType) bool {
	for _, element := range elements {
		if element.Type == kind {
			return true
		}
	}
	return false
}

func hasRole(elements []content.Element, role content.Role) bool {
	for _, element := range elements {
		if element.Role == role {
			return true
		}
	}
	return false
}

// hasBodyText reports whether the section carries prose beyond headings and
// labels: description-role elements or any textarea.
func hasBodyText(elements []content.Element) bool {
	for _, element := range elements {
		if element.Type == content.ElementTextarea {
			return true
		}
		if element.Type != content.ElementText {
			continue
		}
		switch element.Role {
		case content.RoleDescription, content.RoleSubtitle:
			return true
		}
	}
	return false
}

func sectionKey(name string) string {
	key := fieldbuild.SanitizeName(name)
	if key == "" {
		return "section"
	}
	return key
}

func sectionLabel(section content.Section) string {
	if strings.TrimSpace(section.Label) != "" {
		return section.Label
	}
	return sectionLabelFromKey(sectionKey(section.Name))
}

func sectionLabelFromKey(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	label := strings.Join(words, " ")
	if label == "" {
		return "Section"
	}
	return label
}
