package generator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request describes one template-generation invocation. At least one of the
// input modalities (Markup, Data, Prompt, Raw) should be supplied; a request
// with none yields a template with no components.
type Request struct {
	// Name is the template identifier. Required; sanitized to snake_case.
	Name string

	// Label is the human-readable template title. Required.
	Label string

	// Description is optional free text carried onto the template.
	Description string

	// Markup is a design-tool export fragment (scraped markup plus attribute
	// metadata) handled by the markup normalizer.
	Markup string

	// Data is a raw JSON object keyed by section name, handled by the
	// structured-data normalizer.
	Data []byte

	// Prompt is free text handled by the keyword-scan normalizer.
	Prompt string

	// Raw is an untyped payload routed to the first adapter whose Detect
	// accepts it. Useful when the caller does not know the modality.
	Raw []byte

	// IsContent marks the template as a content (vs. settings) template.
	IsContent bool

	// IsMultiple marks the template as multi-entry. Left nil, the prompt
	// path's pages/posts hint decides.
	IsMultiple *bool

	// Multilanguage enables per-language content. Left nil, the prompt
	// path's multilingual hint decides.
	Multilanguage *bool
}

// Validate checks the caller-supplied identifiers. These are the only inputs
// whose invalidity is a hard, template-level error.
func (r Request) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = validation.NewError("schemagen.template.name_required", "template name is required")
	}
	if strings.TrimSpace(r.Label) == "" {
		errs["label"] = validation.NewError("schemagen.template.label_required", "template label is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r Request) hasInput() bool {
	return strings.TrimSpace(r.Markup) != "" ||
		len(r.Data) > 0 ||
		strings.TrimSpace(r.Prompt) != "" ||
		len(r.Raw) > 0
}
