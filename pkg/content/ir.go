// Package content defines the intermediate representation shared by the
// three normalizer paths. Sections and elements exist only between
// normalization and synthesis; they are never persisted.
package content

import "context"

// ElementType enumerates the structural element categories the normalizers
// emit.
type ElementType string

const (
	ElementText     ElementType = "text"
	ElementImage    ElementType = "image"
	ElementButton   ElementType = "button"
	ElementInput    ElementType = "input"
	ElementTextarea ElementType = "textarea"
)

// Role is a weak semantic tag attached to an element by name or content-shape
// heuristics.
type Role string

const (
	RoleHeading      Role = "heading"
	RoleSubtitle     Role = "subtitle"
	RoleDescription  Role = "description"
	RoleLabel        Role = "label"
	RoleCTA          Role = "cta"
	RolePrimaryCTA   Role = "primary_cta"
	RoleSecondaryCTA Role = "secondary_cta"
	RoleEmail        Role = "email"
	RolePhone        Role = "phone"
	RoleURL          Role = "url"
	RolePassword     Role = "password"
	RoleNavigation   Role = "navigation"
	RoleSeeMore      Role = "see_more"
)

// Element is one typed, named item inside a section.
type Element struct {
	Type       ElementType
	Content    string
	Name       string
	Role       Role
	Attributes map[string]string
}

// Hints carries per-section pattern signals detected upstream by the
// normalizers; the classifier folds them into its scores.
type Hints struct {
	Repeater  bool
	Group     bool
	ImageGrid bool
	Carousel  bool
}

// Section is the common unit all normalizer paths converge on. The
// classifier never needs to know which path produced it.
type Section struct {
	Name     string
	Label    string
	Elements []Element
	Hints    Hints
}

// TemplateHints are document-level signals (currently produced by the prompt
// path) applied to the template when the caller left them unset.
type TemplateHints struct {
	// Kind is "pages" or "posts".
	Kind          string
	IncludeCTA    bool
	Multilanguage bool
}

// Normalized is the output of one normalizer run.
type Normalized struct {
	Sections []Section
	Hints    TemplateHints
}

// NormalizeOptions supplies optional hints to adapters during normalization.
type NormalizeOptions struct {
	// DefaultSection names the section used when the input carries no
	// grouping markers of its own.
	DefaultSection string
}

// SourceAdapter normalizes one raw input modality into sections. Detect lets
// callers with an untyped payload route it to the right adapter.
type SourceAdapter interface {
	Name() string
	Detect(raw []byte) bool
	Normalize(ctx context.Context, raw []byte, opts NormalizeOptions) (Normalized, error)
}
