// Package generator coordinates the full inference pipeline: normalize the
// raw inputs into sections, classify each section against the structural
// archetypes, compose the winning archetype into concrete fields, and
// assemble the ordered template. It applies sensible defaults (embedded
// registry, the three built-in adapters) while remaining open to dependency
// injection for advanced callers.
package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/tobidsn/anticms-schemagen/internal/classify"
	"github.com/tobidsn/anticms-schemagen/internal/compose"
	"github.com/tobidsn/anticms-schemagen/internal/fieldbuild"
	"github.com/tobidsn/anticms-schemagen/internal/normalize"
	"github.com/tobidsn/anticms-schemagen/pkg/content"
	"github.com/tobidsn/anticms-schemagen/pkg/registry"
	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects a custom field-type registry. Pass the result of
// registry.LoadFS to use an external declarative catalog.
func WithRegistry(reg *registry.Registry) Option {
	return func(g *Generator) {
		g.registry = reg
	}
}

// WithAdapters replaces the source adapters consulted for the Raw payload and
// the typed inputs. Order matters: Raw routing takes the first adapter whose
// Detect accepts the payload.
func WithAdapters(adapters ...content.SourceAdapter) Option {
	return func(g *Generator) {
		if len(adapters) == 0 {
			return
		}
		g.adapters = append([]content.SourceAdapter(nil), adapters...)
	}
}

// WithLogger wires a leveled logger. Classification reasoning is logged at
// debug level.
func WithLogger(logger Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator owns the pipeline dependencies. Safe for concurrent use: every
// invocation allocates its own section and field trees.
type Generator struct {
	registry *registry.Registry
	adapters []content.SourceAdapter
	logger   Logger
	composer *compose.Composer
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		logger: NoopLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.registry == nil {
		g.registry = registry.Default()
	}
	if len(g.adapters) == 0 {
		g.adapters = normalize.Adapters()
	}
	g.composer = compose.New(g.registry, compose.WithLogger(g.logger))
	return g
}

// Generate runs the normalize → classify → compose → assemble sequence and
// returns the finished template. The only hard failures are an invalid
// request and undecodable typed inputs; per-section and per-field problems
// degrade locally instead of aborting.
func (g *Generator) Generate(ctx context.Context, req Request) (schema.Template, error) {
	if ctx == nil {
		return schema.Template{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return schema.Template{}, err
	}
	if err := req.Validate(); err != nil {
		return schema.Template{}, wrapValidationError(err)
	}

	name := fieldbuild.SanitizeName(req.Name)
	if name == "" {
		return schema.Template{}, wrapValidationError(&schema.InvalidFieldNameError{Name: req.Name})
	}

	normalized, err := g.normalizeAll(ctx, req)
	if err != nil {
		return schema.Template{}, wrapNormalizeError(err)
	}

	template := schema.Template{
		Name:        name,
		Label:       req.Label,
		Description: req.Description,
		IsContent:   req.IsContent,
	}
	g.applyHints(&template, req, normalized.Hints)

	for _, section := range normalized.Sections {
		analysis := classify.Classify(section)
		g.logger.Debug("section classified",
			"section", section.Name,
			"archetype", analysis.Archetype.String(),
			"confidence", analysis.Confidence,
			"reasoning", analysis.Reasoning,
		)
		template.AddSection(g.composer.Section(section, analysis))
	}

	if normalized.Hints.IncludeCTA && !hasButton(normalized.Sections) {
		template.AddSection(g.ctaSection())
	}

	g.logger.Info("template generated",
		"template", template.Name,
		"sections", len(template.Components),
	)
	return template, nil
}

// normalizeAll fans the typed inputs through their adapters and routes the
// untyped Raw payload to the first adapter that detects it, concatenating
// every result into one section stream.
func (g *Generator) normalizeAll(ctx context.Context, req Request) (content.Normalized, error) {
	merged := content.Normalized{Hints: content.TemplateHints{Kind: "pages"}}
	if !req.hasInput() {
		g.logger.Warn("no input supplied; template will have no components")
		return merged, nil
	}

	opts := content.NormalizeOptions{DefaultSection: "main"}

	appendResult := func(result content.Normalized) {
		merged.Sections = append(merged.Sections, result.Sections...)
		if result.Hints.Kind == "posts" {
			merged.Hints.Kind = "posts"
		}
		merged.Hints.IncludeCTA = merged.Hints.IncludeCTA || result.Hints.IncludeCTA
		merged.Hints.Multilanguage = merged.Hints.Multilanguage || result.Hints.Multilanguage
	}

	if req.Markup != "" {
		result, err := g.runAdapter(ctx, "markup", []byte(req.Markup), opts)
		if err != nil {
			return content.Normalized{}, err
		}
		appendResult(result)
	}
	if len(req.Data) > 0 {
		result, err := g.runAdapter(ctx, "data", req.Data, opts)
		if err != nil {
			return content.Normalized{}, err
		}
		appendResult(result)
	}
	if req.Prompt != "" {
		result, err := g.runAdapter(ctx, "prompt", []byte(req.Prompt), opts)
		if err != nil {
			return content.Normalized{}, err
		}
		appendResult(result)
	}
	if len(req.Raw) > 0 {
		adapter := g.detectAdapter(req.Raw)
		if adapter == nil {
			return content.Normalized{}, errors.New("generator: no adapter accepts the raw payload")
		}
		result, err := adapter.Normalize(ctx, req.Raw, opts)
		if err != nil {
			return content.Normalized{}, fmt.Errorf("generator: normalize raw input via %s: %w", adapter.Name(), err)
		}
		appendResult(result)
	}
	return merged, nil
}

func (g *Generator) runAdapter(ctx context.Context, name string, raw []byte, opts content.NormalizeOptions) (content.Normalized, error) {
	for _, adapter := range g.adapters {
		if adapter.Name() != name {
			continue
		}
		result, err := adapter.Normalize(ctx, raw, opts)
		if err != nil {
			return content.Normalized{}, fmt.Errorf("generator: normalize %s input: %w", name, err)
		}
		return result, nil
	}
	return content.Normalized{}, fmt.Errorf("generator: no %q adapter configured", name)
}

func (g *Generator) detectAdapter(raw []byte) content.SourceAdapter {
	for _, adapter := range g.adapters {
		if adapter.Detect(raw) {
			return adapter
		}
	}
	return nil
}

// applyHints folds prompt-derived document hints into the template, only
// where the caller left the choice open.
func (g *Generator) applyHints(template *schema.Template, req Request, hints content.TemplateHints) {
	if req.IsMultiple != nil {
		template.IsMultiple = *req.IsMultiple
	} else {
		template.IsMultiple = hints.Kind == "posts"
	}
	if req.Multilanguage != nil {
		template.Multilanguage = *req.Multilanguage
	} else {
		template.Multilanguage = hints.Multilanguage
	}
}

// ctaSection is appended when the prompt asked for a call to action and no
// normalized section already carries a button.
func (g *Generator) ctaSection() schema.Section {
	section := content.Section{
		Name:  "call_to_action",
		Label: "Call To Action",
		Elements: []content.Element{
			{Type: content.ElementText, Name: "title", Role: content.RoleHeading},
			{Type: content.ElementButton, Name: "cta", Role: content.RoleCTA},
		},
	}
	return g.composer.Section(section, classify.Classify(section))
}

func hasButton(sections []content.Section) bool {
	for _, section := range sections {
		for _, element := range section.Elements {
			if element.Type == content.ElementButton {
				return true
			}
		}
	}
	return false
}
