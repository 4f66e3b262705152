// Package schemagen infers content-template schemas from design-tool markup
// exports, raw JSON example payloads, and free-text prompts. The root package
// re-exports the data model and the generator entry points so callers can get
// a template with a single import.
package schemagen

import (
	"context"
	"io/fs"

	"github.com/tobidsn/anticms-schemagen/pkg/generator"
	"github.com/tobidsn/anticms-schemagen/pkg/registry"
	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// Template is the root document produced by a generation request.
type Template = schema.Template

// Section is one ordered component of a template.
type Section = schema.Section

// Field is a single typed input inside a section.
type Field = schema.Field

// Request describes one template-generation invocation.
type Request = generator.Request

// Option customises the generator configuration.
type Option = generator.Option

// New exposes the generator constructor from the top-level module.
func New(options ...Option) *generator.Generator {
	return generator.New(options...)
}

// Generate builds a template from the request using a generator with default
// dependencies. It is the simplest entry point for one-off callers.
func Generate(ctx context.Context, req Request, options ...Option) (Template, error) {
	return generator.New(options...).Generate(ctx, req)
}

// DefaultRegistry returns the field-type registry parsed from the embedded
// catalog, degrading to the minimal built-in set when the catalog cannot be
// parsed.
func DefaultRegistry() *registry.Registry {
	return registry.Default()
}

// LoadRegistry parses a declarative field-type catalog (JSON or YAML
// documents) from the supplied filesystem.
func LoadRegistry(fsys fs.FS) (*registry.Registry, error) {
	return registry.LoadFS(fsys)
}
