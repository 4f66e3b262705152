package registry

import (
	"sort"
	"strings"

	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// Example is a worked field instance attached to a kind definition. The
// field builder scores examples against the field being built and copies
// attributes from the best match.
type Example struct {
	Name       string
	Label      string
	Attributes map[string]any
}

// Definition declares one field kind: which attributes it accepts, which it
// requires, and optional worked examples, in registration order.
type Definition struct {
	Kind     schema.FieldKind
	Allowed  []string
	Required []string
	Examples []Example
}

// Allows reports whether the definition accepts the named attribute.
func (d Definition) Allows(attr string) bool {
	for _, name := range d.Allowed {
		if name == attr {
			return true
		}
	}
	return false
}

// ExampleDefault returns the first example value declared for the named
// attribute. The value is deep-copied so callers never alias example data.
func (d Definition) ExampleDefault(attr string) (any, bool) {
	for _, example := range d.Examples {
		if value, ok := example.Attributes[attr]; ok {
			return schema.CloneValue(value), true
		}
	}
	return nil, false
}

// Registry is the catalog of supported field kinds. It is read-only after
// construction and safe for concurrent readers.
type Registry struct {
	defs map[schema.FieldKind]Definition
}

// New constructs a registry from the supplied definitions. Later definitions
// for the same kind replace earlier ones.
func New(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[schema.FieldKind]Definition, len(defs))}
	for _, def := range defs {
		r.register(def)
	}
	return r
}

func (r *Registry) register(def Definition) {
	kind := schema.FieldKind(strings.TrimSpace(string(def.Kind)))
	if kind == "" {
		return
	}
	def.Kind = kind
	r.defs[kind] = def
}

// Lookup resolves a kind to its definition. Unknown kinds are a hard error:
// callers must propagate it, never substitute a default kind.
func (r *Registry) Lookup(kind schema.FieldKind) (Definition, error) {
	if r != nil {
		if def, ok := r.defs[kind]; ok {
			return def, nil
		}
	}
	return Definition{}, &schema.UnsupportedFieldKindError{Kind: kind}
}

// Has reports whether the kind is registered.
func (r *Registry) Has(kind schema.FieldKind) bool {
	if r == nil {
		return false
	}
	_, ok := r.defs[kind]
	return ok
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []schema.FieldKind {
	if r == nil || len(r.defs) == 0 {
		return nil
	}
	kinds := make([]schema.FieldKind, 0, len(r.defs))
	for kind := range r.defs {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
