package registry

import "github.com/tobidsn/anticms-schemagen/pkg/schema"

// Builtin returns the minimal fallback registry used when no declarative
// catalog can be loaded. Entries carry kind names only: no examples, no
// attribute declarations.
func Builtin() *Registry {
	kinds := []schema.FieldKind{
		schema.KindInput,
		schema.KindTextarea,
		schema.KindTexteditor,
		schema.KindSelect,
		schema.KindToggle,
		schema.KindMedia,
		schema.KindRepeater,
		schema.KindGroup,
		schema.KindRelationship,
		schema.KindPostObject,
		schema.KindPostRelated,
		schema.KindTable,
	}
	defs := make([]Definition, 0, len(kinds))
	for _, kind := range kinds {
		defs = append(defs, Definition{Kind: kind})
	}
	return New(defs...)
}
