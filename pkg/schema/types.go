package schema

// FieldKind names the declared type of a leaf or composite field. The set is
// open: the registry decides which kinds are valid at build time.
type FieldKind string

const (
	KindInput        FieldKind = "input"
	KindTextarea     FieldKind = "textarea"
	KindTexteditor   FieldKind = "texteditor"
	KindSelect       FieldKind = "select"
	KindToggle       FieldKind = "toggle"
	KindMedia        FieldKind = "media"
	KindRepeater     FieldKind = "repeater"
	KindGroup        FieldKind = "group"
	KindRelationship FieldKind = "relationship"
	KindPostObject   FieldKind = "post_object"
	KindPostRelated  FieldKind = "post_related"
	KindTable        FieldKind = "table"
)

// String returns the wire name of the kind.
func (k FieldKind) String() string { return string(k) }

// Field models a single typed input inside a section. Attributes hold the
// kind-specific configuration (placeholders, bounds, nested field lists).
// Multilanguage is a pointer so "not set" stays distinct from false.
type Field struct {
	Name          string         `json:"name"`
	Label         string         `json:"label"`
	Kind          FieldKind      `json:"field"`
	Multilanguage *bool          `json:"multilanguage,omitempty"`
	Attributes    map[string]any `json:"attribute,omitempty"`
}

// Clone returns a deep copy of the field, including nested attribute maps and
// nested field lists. Built fields never alias registry example data.
func (f Field) Clone() Field {
	out := f
	if f.Multilanguage != nil {
		v := *f.Multilanguage
		out.Multilanguage = &v
	}
	if f.Attributes != nil {
		out.Attributes = CloneAttributes(f.Attributes)
	}
	return out
}

// CloneAttributes deep-copies an attribute map.
func CloneAttributes(attrs map[string]any) map[string]any {
	if attrs == nil {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for key, value := range attrs {
		out[key] = CloneValue(value)
	}
	return out
}

// CloneValue deep-copies a single attribute value. Maps, slices, and nested
// Fields are copied recursively; scalars are returned as-is.
func CloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return CloneAttributes(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = CloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []Field:
		out := make([]Field, len(v))
		for i, item := range v {
			out[i] = item.Clone()
		}
		return out
	case Field:
		return v.Clone()
	default:
		return value
	}
}
