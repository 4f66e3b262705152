// Package synth derives plausible default attributes for a field from three
// cheap, deterministic signals: the field name, the field kind, and the
// surrounding section context. Synthesized values are defaults only; the
// field builder lets example and caller attributes override them.
package synth

import (
	"fmt"
	"strings"

	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// Media resolution bounds, in pixels.
const (
	iconMinSize = 16
	iconMaxSize = 128

	heroMinWidth  = 1200
	heroMaxWidth  = 1920
	heroMinHeight = 600
	heroMaxHeight = 1080
)

// repeaterBound keys a repeater min/max pair to name or context keywords.
type repeaterBound struct {
	keywords []string
	min, max int
}

// Bounds are matched top to bottom against both the field name and the
// section context; the first hit wins.
var repeaterBounds = []repeaterBound{
	{keywords: []string{"features"}, min: 1, max: 8},
	{keywords: []string{"gallery", "images"}, min: 1, max: 24},
	{keywords: []string{"testimonial"}, min: 1, max: 6},
	{keywords: []string{"team", "member"}, min: 1, max: 12},
	{keywords: []string{"pricing", "plan"}, min: 1, max: 5},
}

const (
	defaultRepeaterMin = 1
	defaultRepeaterMax = 10
)

// Synthesize produces a partial attribute map for the field. It is a pure
// function; callers own the returned map.
func Synthesize(fieldName string, kind schema.FieldKind, sectionContext string) map[string]any {
	name := strings.ToLower(strings.TrimSpace(fieldName))
	context := strings.ToLower(strings.TrimSpace(sectionContext))

	switch kind {
	case schema.KindInput:
		return inputAttributes(name)
	case schema.KindTextarea:
		return textareaAttributes(name)
	case schema.KindTexteditor:
		return map[string]any{"type": "full"}
	case schema.KindToggle:
		return toggleAttributes(name, context)
	case schema.KindMedia:
		return mediaAttributes(name, context)
	case schema.KindRepeater:
		return repeaterAttributes(name, context)
	default:
		return map[string]any{}
	}
}

func inputAttributes(name string) map[string]any {
	switch {
	case strings.Contains(name, "email"):
		return map[string]any{"type": "email", "placeholder": "user@example.com"}
	case strings.Contains(name, "phone"), strings.Contains(name, "tel"):
		return map[string]any{"type": "tel", "placeholder": "+1 (555) 123-4567"}
	case strings.Contains(name, "url"), strings.Contains(name, "website"), strings.Contains(name, "link"):
		return map[string]any{"type": "url", "placeholder": "https://example.com"}
	case strings.Contains(name, "number"), strings.Contains(name, "count"):
		return map[string]any{"type": "number"}
	case strings.Contains(name, "title"), strings.Contains(name, "name"):
		return map[string]any{
			"type":        "text",
			"maxLength":   100,
			"placeholder": "Enter " + humanize(name),
		}
	case strings.Contains(name, "description"), strings.Contains(name, "content"):
		return map[string]any{"type": "text", "maxLength": 200}
	default:
		return map[string]any{"type": "text"}
	}
}

func textareaAttributes(name string) map[string]any {
	attrs := map[string]any{"rows": 3}
	if strings.Contains(name, "description") || strings.Contains(name, "content") {
		attrs["max_length"] = 500
		attrs["placeholder"] = "Enter " + humanize(name)
	}
	return attrs
}

func toggleAttributes(name, context string) map[string]any {
	if name == "status" {
		caption := "Enable or disable the section"
		if context != "" {
			caption = fmt.Sprintf("Enable or disable the %s section", context)
		}
		return map[string]any{"defaultValue": true, "caption": caption}
	}
	return map[string]any{"defaultValue": false}
}

func mediaAttributes(name, context string) map[string]any {
	switch {
	case containsAny(name, "icon", "logo"):
		return map[string]any{
			"accept": []any{"image"},
			"resolution": map[string]any{
				"minWidth":  iconMinSize,
				"maxWidth":  iconMaxSize,
				"minHeight": iconMinSize,
				"maxHeight": iconMaxSize,
			},
		}
	case strings.Contains(name, "video"):
		return map[string]any{"accept": []any{"video"}}
	case containsAny(name, "document", "file"):
		return map[string]any{"accept": []any{"file"}}
	case containsAny(name, "image", "photo", "thumbnail") || containsAny(context, "hero", "banner"):
		attrs := map[string]any{"accept": []any{"image"}}
		if containsAny(name, "hero", "banner") || containsAny(context, "hero", "banner") {
			attrs["resolution"] = map[string]any{
				"minWidth":  heroMinWidth,
				"maxWidth":  heroMaxWidth,
				"minHeight": heroMinHeight,
				"maxHeight": heroMaxHeight,
			}
		}
		return attrs
	default:
		return map[string]any{"accept": []any{"image"}}
	}
}

func repeaterAttributes(name, context string) map[string]any {
	min, max := defaultRepeaterMin, defaultRepeaterMax
	for _, bound := range repeaterBounds {
		if matchesAny(name, context, bound.keywords) {
			min, max = bound.min, bound.max
			break
		}
	}
	return map[string]any{
		"min":     min,
		"max":     max,
		"caption": fmt.Sprintf("Add %s items", humanize(name)),
	}
}

func matchesAny(name, context string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) || strings.Contains(context, keyword) {
			return true
		}
	}
	return false
}

func containsAny(value string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}

func humanize(name string) string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
	if cleaned == "" {
		return "field"
	}
	return cleaned
}
