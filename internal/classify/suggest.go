package classify

import (
	"fmt"
	"strings"

	"github.com/tobidsn/anticms-schemagen/internal/fieldbuild"
	"github.com/tobidsn/anticms-schemagen/pkg/content"
	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// longTextThreshold is where prose stops fitting a single-line input.
const longTextThreshold = 80

// suggestFields sketches one field per element, deduplicating names within
// the section so the synthesizer can use them directly as a nested list.
func suggestFields(elements []content.Element) []FieldSuggestion {
	if len(elements) == 0 {
		return nil
	}
	suggestions := make([]FieldSuggestion, 0, len(elements))
	used := make(map[string]bool, len(elements))
	for idx, element := range elements {
		name := suggestionName(element, idx)
		if used[name] {
			// The numeric suffix may itself be taken by a literal element
			// name, so keep counting until a free one turns up.
			for suffix := 2; ; suffix++ {
				candidate := fmt.Sprintf("%s_%d", name, suffix)
				if !used[candidate] {
					name = candidate
					break
				}
			}
		}
		used[name] = true
		suggestions = append(suggestions, FieldSuggestion{
			Name:  name,
			Kind:  suggestionKind(element),
			Label: suggestionLabel(name),
		})
	}
	return suggestions
}

func suggestionKind(element content.Element) schema.FieldKind {
	switch element.Type {
	case content.ElementImage:
		return schema.KindMedia
	case content.ElementTextarea:
		return schema.KindTextarea
	case content.ElementInput, content.ElementButton:
		return schema.KindInput
	default:
		switch {
		case element.Role == content.RoleDescription && len(element.Content) > longTextThreshold:
			return schema.KindTexteditor
		case element.Role == content.RoleDescription || len(element.Content) > longTextThreshold:
			return schema.KindTextarea
		default:
			return schema.KindInput
		}
	}
}

func suggestionName(element content.Element, idx int) string {
	if name := fieldbuild.SanitizeName(element.Name); name != "" {
		return name
	}
	if element.Role != "" {
		if name := fieldbuild.SanitizeName(string(element.Role)); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%s_%d", element.Type, idx+1)
}

func suggestionLabel(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
