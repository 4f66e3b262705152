package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tobidsn/anticms-schemagen/internal/fieldbuild"
	"github.com/tobidsn/anticms-schemagen/pkg/content"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".avif"}

var imageNameCues = []string{"image", "photo", "icon", "logo", "thumbnail", "avatar", "picture"}

// DataRaw walks a JSON object keyed by section name: arrays become repeater
// candidates, record-like nested objects become groups, and every other key
// becomes an independent element. The walk stays on the raw document so keys
// are visited in document order at every level.
func DataRaw(raw []byte) (content.Normalized, error) {
	entries, err := objectEntries(raw)
	if err != nil {
		return content.Normalized{}, err
	}

	normalized := content.Normalized{Hints: content.TemplateHints{Kind: "pages"}}
	for _, entry := range entries {
		section := sectionFromRaw(entry.key, entry.value)
		if len(section.Elements) == 0 {
			continue
		}
		normalized.Sections = append(normalized.Sections, section)
	}
	return normalized, nil
}

type rawEntry struct {
	key   string
	value json.RawMessage
}

// objectEntries scans a JSON object with a streaming decoder and returns its
// key/value pairs in document order.
func objectEntries(raw []byte) ([]rawEntry, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("normalize: invalid JSON payload: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("normalize: JSON payload must be an object")
	}

	var entries []rawEntry
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("normalize: invalid JSON payload: %w", err)
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("normalize: invalid JSON payload")
		}
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return nil, fmt.Errorf("normalize: invalid JSON payload: %w", err)
		}
		entries = append(entries, rawEntry{key: key, value: value})
	}
	return entries, nil
}

func sectionFromRaw(key string, raw json.RawMessage) content.Section {
	section := content.Section{
		Name:  fieldbuild.SanitizeName(key),
		Label: labelFromName(key),
	}

	switch firstByte(raw) {
	case '[':
		section.Hints.Repeater = true
		section.Elements = elementsFromArray(key, raw)
	case '{':
		entries, err := objectEntries(raw)
		if err != nil {
			return section
		}
		if len(entries) > 1 && hasGroupCue(key) {
			section.Hints.Group = true
		}
		section.Elements = elementsFromEntries(entries)
	default:
		section.Elements = []content.Element{elementFromRaw(key, raw)}
	}
	return section
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// elementsFromArray inspects the first entry to derive the per-item shape:
// arrays of objects yield one element per key in document order, arrays of
// primitives yield a single generic element.
func elementsFromArray(key string, raw json.RawMessage) []content.Element {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil
	}

	first := items[0]
	if firstByte(first) == '{' {
		entries, err := objectEntries(first)
		if err != nil {
			return nil
		}
		return elementsFromEntries(entries)
	}
	return []content.Element{elementFromRaw(itemName(key), first)}
}

func elementsFromEntries(entries []rawEntry) []content.Element {
	elements := make([]content.Element, 0, len(entries))
	for _, entry := range entries {
		elements = append(elements, elementFromRaw(entry.key, entry.value))
	}
	return elements
}

func elementFromRaw(key string, raw json.RawMessage) content.Element {
	var value any
	// raw was produced by a successful decode, so this cannot fail.
	_ = json.Unmarshal(raw, &value)
	return elementFromPrimitive(key, value)
}

func elementFromPrimitive(key string, value any) content.Element {
	name := fieldbuild.SanitizeName(key)
	text := fmt.Sprintf("%v", value)
	if value == nil {
		text = ""
	}

	if str, ok := value.(string); ok && looksLikeImage(name, str) {
		return content.Element{Type: content.ElementImage, Name: name, Content: str}
	}

	element := content.Element{Type: content.ElementText, Name: name, Content: text}
	element.Role = content.Role(inferTextRole(name, text))
	return element
}

func looksLikeImage(name, value string) bool {
	lowered := strings.ToLower(value)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	for _, cue := range imageNameCues {
		if strings.Contains(name, cue) {
			return true
		}
	}
	return false
}

func hasGroupCue(key string) bool {
	lowered := strings.ToLower(key)
	for _, cue := range groupNameCues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}

func itemName(key string) string {
	sanitized := fieldbuild.SanitizeName(key)
	if sanitized == "" {
		return "item"
	}
	return strings.TrimSuffix(sanitized, "s")
}
