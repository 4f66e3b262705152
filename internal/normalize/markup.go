// Package normalize converts the three input modalities (design-tool markup
// exports, raw JSON payloads, free-text prompts) into the shared section
// representation. The paths are independent and their outputs are
// structurally interchangeable.
package normalize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/tobidsn/anticms-schemagen/internal/fieldbuild"
	"github.com/tobidsn/anticms-schemagen/pkg/content"
)

// repeatStemThreshold is how many same-named siblings mark a repeating item
// structure inside a group.
const repeatStemThreshold = 3

// imageGridThreshold is how many images inside one group signal a gallery.
const imageGridThreshold = 3

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plainText strips every tag from a markup fragment, leaving readable text.
func plainText(fragment string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return collapseWhitespace(textPolicy.Sanitize(fragment))
}

var carouselCues = []string{"carousel", "slider", "slideshow", "slide"}

var groupNameCues = []string{"contact", "info", "social", "links"}

// Markup scans a constrained design-tool export for self-describing group
// markers and their sub-elements. This is a single-pass token scan over a
// tool-generated format, not an HTML parser: no DOM tree is built and no
// styling is interpreted.
func Markup(markup string, opts content.NormalizeOptions) (content.Normalized, error) {
	scanner := &markupScanner{defaultSection: opts.DefaultSection}
	scanner.run(markup)

	normalized := content.Normalized{Hints: content.TemplateHints{Kind: "pages"}}
	for _, section := range scanner.sections {
		if len(section.Elements) == 0 {
			continue
		}
		finalizeSectionHints(section)
		normalized.Sections = append(normalized.Sections, *section)
	}
	return normalized, nil
}

type markupScanner struct {
	defaultSection string
	sections       []*content.Section
	current        *content.Section

	// capture accumulates the inner markup of one text-bearing element.
	capture *textCapture
}

type textCapture struct {
	tag     string
	name    string
	kind    content.ElementType
	heading bool
	depth   int
	buffer  strings.Builder
}

func (s *markupScanner) run(markup string) {
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			s.closeSection()
			return
		case html.StartTagToken:
			s.startTag(tokenizer.Token())
		case html.SelfClosingTagToken:
			s.voidTag(tokenizer.Token())
		case html.TextToken:
			if s.capture != nil {
				s.capture.buffer.WriteString(tokenizer.Token().Data)
			}
		case html.EndTagToken:
			s.endTag(tokenizer.Token())
		}
	}
}

func (s *markupScanner) startTag(token html.Token) {
	attrs := attributeMap(token)

	if s.capture != nil {
		if token.Data == s.capture.tag {
			s.capture.depth++
		}
		return
	}

	if name, ok := sectionMarker(token, attrs); ok {
		s.closeSection()
		s.current = &content.Section{
			Name:  fieldbuild.SanitizeName(name),
			Label: labelFromName(name),
		}
		return
	}

	switch token.Data {
	case "img", "input":
		s.voidTag(token)
	case "textarea":
		s.beginCapture(token.Data, elementName(attrs), content.ElementTextarea, false)
	case "button":
		s.beginCapture(token.Data, elementName(attrs), content.ElementButton, false)
	case "a":
		if isButtonLink(attrs) {
			s.beginCapture(token.Data, elementName(attrs), content.ElementButton, false)
		}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		s.beginCapture(token.Data, elementName(attrs), content.ElementText, true)
	case "p", "span", "blockquote", "li":
		s.beginCapture(token.Data, elementName(attrs), content.ElementText, false)
	}
}

func (s *markupScanner) voidTag(token html.Token) {
	attrs := attributeMap(token)
	switch token.Data {
	case "img":
		s.addElement(content.Element{
			Type:       content.ElementImage,
			Name:       elementName(attrs),
			Content:    attrs["alt"],
			Attributes: pickAttributes(attrs, "src", "alt", "class"),
		})
	case "input":
		element := content.Element{
			Type:       content.ElementInput,
			Name:       firstNonEmpty(attrs["name"], attrs["data-name"], attrs["id"]),
			Attributes: pickAttributes(attrs, "type", "placeholder", "name"),
		}
		switch attrs["type"] {
		case "email":
			element.Role = content.RoleEmail
		case "tel":
			element.Role = content.RolePhone
		case "url":
			element.Role = content.RoleURL
		case "password":
			element.Role = content.RolePassword
		}
		s.addElement(element)
	}
}

func (s *markupScanner) beginCapture(tag, name string, kind content.ElementType, heading bool) {
	s.capture = &textCapture{tag: tag, name: name, kind: kind, heading: heading, depth: 1}
}

func (s *markupScanner) endTag(token html.Token) {
	if s.capture == nil {
		if name := token.Data; name == "section" || name == "article" {
			s.closeSection()
		}
		return
	}
	if token.Data != s.capture.tag {
		s.capture.buffer.WriteString(" ")
		return
	}
	s.capture.depth--
	if s.capture.depth > 0 {
		return
	}

	capture := s.capture
	s.capture = nil
	text := plainText(capture.buffer.String())
	if text == "" {
		return
	}

	element := content.Element{Type: capture.kind, Name: capture.name, Content: text}
	switch capture.kind {
	case content.ElementText:
		if capture.heading {
			element.Role = content.RoleHeading
		} else {
			element.Role = content.Role(inferTextRole(capture.name, text))
		}
	case content.ElementButton:
		element.Role = content.RoleCTA
		if strings.Contains(strings.ToLower(capture.name), "see_more") {
			element.Role = content.RoleSeeMore
		}
	}
	s.addElement(element)
}

func (s *markupScanner) addElement(element content.Element) {
	if s.current == nil {
		name := s.defaultSection
		if name == "" {
			name = "main"
		}
		s.current = &content.Section{Name: fieldbuild.SanitizeName(name), Label: labelFromName(name)}
	}
	s.current.Elements = append(s.current.Elements, element)
}

func (s *markupScanner) closeSection() {
	if s.capture != nil {
		s.capture = nil
	}
	if s.current != nil {
		s.sections = append(s.sections, s.current)
		s.current = nil
	}
}

// finalizeSectionHints derives per-section pattern flags from the collected
// elements: repeated name stems mark repeaters, image density marks grids,
// and name cues mark carousels and record-like groups.
func finalizeSectionHints(section *content.Section) {
	stems := make(map[string]int)
	images := 0
	for _, element := range section.Elements {
		if stem := nameStem(element.Name); stem != "" {
			stems[stem]++
		}
		if element.Type == content.ElementImage {
			images++
		}
	}
	for _, count := range stems {
		if count >= repeatStemThreshold {
			section.Hints.Repeater = true
			break
		}
	}
	if images >= imageGridThreshold {
		section.Hints.ImageGrid = true
	}

	lowered := strings.ToLower(section.Name)
	for _, cue := range carouselCues {
		if strings.Contains(lowered, cue) {
			section.Hints.Carousel = true
			break
		}
	}
	for _, cue := range groupNameCues {
		if strings.Contains(lowered, cue) {
			section.Hints.Group = true
			break
		}
	}
}

func sectionMarker(token html.Token, attrs map[string]string) (string, bool) {
	if name := attrs["data-section"]; name != "" {
		return name, true
	}
	if token.Data == "section" || token.Data == "article" {
		if name := firstNonEmpty(attrs["data-name"], attrs["id"], attrs["class"]); name != "" {
			return name, true
		}
		return "section", true
	}
	return "", false
}

func isButtonLink(attrs map[string]string) bool {
	class := strings.ToLower(attrs["class"])
	return strings.Contains(class, "btn") || strings.Contains(class, "button") ||
		attrs["data-role"] == "cta"
}

func elementName(attrs map[string]string) string {
	return firstNonEmpty(attrs["data-name"], attrs["name"], attrs["id"])
}

// nameStem drops a trailing numeric suffix so card_1/card_2/card_3 count as
// one repeated stem.
func nameStem(name string) string {
	sanitized := fieldbuild.SanitizeName(name)
	if sanitized == "" {
		return ""
	}
	parts := strings.Split(sanitized, "_")
	if len(parts) > 1 && isNumeric(parts[len(parts)-1]) {
		return strings.Join(parts[:len(parts)-1], "_")
	}
	return sanitized
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func attributeMap(token html.Token) map[string]string {
	if len(token.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(token.Attr))
	for _, attr := range token.Attr {
		attrs[strings.ToLower(attr.Key)] = attr.Val
	}
	return attrs
}

func pickAttributes(attrs map[string]string, keys ...string) map[string]string {
	var out map[string]string
	for _, key := range keys {
		if value := attrs[key]; value != "" {
			if out == nil {
				out = make(map[string]string, len(keys))
			}
			out[key] = value
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func labelFromName(name string) string {
	sanitized := fieldbuild.SanitizeName(name)
	if sanitized == "" {
		return "Section"
	}
	words := strings.Split(sanitized, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
