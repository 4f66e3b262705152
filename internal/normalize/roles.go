package normalize

import (
	"strings"
	"unicode"
)

// Content-shape boundaries for role inference.
const (
	descriptionLength = 100
	subtitleLength    = 50
)

// roleNameHints maps explicit name fragments to roles. Checked before any
// content-shape heuristic.
var roleNameHints = []struct {
	fragment string
	role     string
}{
	{"see_more", "see_more"},
	{"view_all", "see_more"},
	{"title", "heading"},
	{"heading", "heading"},
	{"subtitle", "subtitle"},
	{"description", "description"},
	{"cta", "cta"},
	{"button", "cta"},
	{"email", "email"},
	{"phone", "phone"},
	{"tel", "phone"},
	{"url", "url"},
	{"link", "url"},
	{"nav", "navigation"},
}

var ctaPhrases = []string{"see more", "view more", "read more", "learn more"}

// inferTextRole assigns a role to a text element: explicit name hints first,
// then content shape.
func inferTextRole(name, text string) string {
	lowered := strings.ToLower(name)
	for _, hint := range roleNameHints {
		if strings.Contains(lowered, hint.fragment) {
			return hint.role
		}
	}

	trimmed := strings.TrimSpace(text)
	loweredText := strings.ToLower(trimmed)
	for _, phrase := range ctaPhrases {
		if strings.Contains(loweredText, phrase) {
			return "cta"
		}
	}
	switch {
	case len(trimmed) > descriptionLength:
		return "description"
	case len(trimmed) > subtitleLength:
		return "subtitle"
	case isCapitalizedSentence(trimmed):
		return "heading"
	default:
		return ""
	}
}

func isCapitalizedSentence(text string) bool {
	if text == "" || len(text) > subtitleLength {
		return false
	}
	first := []rune(text)[0]
	return unicode.IsUpper(first)
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
