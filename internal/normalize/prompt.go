package normalize

import (
	"strings"

	"github.com/tobidsn/anticms-schemagen/pkg/content"
)

// promptSection pairs a section noun with the canonical elements a section of
// that kind usually carries. The element set only seeds classification; the
// synthesizer decides the final fields.
type promptSection struct {
	noun     string
	label    string
	elements []content.Element
	hints    content.Hints
}

var promptSections = []promptSection{
	{
		noun:  "hero",
		label: "Hero",
		elements: []content.Element{
			{Type: content.ElementText, Name: "title", Role: content.RoleHeading},
			{Type: content.ElementText, Name: "subtitle", Role: content.RoleSubtitle},
			{Type: content.ElementImage, Name: "background_image"},
			{Type: content.ElementButton, Name: "cta", Role: content.RoleCTA},
		},
	},
	{
		noun:  "about",
		label: "About",
		elements: []content.Element{
			{Type: content.ElementText, Name: "title", Role: content.RoleHeading},
			{Type: content.ElementText, Name: "description", Role: content.RoleDescription},
			{Type: content.ElementImage, Name: "image"},
		},
	},
	{
		noun:  "services",
		label: "Services",
		elements: []content.Element{
			{Type: content.ElementText, Name: "service_title", Role: content.RoleHeading},
			{Type: content.ElementText, Name: "service_description", Role: content.RoleDescription},
			{Type: content.ElementImage, Name: "service_icon"},
		},
		hints: content.Hints{Repeater: true},
	},
	{
		noun:  "features",
		label: "Features",
		elements: []content.Element{
			{Type: content.ElementText, Name: "feature_title", Role: content.RoleHeading},
			{Type: content.ElementText, Name: "feature_description", Role: content.RoleDescription},
			{Type: content.ElementImage, Name: "feature_icon"},
		},
		hints: content.Hints{Repeater: true},
	},
	{
		noun:  "team",
		label: "Team",
		elements: []content.Element{
			{Type: content.ElementText, Name: "member_name", Role: content.RoleHeading},
			{Type: content.ElementText, Name: "member_role", Role: content.RoleSubtitle},
			{Type: content.ElementImage, Name: "member_photo"},
		},
		hints: content.Hints{Repeater: true},
	},
	{
		noun:  "testimonials",
		label: "Testimonials",
		elements: []content.Element{
			{Type: content.ElementText, Name: "quote", Role: content.RoleDescription},
			{Type: content.ElementText, Name: "author", Role: content.RoleHeading},
			{Type: content.ElementImage, Name: "author_photo"},
		},
		hints: content.Hints{Repeater: true},
	},
	{
		noun:  "gallery",
		label: "Gallery",
		elements: []content.Element{
			{Type: content.ElementImage, Name: "image_1"},
			{Type: content.ElementImage, Name: "image_2"},
			{Type: content.ElementImage, Name: "image_3"},
			{Type: content.ElementImage, Name: "image_4"},
		},
		hints: content.Hints{ImageGrid: true},
	},
	{
		noun:  "pricing",
		label: "Pricing",
		elements: []content.Element{
			{Type: content.ElementText, Name: "plan_name", Role: content.RoleHeading},
			{Type: content.ElementText, Name: "plan_price", Role: content.RoleSubtitle},
			{Type: content.ElementText, Name: "plan_features", Role: content.RoleDescription},
		},
		hints: content.Hints{Repeater: true},
	},
	{
		noun:  "faq",
		label: "FAQ",
		elements: []content.Element{
			{Type: content.ElementText, Name: "question", Role: content.RoleHeading},
			{Type: content.ElementText, Name: "answer", Role: content.RoleDescription},
		},
		hints: content.Hints{Repeater: true},
	},
	{
		noun:  "news",
		label: "News",
		elements: []content.Element{
			{Type: content.ElementText, Name: "title", Role: content.RoleHeading},
			{Type: content.ElementButton, Name: "see_more", Role: content.RoleSeeMore, Content: "See more"},
		},
	},
	{
		noun:  "blog",
		label: "Blog",
		elements: []content.Element{
			{Type: content.ElementText, Name: "title", Role: content.RoleHeading},
			{Type: content.ElementButton, Name: "see_more", Role: content.RoleSeeMore, Content: "See more"},
		},
	},
	{
		noun:  "contact",
		label: "Contact",
		elements: []content.Element{
			{Type: content.ElementInput, Name: "name", Attributes: map[string]string{"type": "text"}},
			{Type: content.ElementInput, Name: "email", Role: content.RoleEmail, Attributes: map[string]string{"type": "email"}},
			{Type: content.ElementTextarea, Name: "message"},
		},
	},
}

var ctaIntentPhrases = []string{"cta", "call to action", "button", "sign up", "get started"}

var postIntentPhrases = []string{"post", "article", "blog"}

var multilingualIntentPhrases = []string{"multilingual", "international"}

// Prompt scans free text for known section nouns and intent phrases. A prompt
// that names no known noun still produces one generic section so downstream
// stages always have something to work with.
func Prompt(prompt string) (content.Normalized, error) {
	lowered := strings.ToLower(prompt)

	normalized := content.Normalized{Hints: content.TemplateHints{Kind: "pages"}}
	for _, candidate := range promptSections {
		if !strings.Contains(lowered, candidate.noun) {
			continue
		}
		normalized.Sections = append(normalized.Sections, content.Section{
			Name:     candidate.noun,
			Label:    candidate.label,
			Elements: cloneElements(candidate.elements),
			Hints:    candidate.hints,
		})
	}
	if len(normalized.Sections) == 0 {
		normalized.Sections = []content.Section{{
			Name:  "main",
			Label: "Main",
			Elements: []content.Element{
				{Type: content.ElementText, Name: "title", Role: content.RoleHeading},
				{Type: content.ElementText, Name: "description", Role: content.RoleDescription},
			},
		}}
	}

	for _, phrase := range ctaIntentPhrases {
		if strings.Contains(lowered, phrase) {
			normalized.Hints.IncludeCTA = true
			break
		}
	}
	for _, phrase := range postIntentPhrases {
		if strings.Contains(lowered, phrase) {
			normalized.Hints.Kind = "posts"
			break
		}
	}
	for _, phrase := range multilingualIntentPhrases {
		if strings.Contains(lowered, phrase) {
			normalized.Hints.Multilanguage = true
			break
		}
	}
	return normalized, nil
}

func cloneElements(elements []content.Element) []content.Element {
	out := make([]content.Element, len(elements))
	copy(out, elements)
	for i, element := range elements {
		if element.Attributes == nil {
			continue
		}
		attrs := make(map[string]string, len(element.Attributes))
		for key, value := range element.Attributes {
			attrs[key] = value
		}
		out[i].Attributes = attrs
	}
	return out
}
