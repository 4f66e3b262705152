package classify_test

import (
	"testing"

	"github.com/tobidsn/anticms-schemagen/internal/classify"
	"github.com/tobidsn/anticms-schemagen/pkg/content"
)

func textElements(n int) []content.Element {
	elements := make([]content.Element, n)
	for i := range elements {
		elements[i] = content.Element{Type: content.ElementText, Content: "Item"}
	}
	return elements
}

func TestClassifyPrecedencePostCollectionWins(t *testing.T) {
	// See-more cue, >3 elements, and multiple element types: repeater and
	// group heuristics would also fire, but collection signals short-circuit.
	section := content.Section{
		Name: "projects",
		Elements: []content.Element{
			{Type: content.ElementText, Role: content.RoleHeading, Content: "Projects"},
			{Type: content.ElementText, Content: "Alpha"},
			{Type: content.ElementImage, Content: "alpha.jpg"},
			{Type: content.ElementText, Content: "Beta"},
			{Type: content.ElementButton, Role: content.RoleSeeMore, Content: "See more"},
		},
	}

	analysis := classify.Classify(section)
	if analysis.Archetype != classify.ArchetypePostCollection {
		t.Fatalf("expected post_collection, got %s", analysis.Archetype)
	}
	if analysis.Confidence < 0.8 {
		t.Fatalf("expected confidence >= 0.8, got %.2f", analysis.Confidence)
	}
}

func TestClassifyConfidenceClamped(t *testing.T) {
	elements := textElements(9)
	elements = append(elements, content.Element{Type: content.ElementButton, Role: content.RoleSeeMore, Content: "View more"})

	analysis := classify.Classify(content.Section{Name: "testimonials", Elements: elements})
	if analysis.Archetype != classify.ArchetypePostCollection {
		t.Fatalf("expected post_collection, got %s", analysis.Archetype)
	}
	if analysis.Confidence != 1.0 {
		t.Fatalf("expected confidence clamped to 1.0, got %.2f", analysis.Confidence)
	}
}

func TestClassifyRepeaterScenario(t *testing.T) {
	section := content.Section{
		Name: "team_members",
		Elements: []content.Element{
			{Type: content.ElementText, Content: "Ana"},
			{Type: content.ElementText, Content: "Engineer"},
			{Type: content.ElementText, Content: "Bio"},
			{Type: content.ElementImage, Content: "ana.jpg"},
			{Type: content.ElementText, Content: "Ben"},
			{Type: content.ElementText, Content: "Designer"},
			{Type: content.ElementImage, Content: "ben.jpg"},
		},
	}

	analysis := classify.Classify(section)
	if analysis.Archetype != classify.ArchetypeRepeater {
		t.Fatalf("expected repeater, got %s", analysis.Archetype)
	}
	if analysis.Confidence < 0.7 {
		t.Fatalf("expected confidence >= 0.7, got %.2f", analysis.Confidence)
	}
	if len(analysis.Reasoning) == 0 {
		t.Fatal("expected reasoning entries")
	}
}

func TestClassifyGroup(t *testing.T) {
	section := content.Section{
		Name: "contact_info",
		Elements: []content.Element{
			{Type: content.ElementText, Role: content.RoleHeading, Content: "Reach us"},
			{Type: content.ElementImage, Content: "map.png"},
			{Type: content.ElementButton, Content: "Directions"},
		},
	}

	analysis := classify.Classify(section)
	if analysis.Archetype != classify.ArchetypeGroup {
		t.Fatalf("expected group, got %s", analysis.Archetype)
	}
	if analysis.Confidence < 0.6 {
		t.Fatalf("expected confidence >= 0.6, got %.2f", analysis.Confidence)
	}
}

func TestClassifyMediaGallery(t *testing.T) {
	section := content.Section{
		Name: "showcase",
		Elements: []content.Element{
			{Type: content.ElementImage, Content: "a.jpg"},
			{Type: content.ElementImage, Content: "b.jpg"},
			{Type: content.ElementImage, Content: "c.jpg"},
			{Type: content.ElementText, Content: "Our work"},
		},
	}

	analysis := classify.Classify(section)
	if analysis.Archetype != classify.ArchetypeMediaGallery {
		t.Fatalf("expected media_gallery, got %s", analysis.Archetype)
	}
	if analysis.Confidence != 0.8 {
		t.Fatalf("expected fixed confidence 0.8, got %.2f", analysis.Confidence)
	}
}

func TestClassifyForm(t *testing.T) {
	section := content.Section{
		Name: "newsletter",
		Elements: []content.Element{
			{Type: content.ElementInput, Name: "email", Role: content.RoleEmail},
		},
	}

	analysis := classify.Classify(section)
	if analysis.Archetype != classify.ArchetypeForm {
		t.Fatalf("expected form, got %s", analysis.Archetype)
	}
	if analysis.Confidence != 0.9 {
		t.Fatalf("expected fixed confidence 0.9, got %.2f", analysis.Confidence)
	}
}

func TestClassifySingleFallback(t *testing.T) {
	section := content.Section{
		Name: "intro",
		Elements: []content.Element{
			{Type: content.ElementText, Role: content.RoleHeading, Content: "Welcome"},
			{Type: content.ElementText, Role: content.RoleDescription, Content: "A short intro."},
		},
	}

	analysis := classify.Classify(section)
	if analysis.Archetype != classify.ArchetypeSingle {
		t.Fatalf("expected single, got %s", analysis.Archetype)
	}
	if analysis.Confidence != 0.8 {
		t.Fatalf("expected confidence 0.8 for two elements, got %.2f", analysis.Confidence)
	}
}

func TestClassifySingleConfidenceFloor(t *testing.T) {
	// Eight elements spread over four types stay below every other
	// archetype's threshold, and the per-element penalty bottoms out at 0.3.
	section := content.Section{Name: "misc"}
	for i := 0; i < 2; i++ {
		section.Elements = append(section.Elements,
			content.Element{Type: content.ElementText, Content: "a"},
			content.Element{Type: content.ElementTextarea, Content: "b"},
			content.Element{Type: content.ElementImage, Content: "c"},
			content.Element{Type: content.ElementButton, Content: "d"},
		)
	}

	analysis := classify.Classify(section)
	if analysis.Archetype != classify.ArchetypeSingle {
		t.Fatalf("expected single, got %s", analysis.Archetype)
	}
	if analysis.Confidence != 0.3 {
		t.Fatalf("expected confidence floor 0.3, got %.2f", analysis.Confidence)
	}
}

func TestClassifySuggestionsDeduplicateNames(t *testing.T) {
	section := content.Section{
		Name: "banner_list",
		Elements: []content.Element{
			{Type: content.ElementText, Name: "title", Content: "One"},
			{Type: content.ElementText, Name: "title", Content: "Two"},
			{Type: content.ElementText, Name: "title", Content: "Three"},
			{Type: content.ElementText, Name: "title", Content: "Four"},
		},
	}

	analysis := classify.Classify(section)
	seen := map[string]bool{}
	for _, suggestion := range analysis.Suggestions {
		if seen[suggestion.Name] {
			t.Fatalf("duplicate suggestion name %q", suggestion.Name)
		}
		seen[suggestion.Name] = true
	}
	if len(analysis.Suggestions) != 4 {
		t.Fatalf("expected 4 suggestions, got %d", len(analysis.Suggestions))
	}
}

func TestClassifySuggestionsSkipTakenSuffixes(t *testing.T) {
	// A literal title_2 occupies the first numeric suffix, so the repeated
	// title must move past it instead of colliding.
	section := content.Section{
		Name: "banner_list",
		Elements: []content.Element{
			{Type: content.ElementText, Name: "title", Content: "One"},
			{Type: content.ElementText, Name: "title_2", Content: "Two"},
			{Type: content.ElementText, Name: "title", Content: "Three"},
		},
	}

	analysis := classify.Classify(section)
	want := []string{"title", "title_2", "title_3"}
	if len(analysis.Suggestions) != len(want) {
		t.Fatalf("expected %d suggestions, got %d", len(want), len(analysis.Suggestions))
	}
	for i, name := range want {
		if analysis.Suggestions[i].Name != name {
			t.Fatalf("suggestion %d: expected %q, got %q", i, name, analysis.Suggestions[i].Name)
		}
	}
}
