package compose_test

import (
	"testing"

	"github.com/tobidsn/anticms-schemagen/internal/classify"
	"github.com/tobidsn/anticms-schemagen/internal/compose"
	"github.com/tobidsn/anticms-schemagen/pkg/content"
	"github.com/tobidsn/anticms-schemagen/pkg/registry"
	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

func fieldNames(fields []schema.Field) []string {
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name
	}
	return names
}

func assertNames(t *testing.T, fields []schema.Field, want ...string) {
	t.Helper()
	got := fieldNames(fields)
	if len(got) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field %d: expected %q, got %v", i, want[i], got)
		}
	}
}

func TestComposePostCollection(t *testing.T) {
	composer := compose.New(registry.Default())
	section := content.Section{
		Name: "projects",
		Elements: []content.Element{
			{Type: content.ElementText, Content: "Alpha"},
			{Type: content.ElementButton, Role: content.RoleSeeMore, Content: "See more"},
		},
	}

	out := composer.Section(section, classify.Analysis{Archetype: classify.ArchetypePostCollection})
	assertNames(t, out.Fields, "status", "projects")

	reference := out.Fields[1]
	if reference.Kind != schema.KindPostRelated {
		t.Fatalf("expected post_related reference, got %s", reference.Kind)
	}
	if reference.Attributes["min"] != 1 || reference.Attributes["max"] != 12 {
		t.Fatalf("unexpected bounds: min=%v max=%v", reference.Attributes["min"], reference.Attributes["max"])
	}
	filter, ok := reference.Attributes["filter"].(map[string]any)
	if !ok {
		t.Fatalf("expected filter map, got %T", reference.Attributes["filter"])
	}
	postTypes, ok := filter["post_type"].([]any)
	if !ok || len(postTypes) != 1 || postTypes[0] != "project" {
		t.Fatalf("expected singularized post type, got %v", filter["post_type"])
	}
}

func TestComposeRepeater(t *testing.T) {
	composer := compose.New(registry.Default())
	section := content.Section{Name: "team_members", Elements: []content.Element{{Type: content.ElementText}}}
	analysis := classify.Analysis{
		Archetype: classify.ArchetypeRepeater,
		Suggestions: []classify.FieldSuggestion{
			{Name: "member_name", Kind: schema.KindInput, Label: "Member Name"},
			{Name: "member_photo", Kind: schema.KindMedia, Label: "Member Photo"},
		},
	}

	out := composer.Section(section, analysis)
	assertNames(t, out.Fields, "status", "team_members")

	repeater := out.Fields[1]
	if repeater.Kind != schema.KindRepeater {
		t.Fatalf("expected repeater, got %s", repeater.Kind)
	}
	if repeater.Attributes["min"] != 1 || repeater.Attributes["max"] != 8 {
		t.Fatalf("unexpected bounds: min=%v max=%v", repeater.Attributes["min"], repeater.Attributes["max"])
	}
	nested, ok := repeater.Attributes["fields"].([]schema.Field)
	if !ok {
		t.Fatalf("expected nested field list, got %T", repeater.Attributes["fields"])
	}
	assertNames(t, nested, "member_name", "member_photo")
}

func TestComposeGroup(t *testing.T) {
	composer := compose.New(registry.Default())
	section := content.Section{Name: "contact_info", Elements: []content.Element{{Type: content.ElementText}}}
	analysis := classify.Analysis{
		Archetype: classify.ArchetypeGroup,
		Suggestions: []classify.FieldSuggestion{
			{Name: "email", Kind: schema.KindInput, Label: "Email"},
			{Name: "phone", Kind: schema.KindInput, Label: "Phone"},
		},
	}

	out := composer.Section(section, analysis)
	assertNames(t, out.Fields, "status", "contact_info")
	if out.Fields[1].Kind != schema.KindGroup {
		t.Fatalf("expected group, got %s", out.Fields[1].Kind)
	}
}

func TestComposeMediaGalleryOmitsStatusToggle(t *testing.T) {
	composer := compose.New(registry.Default())
	section := content.Section{
		Name:     "gallery",
		Elements: []content.Element{{Type: content.ElementImage}},
		Hints:    content.Hints{ImageGrid: true, Carousel: true},
	}

	out := composer.Section(section, classify.Analysis{Archetype: classify.ArchetypeMediaGallery})
	assertNames(t, out.Fields, "section_title", "gallery", "carousel")

	gallery, _ := out.Fields[1].Attributes["fields"].([]schema.Field)
	assertNames(t, gallery, "image", "caption", "alt_text")

	carousel, _ := out.Fields[2].Attributes["fields"].([]schema.Field)
	assertNames(t, carousel, "image", "title", "description")
}

func TestComposeFormOmitsStatusToggle(t *testing.T) {
	composer := compose.New(registry.Default())
	section := content.Section{
		Name: "contact_form",
		Elements: []content.Element{
			{Type: content.ElementInput, Name: "email"},
		},
	}

	out := composer.Section(section, classify.Analysis{Archetype: classify.ArchetypeForm})
	assertNames(t, out.Fields, "section_title", "form_description", "form_fields", "submit_button_text")

	nested, _ := out.Fields[2].Attributes["fields"].([]schema.Field)
	assertNames(t, nested, "label", "type", "placeholder", "required")
}

func TestComposeFormWithoutInputsSkipsRepeater(t *testing.T) {
	composer := compose.New(registry.Default())
	section := content.Section{
		Name:     "signup",
		Elements: []content.Element{{Type: content.ElementText, Content: "Join us"}},
	}

	out := composer.Section(section, classify.Analysis{Archetype: classify.ArchetypeForm})
	assertNames(t, out.Fields, "section_title", "form_description", "submit_button_text")
}

func TestComposeSingleGatesIndependently(t *testing.T) {
	composer := compose.New(registry.Default())
	section := content.Section{
		Name: "hero",
		Elements: []content.Element{
			{Type: content.ElementText, Role: content.RoleHeading, Content: "Welcome"},
			{Type: content.ElementText, Role: content.RoleDescription, Content: "A long body of text."},
			{Type: content.ElementImage, Content: "hero.jpg"},
			{Type: content.ElementButton, Role: content.RoleCTA, Content: "Go"},
		},
	}

	out := composer.Section(section, classify.Analysis{Archetype: classify.ArchetypeSingle})
	assertNames(t, out.Fields, "section_title", "content", "image", "cta_text", "cta_link")

	// Image only: every other gate stays closed.
	out = composer.Section(content.Section{
		Name:     "divider",
		Elements: []content.Element{{Type: content.ElementImage, Content: "line.png"}},
	}, classify.Analysis{Archetype: classify.ArchetypeSingle})
	assertNames(t, out.Fields, "image")
}

func TestComposeEmptySectionDegradesToGeneric(t *testing.T) {
	composer := compose.New(registry.Default())

	out := composer.Section(content.Section{Name: "mystery"}, classify.Analysis{Archetype: classify.ArchetypeRepeater})
	assertNames(t, out.Fields, "status", "section_title", "content")
	if out.Fields[2].Kind != schema.KindTexteditor {
		t.Fatalf("expected texteditor content field, got %s", out.Fields[2].Kind)
	}
}

func TestComposeFallsBackWhenKindUnsupported(t *testing.T) {
	// A registry without toggle or texteditor forces the fallback path.
	reg := registry.New(
		registry.Definition{Kind: schema.KindInput, Required: []string{"type"}},
	)
	logger := &recordingLogger{}
	composer := compose.New(reg, compose.WithLogger(logger))

	out := composer.Section(content.Section{Name: "mystery"}, classify.Analysis{Archetype: classify.ArchetypeSingle})
	assertNames(t, out.Fields, "status", "section_title", "content")
	for _, field := range out.Fields {
		if field.Kind != schema.KindInput {
			t.Fatalf("expected fallback input field for %q, got %s", field.Name, field.Kind)
		}
	}
	if len(logger.warnings) != 0 {
		t.Fatalf("unsupported kinds must degrade without a report, got %v", logger.warnings)
	}
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, msg)
}

func TestComposeReportsRegistryMisconfiguration(t *testing.T) {
	// A required attribute with no example default and no built-in fallback
	// is a registry defect, not an input defect: the field still degrades,
	// but the problem is reported.
	reg := registry.New(
		registry.Definition{Kind: schema.KindInput, Required: []string{"mystery_attr"}},
	)
	logger := &recordingLogger{}
	composer := compose.New(reg, compose.WithLogger(logger))

	out := composer.Section(content.Section{
		Name: "hero",
		Elements: []content.Element{
			{Type: content.ElementText, Role: content.RoleHeading, Content: "Welcome"},
		},
	}, classify.Analysis{Archetype: classify.ArchetypeSingle})

	assertNames(t, out.Fields, "section_title")
	if out.Fields[0].Attributes["type"] != "text" {
		t.Fatalf("expected fallback text input, got %v", out.Fields[0].Attributes)
	}
	if len(logger.warnings) != 1 {
		t.Fatalf("expected exactly one report, got %v", logger.warnings)
	}
}
