package generator_test

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/tobidsn/anticms-schemagen/pkg/generator"
	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

func TestGenerateRequiresContext(t *testing.T) {
	gen := generator.New()
	if _, err := gen.Generate(nil, generator.Request{Name: "x", Label: "X"}); err == nil { //nolint:staticcheck
		t.Fatal("expected error for nil context")
	}
}

func TestGenerateValidatesIdentifiers(t *testing.T) {
	gen := generator.New()

	_, err := gen.Generate(context.Background(), generator.Request{Label: "Landing"})
	if err == nil {
		t.Fatal("expected validation error for missing name")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}

	_, err = gen.Generate(context.Background(), generator.Request{Name: "landing"})
	if err == nil {
		t.Fatal("expected validation error for missing label")
	}

	_, err = gen.Generate(context.Background(), generator.Request{Name: "!!!", Label: "Landing"})
	if err == nil {
		t.Fatal("expected validation error for unsanitizable name")
	}
}

func TestGenerateFromPrompt(t *testing.T) {
	gen := generator.New()

	template, err := gen.Generate(context.Background(), generator.Request{
		Name:   "Landing Page!",
		Label:  "Landing Page",
		Prompt: "Landing page with a hero and customer testimonials, make it multilingual",
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if template.Name != "landing_page" {
		t.Fatalf("expected sanitized template name, got %q", template.Name)
	}
	if !template.Multilanguage {
		t.Fatal("expected multilanguage hint to apply")
	}
	if template.IsMultiple {
		t.Fatal("pages prompt must not mark the template multi-entry")
	}
	if len(template.Components) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(template.Components))
	}
	for i, section := range template.Components {
		if section.Order != i+1 {
			t.Fatalf("section %d: expected order %d, got %d", i, i+1, section.Order)
		}
		if len(section.Fields) == 0 {
			t.Fatalf("section %q has no fields", section.KeyName)
		}
	}
}

func TestGeneratePostsHintSetsIsMultiple(t *testing.T) {
	gen := generator.New()

	template, err := gen.Generate(context.Background(), generator.Request{
		Name:   "blog",
		Label:  "Blog",
		Prompt: "A blog listing recent articles",
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !template.IsMultiple {
		t.Fatal("expected posts hint to mark the template multi-entry")
	}

	// An explicit caller choice beats the hint.
	no := false
	template, err = gen.Generate(context.Background(), generator.Request{
		Name:       "blog",
		Label:      "Blog",
		Prompt:     "A blog listing recent articles",
		IsMultiple: &no,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if template.IsMultiple {
		t.Fatal("expected explicit IsMultiple=false to win over the hint")
	}
}

func TestGenerateAppendsCTASection(t *testing.T) {
	gen := generator.New()

	template, err := gen.Generate(context.Background(), generator.Request{
		Name:   "about",
		Label:  "About",
		Prompt: "An about page with a call to action",
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	last := template.Components[len(template.Components)-1]
	if last.KeyName != "call_to_action" {
		t.Fatalf("expected trailing call_to_action section, got %q", last.KeyName)
	}

	names := map[string]bool{}
	for _, field := range last.Fields {
		names[field.Name] = true
	}
	if !names["cta_text"] || !names["cta_link"] {
		t.Fatalf("expected cta_text and cta_link fields, got %v", names)
	}
}

func TestGenerateFromData(t *testing.T) {
	gen := generator.New()

	template, err := gen.Generate(context.Background(), generator.Request{
		Name:  "product_page",
		Label: "Product Page",
		Data:  []byte(`{"features": [{"title": "Fast", "description": "Quick", "icon": "bolt.png", "link": "https://example.com"}]}`),
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(template.Components) != 1 {
		t.Fatalf("expected 1 section, got %d", len(template.Components))
	}

	section := template.Components[0]
	if section.KeyName != "features" {
		t.Fatalf("expected features section, got %q", section.KeyName)
	}
	var repeater *schema.Field
	for i := range section.Fields {
		if section.Fields[i].Kind == schema.KindRepeater {
			repeater = &section.Fields[i]
		}
	}
	if repeater == nil {
		t.Fatalf("expected a repeater field, got %v", section.Fields)
	}
}

func TestGenerateRejectsInvalidData(t *testing.T) {
	gen := generator.New()
	_, err := gen.Generate(context.Background(), generator.Request{
		Name:  "x",
		Label: "X",
		Data:  []byte(`not json`),
	})
	if err == nil {
		t.Fatal("expected error for invalid JSON data")
	}
}

func TestGenerateRoutesRawPayload(t *testing.T) {
	gen := generator.New()

	template, err := gen.Generate(context.Background(), generator.Request{
		Name:  "scraped",
		Label: "Scraped",
		Raw:   []byte(`<section data-section="hero"><h1>Hi there</h1></section>`),
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(template.Components) != 1 || template.Components[0].KeyName != "hero" {
		t.Fatalf("expected markup-routed hero section, got %+v", template.Components)
	}
}

func TestGenerateWithoutInputYieldsEmptyTemplate(t *testing.T) {
	gen := generator.New()

	template, err := gen.Generate(context.Background(), generator.Request{Name: "bare", Label: "Bare"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(template.Components) != 0 {
		t.Fatalf("expected no components, got %d", len(template.Components))
	}
}
