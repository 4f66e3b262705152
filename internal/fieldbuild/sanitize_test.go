package fieldbuild_test

import (
	"regexp"
	"testing"

	"github.com/tobidsn/anticms-schemagen/internal/fieldbuild"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already sanitized", input: "hero_title", want: "hero_title"},
		{name: "mixed case", input: "HeroTitle", want: "herotitle"},
		{name: "spaces and punctuation", input: "Hero Title!", want: "hero_title"},
		{name: "repeated separators", input: "hero--__title", want: "hero_title"},
		{name: "leading and trailing junk", input: "__Hero Title__", want: "hero_title"},
		{name: "digits survive", input: "Image 2x", want: "image_2x"},
		{name: "only junk", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	shape := regexp.MustCompile(`^[a-z0-9_]*$`)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fieldbuild.SanitizeName(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
			if !shape.MatchString(got) {
				t.Fatalf("sanitized name %q violates [a-z0-9_]*", got)
			}
			if again := fieldbuild.SanitizeName(got); again != got {
				t.Fatalf("sanitize is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
