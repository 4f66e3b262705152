// Package classify scores a normalized section against the structural
// archetypes and selects the first one whose confidence clears its
// threshold, in a fixed precedence order: collection and form signals are
// specific enough to short-circuit before the weaker general heuristics run.
package classify

import (
	"fmt"

	"github.com/tobidsn/anticms-schemagen/pkg/content"
	"github.com/tobidsn/anticms-schemagen/pkg/schema"
)

// Archetype is the closed set of structural classifications a section can
// receive.
type Archetype int

const (
	ArchetypeSingle Archetype = iota
	ArchetypePostCollection
	ArchetypeRepeater
	ArchetypeGroup
	ArchetypeMediaGallery
	ArchetypeForm
)

func (a Archetype) String() string {
	switch a {
	case ArchetypePostCollection:
		return "post_collection"
	case ArchetypeRepeater:
		return "repeater"
	case ArchetypeGroup:
		return "group"
	case ArchetypeMediaGallery:
		return "media_gallery"
	case ArchetypeForm:
		return "form"
	case ArchetypeSingle:
		return "single"
	default:
		return fmt.Sprintf("archetype(%d)", int(a))
	}
}

// FieldSuggestion sketches the field a section element would become. It is
// advisory: the synthesizer owns final field construction.
type FieldSuggestion struct {
	Name  string
	Kind  schema.FieldKind
	Label string
}

// Analysis is the ephemeral classification result. It is never serialized.
type Analysis struct {
	Archetype   Archetype
	Confidence  float64
	Reasoning   []string
	Suggestions []FieldSuggestion
}

// Classify evaluates the archetype scorers in precedence order and returns
// the first result above its threshold, falling back to single.
func Classify(section content.Section) Analysis {
	suggestions := suggestFields(section.Elements)

	if score, reasons := scorePostCollection(section); score >= postCollectionThreshold {
		return Analysis{Archetype: ArchetypePostCollection, Confidence: clamp(score), Reasoning: reasons, Suggestions: suggestions}
	}
	if score, reasons := scoreRepeater(section); score >= repeaterThreshold {
		return Analysis{Archetype: ArchetypeRepeater, Confidence: clamp(score), Reasoning: reasons, Suggestions: suggestions}
	}
	if score, reasons := scoreGroup(section); score >= groupThreshold {
		return Analysis{Archetype: ArchetypeGroup, Confidence: clamp(score), Reasoning: reasons, Suggestions: suggestions}
	}
	if ok, reasons := detectMediaGallery(section); ok {
		return Analysis{Archetype: ArchetypeMediaGallery, Confidence: mediaGalleryConfidence, Reasoning: reasons, Suggestions: suggestions}
	}
	if ok, reasons := detectForm(section); ok {
		return Analysis{Archetype: ArchetypeForm, Confidence: formConfidence, Reasoning: reasons, Suggestions: suggestions}
	}

	confidence := singleBaseConfidence - singleElementPenalty*float64(len(section.Elements))
	if confidence < singleMinConfidence {
		confidence = singleMinConfidence
	}
	return Analysis{
		Archetype:   ArchetypeSingle,
		Confidence:  confidence,
		Reasoning:   []string{"no stronger archetype matched"},
		Suggestions: suggestions,
	}
}

func clamp(score float64) float64 {
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}
