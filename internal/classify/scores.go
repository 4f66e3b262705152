package classify

import (
	"fmt"
	"strings"

	"github.com/tobidsn/anticms-schemagen/pkg/content"
)

// Empirically tuned weights and thresholds. The values are load-bearing:
// changing any of them changes classification outcomes.
const (
	postCollectionThreshold  = 0.8
	postCollectionSeeMore    = 0.8
	postCollectionNoun       = 0.6
	postCollectionRepetition = 0.4

	repeaterThreshold       = 0.7
	repeaterFlagged         = 0.5
	repeaterManyElements    = 0.3
	repeaterTypePattern     = 0.4
	repeaterNameKeyword     = 0.3
	repeaterMinElementCount = 3

	groupThreshold   = 0.6
	groupFlagged     = 0.4
	groupTypeVariety = 0.3
	groupNameKeyword = 0.3
	groupMinTypes    = 2

	mediaGalleryImageRatio = 0.6
	mediaGalleryConfidence = 0.8

	formConfidence = 0.9

	singleBaseConfidence = 1.0
	singleElementPenalty = 0.1
	singleMinConfidence  = 0.3
)

// collectionNouns are section names that signal an external post collection.
// Matching is exact on the lowered section name.
var collectionNouns = []string{
	"projects", "portfolio", "testimonials", "team", "news", "blog",
	"events", "products", "case_studies",
}

var seeMorePhrases = []string{"see more", "view more", "browse all"}

var repeaterNameKeywords = []string{"list", "grid", "items", "cards", "gallery"}

var groupNameKeywords = []string{"info", "contact", "details", "about", "profile"}

func scorePostCollection(section content.Section) (float64, []string) {
	score := 0.0
	var reasons []string

	if hasSeeMoreCue(section.Elements) {
		score += postCollectionSeeMore
		reasons = append(reasons, "see-more cue present")
	}
	name := strings.ToLower(section.Name)
	for _, noun := range collectionNouns {
		if name == noun {
			score += postCollectionNoun
			reasons = append(reasons, fmt.Sprintf("section name %q is a collection noun", noun))
			break
		}
	}
	if count := len(section.Elements); count > 0 {
		if float64(distinctTypes(section.Elements)) < float64(count)/3 {
			score += postCollectionRepetition
			reasons = append(reasons, "element types repeat strongly")
		}
	}
	return score, reasons
}

func scoreRepeater(section content.Section) (float64, []string) {
	score := 0.0
	var reasons []string

	if section.Hints.Repeater {
		score += repeaterFlagged
		reasons = append(reasons, "flagged as repeater upstream")
	}
	count := len(section.Elements)
	if count > repeaterMinElementCount {
		score += repeaterManyElements
		reasons = append(reasons, fmt.Sprintf("%d elements", count))
	}
	if count > 0 && float64(distinctTypes(section.Elements)) < float64(count)/2 {
		score += repeaterTypePattern
		reasons = append(reasons, "repeating element type pattern")
	}
	if containsAnyKeyword(section.Name, repeaterNameKeywords) {
		score += repeaterNameKeyword
		reasons = append(reasons, "list-like section name")
	}
	return score, reasons
}

func scoreGroup(section content.Section) (float64, []string) {
	score := 0.0
	var reasons []string

	if section.Hints.Group {
		score += groupFlagged
		reasons = append(reasons, "flagged as group upstream")
	}
	if distinctTypes(section.Elements) > groupMinTypes {
		score += groupTypeVariety
		reasons = append(reasons, "varied element types")
	}
	if containsAnyKeyword(section.Name, groupNameKeywords) {
		score += groupNameKeyword
		reasons = append(reasons, "record-like section name")
	}
	return score, reasons
}

func detectMediaGallery(section content.Section) (bool, []string) {
	count := len(section.Elements)
	if count == 0 {
		return false, nil
	}
	images := 0
	for _, element := range section.Elements {
		if element.Type == content.ElementImage {
			images++
		}
	}
	ratio := float64(images) / float64(count)
	if ratio > mediaGalleryImageRatio {
		return true, []string{fmt.Sprintf("image ratio %.2f", ratio)}
	}
	return false, nil
}

func detectForm(section content.Section) (bool, []string) {
	for _, element := range section.Elements {
		if element.Type == content.ElementInput {
			return true, []string{"input elements present"}
		}
	}
	return false, nil
}

func hasSeeMoreCue(elements []content.Element) bool {
	for _, element := range elements {
		if element.Role == content.RoleSeeMore {
			return true
		}
		text := strings.ToLower(element.Content)
		for _, phrase := range seeMorePhrases {
			if strings.Contains(text, phrase) {
				return true
			}
		}
	}
	return false
}

func distinctTypes(elements []content.Element) int {
	seen := make(map[content.ElementType]struct{}, len(elements))
	for _, element := range elements {
		seen[element.Type] = struct{}{}
	}
	return len(seen)
}

func containsAnyKeyword(name string, keywords []string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
