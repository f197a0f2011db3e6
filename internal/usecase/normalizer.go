package usecase

import (
	"log"
	"regexp"
	"strings"
)

// Compiled regex patterns for term normalization
var (
	// Matches leading list markup: bullets, checkboxes, "1." / "1)" numbering
	listMarkupPattern = regexp.MustCompile(`^\s*(?:[-*+•>]+\s*|\[\s*[xX]?\s*\]\s*|\d+[.)]\s+)`)

	// Matches quantity phrases like "2 lbs", "128 fl oz", "1.5 liter", "3 cans"
	quantityUnitPattern = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:fl\s*oz|oz|ounces?|lbs?|pounds?|kg|kilograms?|grams?|g|ml|milliliters?|liters?|litres?|gallons?|gal|quarts?|qt|pints?|pt|cups?|tbsp|tsp|dozen|packs?|pk|ct|count|cans?|bottles?|boxes?|bags?|jars?|cartons?|bunch(?:es)?|loaves|loaf|sticks?|heads?|ears?)\b`)

	// Matches bare numeric quantities with no unit (e.g., "2 bananas")
	standaloneNumberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)

	// Multiple spaces cleanup
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// quantityWords are written-out numbers used as quantities
var quantityWords = map[string]bool{
	"one": true, "two": true, "three": true, "four": true, "five": true,
	"six": true, "seven": true, "eight": true, "nine": true, "ten": true,
	"eleven": true, "twelve": true, "dozen": true, "half": true,
	"couple": true, "few": true, "several": true,
}

// fillerWords are articles, filler adjectives, and container nouns that add
// noise to a catalog search
var fillerWords = map[string]bool{
	// Articles and similar
	"a": true, "an": true, "the": true, "of": true, "some": true, "any": true,

	// Filler adjectives
	"fresh": true, "large": true, "medium": true, "small": true, "big": true,
	"little": true, "ripe": true, "nice": true,

	// Container nouns
	"bag": true, "bags": true, "box": true, "boxes": true, "bottle": true,
	"bottles": true, "can": true, "cans": true, "jar": true, "jars": true,
	"carton": true, "cartons": true, "bunch": true, "bunches": true,
	"container": true, "containers": true, "loaf": true, "loaves": true,
	"pack": true, "packs": true, "tub": true, "tubs": true,
	"pouch": true, "pouches": true, "case": true, "cases": true,
}

// TermNormalizer cleans a raw grocery list line into a catalog-searchable term
type TermNormalizer struct {
	enableDebugLogging bool
}

// NewTermNormalizer creates a new term normalizer
func NewTermNormalizer(enableDebugLogging bool) *TermNormalizer {
	return &TermNormalizer{
		enableDebugLogging: enableDebugLogging,
	}
}

// StripListMarkup removes leading checkbox/bullet/numbering markup from a raw
// line. Applied repeatedly so "- [ ] milk" collapses all the way down.
func StripListMarkup(line string) string {
	for {
		stripped := listMarkupPattern.ReplaceAllString(line, "")
		if stripped == line {
			return strings.TrimSpace(line)
		}
		line = stripped
	}
}

// Normalize cleans a raw item string for catalog search.
// Lower-cases, strips list markup, removes quantity phrases and written-out
// quantity words, removes filler words, and collapses whitespace. Never
// returns an empty term: if stripping removes everything, the lowered,
// markup-stripped original comes back unchanged.
func (n *TermNormalizer) Normalize(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ""
	}

	base := StripListMarkup(lowered)

	// Step 1: Remove numeric quantity phrases ("2 lbs", "12 pack")
	cleaned := quantityUnitPattern.ReplaceAllString(base, " ")

	// Step 2: Remove bare numbers left without a unit
	cleaned = standaloneNumberPattern.ReplaceAllString(cleaned, " ")

	// Step 3: Remove written-out quantity words and filler words
	var kept []string
	for _, word := range strings.Fields(cleaned) {
		trimmed := strings.Trim(word, ",.!?;:-'\"")
		if trimmed == "" || quantityWords[trimmed] || fillerWords[trimmed] {
			continue
		}
		kept = append(kept, trimmed)
	}

	// Step 4: Collapse whitespace
	result := multiSpacePattern.ReplaceAllString(strings.Join(kept, " "), " ")
	result = strings.TrimSpace(result)

	// Never hand the catalog an empty query
	if result == "" {
		result = base
	}

	if n.enableDebugLogging {
		log.Printf("[NORMALIZE] Input: %q -> Output: %q", raw, result)
	}

	return result
}
