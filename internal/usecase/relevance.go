package usecase

import (
	"strings"

	"github.com/aislefinder/backend/internal/domain"
)

// matcherStopWords are function words that carry no matching signal
var matcherStopWords = map[string]bool{
	// Articles
	"a": true, "an": true, "the": true,
	// Prepositions
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "by": true, "from": true,
	// Conjunctions
	"and": true, "or": true, "but": true, "nor": true,
}

// nonGroceryIndicators flag catalog records that are not physical grocery
// items (gift cards, digital goods, fees, service products)
var nonGroceryIndicators = []string{
	"gift card",
	"giftcard",
	"digital",
	"download",
	"membership",
	"subscription",
	"delivery fee",
	"service fee",
	"warranty",
	"insurance",
}

// minMatchTokenLength is the shortest token considered reliable enough for
// the substring check
const minMatchTokenLength = 3

// IsRelevant decides whether a catalog candidate plausibly matches the
// requested item. This is a heuristic boolean gate, not a ranking function:
// the resolver calls it to validate the top search result and, failing that,
// to scan a short list of alternates.
//
// Rules, in priority order:
//   - A search term of 3 characters or fewer is too short to judge; accept.
//   - Any term token of length >= 3 (after stop-word removal) appearing as a
//     case-insensitive substring of the description means accept.
//   - A description carrying a non-grocery indicator phrase is rejected.
//   - No judgeable tokens at all means we cannot tell; accept by default.
//
// The indicator rejection outranks the no-tokens default on purpose: a
// stop-word-only term against "Prepaid Gift Card" stays rejected rather
// than sliding through on the default, so the indicator list still filters
// candidates the token check could never judge.
func IsRelevant(searchTerm string, candidate domain.CatalogProduct) bool {
	term := strings.TrimSpace(searchTerm)
	if len(term) <= minMatchTokenLength {
		return true
	}

	description := strings.ToLower(candidate.Description)

	var tokens []string
	for _, token := range strings.Fields(strings.ToLower(term)) {
		if !matcherStopWords[token] {
			tokens = append(tokens, token)
		}
	}

	for _, token := range tokens {
		if len(token) >= minMatchTokenLength && strings.Contains(description, token) {
			return true
		}
	}

	if containsNonGroceryIndicator(description) {
		return false
	}

	if len(tokens) == 0 {
		return true
	}

	return false
}

// containsNonGroceryIndicator reports whether a lowered description mentions
// any non-grocery indicator phrase
func containsNonGroceryIndicator(description string) bool {
	for _, indicator := range nonGroceryIndicators {
		if strings.Contains(description, indicator) {
			return true
		}
	}
	return false
}
