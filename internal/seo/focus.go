package seo

import (
	"slices"
	"strings"

	"github.com/jonathan/posting-optimizer/internal/types"
)

// maxFocusTerms caps the focus phrase at three space-joined entries.
const maxFocusTerms = 3

// BuildFocusPhrase derives a short focus phrase from the top-ranked keyword
// terms plus the posting location. A location that is not already among the
// chosen terms displaces the third keyword, keeping the phrase at three
// entries. Returns the empty string only when all sources are empty.
func BuildFocusPhrase(candidates []types.KeywordCandidate, p *types.JobPosting) string {
	parts := make([]string, 0, maxFocusTerms+1)
	for _, c := range candidates {
		if len(parts) == maxFocusTerms {
			break
		}
		parts = append(parts, c.Term)
	}

	location := cleanLocation(p.Location)
	if location != "" && !slices.Contains(parts, location) {
		if len(parts) == maxFocusTerms {
			parts = parts[:maxFocusTerms-1]
		}
		parts = append(parts, location)
	}

	return strings.Join(parts, " ")
}

// cleanLocation lower-cases a location, strips punctuation, and trims it.
func cleanLocation(location string) string {
	cleaned := punctuationRe.ReplaceAllString(strings.ToLower(location), " ")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
