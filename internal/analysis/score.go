package analysis

import (
	"strings"

	"github.com/jonathan/posting-optimizer/internal/types"
)

const (
	baseScore = 50
	maxScore  = 100
	minScore  = 0

	minTitleLen       = 10
	maxTitleLen       = 60
	minDescriptionLen = 150
	maxDescriptionLen = 2000
	minTopFrequency   = 2
	maxTopFrequency   = 5
)

// scoreCheck pairs a bonus with the condition that awards it. Checks are
// evaluated in full on every call; there is no early exit.
type scoreCheck struct {
	bonus   int
	applies func() bool
}

// Score computes the 0-100 quality score for a posting: a base of 50 plus
// nine independent bonuses, clamped. The bonuses can sum past 100; the clamp
// is a deliberate ceiling. The focus phrase is part of the call contract but
// does not enter the arithmetic.
func Score(p *types.JobPosting, candidates []types.KeywordCandidate, focusPhrase string) int {
	_ = focusPhrase

	checks := []scoreCheck{
		{10, func() bool { return len(p.Title) >= minTitleLen && len(p.Title) <= maxTitleLen }},
		{10, func() bool { return len(p.Description) >= minDescriptionLen && len(p.Description) <= maxDescriptionLen }},
		{10, func() bool {
			return len(candidates) > 0 &&
				candidates[0].Frequency >= minTopFrequency &&
				candidates[0].Frequency <= maxTopFrequency
		}},
		{5, p.HasCompany},
		{5, p.HasLocation},
		{5, p.HasJobType},
		{5, p.HasCategory},
		{10, func() bool { return strings.TrimSpace(p.FocusKeyphrase) != "" }},
		{10, func() bool { return strings.TrimSpace(p.MetaDescription) != "" }},
	}

	score := baseScore
	for _, c := range checks {
		if c.applies() {
			score += c.bonus
		}
	}

	if score > maxScore {
		score = maxScore
	}
	if score < minScore {
		score = minScore
	}
	return score
}
