package analysis

import (
	"fmt"
	"strings"

	"github.com/jonathan/posting-optimizer/internal/types"
)

// reviewThreshold is the score below which an overall-review item is added.
const reviewThreshold = 70

// Recommendation messages. Output order is check order, not severity order.
const (
	recTitleTooShort       = "Title is too short - use at least 10 characters so the role reads clearly in search results"
	recDescriptionTooShort = "Description is too short - add more detail, at least 150 characters"
	recMissingCompany      = "Add a company name to build trust with candidates"
	recMissingLocation     = "Add a location so the posting shows up in local searches"
	recMissingFocus        = "Set a focus keyphrase to target search traffic"
	recMissingMeta         = "Add a meta description to improve click-through from search results"
	recKeywordFrequency    = "Use the main keyword %q more often in the description"
	recOverallReview       = "Overall SEO score is below 70 - review the posting content and metadata"
)

// recCheck pairs a failing condition with the message it emits.
type recCheck struct {
	failed  bool
	message string
}

// Recommend evaluates the fixed list of posting checks in order and returns
// a recommendation for each one that fails. Every check runs on every call;
// the result is empty only when all checks pass.
func Recommend(p *types.JobPosting, score int, candidates []types.KeywordCandidate) []string {
	checks := []recCheck{
		{len(p.Title) < minTitleLen, recTitleTooShort},
		{len(p.Description) < minDescriptionLen, recDescriptionTooShort},
		{!p.HasCompany(), recMissingCompany},
		{!p.HasLocation(), recMissingLocation},
		{strings.TrimSpace(p.FocusKeyphrase) == "", recMissingFocus},
		{strings.TrimSpace(p.MetaDescription) == "", recMissingMeta},
	}
	if len(candidates) > 0 && candidates[0].Frequency < minTopFrequency {
		checks = append(checks, recCheck{true, fmt.Sprintf(recKeywordFrequency, candidates[0].Term)})
	}
	checks = append(checks, recCheck{score < reviewThreshold, recOverallReview})

	recs := make([]string, 0, len(checks))
	for _, c := range checks {
		if c.failed {
			recs = append(recs, c.message)
		}
	}
	return recs
}
