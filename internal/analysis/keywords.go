// Package analysis provides keyword extraction, quality scoring, and
// recommendation generation for job postings. Every function is a pure
// function of its inputs and is safe for concurrent use.
package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/posting-optimizer/internal/rules"
	"github.com/jonathan/posting-optimizer/internal/types"
)

const (
	// Candidate set size after ranking
	maxKeywords = 20
	// Minimum token length kept by the extractor
	minTokenLen = 3

	// Relevance weights assigned by the domain-keyword match
	domainRelevance = 2.0
	baseRelevance   = 1.0
)

// nonWordRe matches everything that is not a word character or whitespace.
var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Extractor turns posting text into ranked keyword candidates.
type Extractor struct {
	rules *rules.Rules
}

// NewExtractor creates an extractor backed by the given rule tables.
func NewExtractor(r *rules.Rules) *Extractor {
	return &Extractor{rules: r}
}

// ExtractKeywords tokenizes the combined title, description, company, and
// location of a posting and returns the top candidates ranked by
// frequency × relevance. The sort is stable, so terms with equal rank keep
// their first-occurrence order in the source text.
func (e *Extractor) ExtractKeywords(p *types.JobPosting) []types.KeywordCandidate {
	corpus := strings.ToLower(strings.Join(
		[]string{p.Title, p.Description, p.Company, p.Location}, " "))
	corpus = nonWordRe.ReplaceAllString(corpus, " ")

	// Count token frequencies, remembering first-occurrence order for the
	// stable tie-break.
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, tok := range strings.Fields(corpus) {
		if len(tok) < minTokenLen || e.rules.IsStopWord(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	candidates := make([]types.KeywordCandidate, 0, len(order))
	for _, term := range order {
		candidates = append(candidates, types.KeywordCandidate{
			Term:      term,
			Frequency: counts[term],
			Relevance: e.Relevance(term),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rank() > candidates[j].Rank()
	})

	if len(candidates) > maxKeywords {
		candidates = candidates[:maxKeywords]
	}
	return candidates
}

// Relevance returns the domain-relevance weight for a term: 2.0 when the
// term contains a domain keyword or is itself contained in one, 1.0
// otherwise. The symmetric substring test is deliberately permissive, so
// "nurse" matches "nursing" and vice versa.
func (e *Extractor) Relevance(term string) float64 {
	for _, kw := range e.rules.DomainKeywords {
		if strings.Contains(term, kw) || strings.Contains(kw, term) {
			return domainRelevance
		}
	}
	return baseRelevance
}
