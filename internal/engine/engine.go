// Package engine composes the analysis pipeline into the two operations the
// rest of the system consumes: Analyze and Optimize. The engine is
// stateless after construction and safe for concurrent use; every call is a
// pure function of the posting it receives.
package engine

import (
	"github.com/jonathan/posting-optimizer/internal/analysis"
	"github.com/jonathan/posting-optimizer/internal/rules"
	"github.com/jonathan/posting-optimizer/internal/sanitize"
	"github.com/jonathan/posting-optimizer/internal/sections"
	"github.com/jonathan/posting-optimizer/internal/seo"
	"github.com/jonathan/posting-optimizer/internal/types"
)

// Engine runs the posting analysis and restructuring pipeline.
type Engine struct {
	rules       *rules.Rules
	extractor   *analysis.Extractor
	sectionizer *sections.Sectionizer
}

// New creates an engine bound to the given rule tables.
func New(r *rules.Rules) *Engine {
	return &Engine{
		rules:       r,
		extractor:   analysis.NewExtractor(r),
		sectionizer: sections.NewSectionizer(r),
	}
}

// Analyze runs keyword extraction, the SEO builders, scoring, and the
// recommendation checks. The posting is never mutated.
func (e *Engine) Analyze(p *types.JobPosting) types.AnalysisResult {
	candidates := e.extractor.ExtractKeywords(p)
	focus := seo.BuildFocusPhrase(candidates, p)
	score := analysis.Score(p, candidates, focus)

	return types.AnalysisResult{
		Score:           score,
		Recommendations: analysis.Recommend(p, score, candidates),
		FocusKeyphrase:  focus,
		MetaDescription: seo.BuildMetaDescription(p),
		OptimizedTitle:  seo.NormalizeTitle(e.rules, p.Title),
	}
}

// Optimize is a superset of Analyze that additionally restructures the
// posting body into a sectioned HTML document. When no sections are
// detected the content falls back to the normalized body text.
func (e *Engine) Optimize(p *types.JobPosting) types.OptimizationResult {
	a := e.Analyze(p)

	body := sanitize.NormalizeBody(p.Description)
	detected := e.sectionizer.Sectionize(body)

	return types.OptimizationResult{
		Score:            a.Score,
		Recommendations:  a.Recommendations,
		FocusKeyphrase:   a.FocusKeyphrase,
		MetaDescription:  a.MetaDescription,
		OptimizedTitle:   a.OptimizedTitle,
		OptimizedContent: sections.Assemble(body, detected),
	}
}
