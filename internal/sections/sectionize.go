// Package sections partitions a free-text posting body into logical
// sections and renders them back into a structured HTML document.
//
// Detection uses keyword-anchored windows applied over a mutable working
// buffer: each category removes its captured span before the next category
// scans, so the processing order (contact, responsibilities, requirements,
// skills, company, application, overview) is part of the contract.
package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/posting-optimizer/internal/rules"
	"github.com/jonathan/posting-optimizer/internal/types"
)

const (
	// sectionWindow is how many characters after the anchor keyword a
	// category may capture.
	sectionWindow = 500

	maxListItems   = 8
	minItemLen     = 10
	maxItemLen     = 150
	maxOverviewLen = 200
	maxCompanyLen  = 300
)

var (
	// contactRe finds a contact cue word followed, within a bounded
	// lookahead, by a phone-shaped or email-shaped token.
	contactRe = regexp.MustCompile(
		`(?i)(?:contact|call|phone|email)\b[\s\S]{0,80}?` +
			`(?:\+?\d[\d\s().-]{6,}\d|[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)

	// bulletRe splits captured spans on bullet-style delimiters.
	bulletRe = regexp.MustCompile(`[-•·]`)

	// applicationKeywords anchor the how-to-apply capture. The category is
	// fixed rather than rule-driven: it runs after every rule category so it
	// can only claim text none of them wanted.
	applicationKeywords = []string{"how to apply", "application process", "applications close"}
)

// Sectionizer detects logical sections inside unstructured posting bodies.
type Sectionizer struct {
	rules *rules.Rules
}

// NewSectionizer creates a sectionizer backed by the given rule tables.
func NewSectionizer(r *rules.Rules) *Sectionizer {
	return &Sectionizer{rules: r}
}

// Sectionize partitions a normalized posting body. Contact information is
// extracted first (all matching spans removed, the first kept), then each
// category in rule order captures a bounded window anchored at the first of
// its keywords present in the remaining text. Whatever is left becomes the
// overview.
func (s *Sectionizer) Sectionize(body string) types.ContentSections {
	var out types.ContentSections
	working := body

	if m := contactRe.FindString(working); m != "" {
		out.ContactInfo = strings.TrimSpace(m)
		working = contactRe.ReplaceAllString(working, "")
	}

	for _, rule := range s.rules.Sections {
		span, rest := captureWindow(working, rule.Keywords)
		if span == "" {
			continue
		}
		working = rest

		switch rule.Name {
		case "responsibilities":
			out.Responsibilities = splitItems(span)
		case "requirements":
			out.Requirements = splitItems(span)
		case "skills":
			out.Skills = splitItems(span)
		case "company":
			out.CompanyInfo = truncate(strings.TrimSpace(span), maxCompanyLen)
		}
	}

	if span, rest := captureWindow(working, applicationKeywords); span != "" {
		out.ApplicationInfo = truncate(strings.TrimSpace(span), maxCompanyLen)
		working = rest
	}

	out.Overview = truncate(strings.TrimSpace(working), maxOverviewLen)
	return out
}

// captureWindow finds the first keyword (in priority order) present in the
// text, captures the keyword plus up to sectionWindow following characters,
// and returns the span together with the text minus that exact span.
func captureWindow(text string, keywords []string) (span, rest string) {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		idx := strings.Index(lower, strings.ToLower(kw))
		if idx < 0 {
			continue
		}
		end := idx + len(kw) + sectionWindow
		if end > len(text) {
			end = len(text)
		}
		return text[idx:end], text[:idx] + text[end:]
	}
	return "", text
}

// splitItems breaks a captured span on bullet delimiters and keeps the
// pieces that look like list entries.
func splitItems(span string) []string {
	items := make([]string, 0, maxListItems)
	for _, piece := range bulletRe.Split(span, -1) {
		piece = strings.TrimSpace(piece)
		if len(piece) < minItemLen || len(piece) >= maxItemLen {
			continue
		}
		items = append(items, piece)
		if len(items) == maxListItems {
			break
		}
	}
	return items
}

// truncate limits a string to max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
