// Package seo derives search metadata from a job posting: the normalized
// title, the focus keyphrase, and the bounded meta description.
package seo

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/posting-optimizer/internal/rules"
)

// localitySuffix is appended when a title carries no locality marker.
const localitySuffix = " - South Africa"

var (
	// Hyphens stay so a previously appended locality suffix survives a
	// second pass unchanged.
	punctuationRe = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)

	// NoLower keeps the remainder of each word untouched, so acronyms like
	// "IT" survive the re-casing.
	titleCaser = cases.Title(language.English, cases.NoLower)
)

// NormalizeTitle cleans and re-cases a posting title: punctuation becomes
// spaces, whitespace runs collapse, and every word gets an upper-cased first
// letter. If the result contains no locality marker, the South Africa suffix
// is appended. The function is total and idempotent on titles that already
// carry a marker.
func NormalizeTitle(r *rules.Rules, title string) string {
	cleaned := punctuationRe.ReplaceAllString(title, " ")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = titleCaser.String(cleaned)

	lower := strings.ToLower(cleaned)
	for _, marker := range r.LocalityMarkers {
		if strings.Contains(lower, marker) {
			return cleaned
		}
	}
	return cleaned + localitySuffix
}
