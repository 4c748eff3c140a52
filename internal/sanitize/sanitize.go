// Package sanitize cleans posting bodies before analysis: HTML tag removal
// for content fetched from the content system and entity/whitespace
// normalization for the restructuring pipeline.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// entityReplacer fixes the entity remnants that survive the content
// system's own encoding, beyond what standard unescaping covers.
var entityReplacer = strings.NewReplacer(
	"&#8211;", "-",
	"&ndash;", "-",
	"&#8217;", "'",
	"&amp;", "&",
	"&nbsp;", " ",
)

// NormalizeBody decodes leftover HTML character entities and collapses all
// whitespace runs to single spaces. This is the text the sectionizer
// operates on.
func NormalizeBody(raw string) string {
	cleaned := entityReplacer.Replace(raw)
	cleaned = html.UnescapeString(cleaned)
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// StripHTML extracts the visible text from rendered HTML. Falls back to the
// input unchanged if it cannot be parsed as a document.
func StripHTML(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}
	doc.Find("script, style").Remove()
	return doc.Text()
}
