package sections

import (
	"strings"

	"github.com/jonathan/posting-optimizer/internal/types"
)

// Section headings in the fixed emission order.
const (
	headingOverview         = "Overview"
	headingResponsibilities = "Key Responsibilities"
	headingRequirements     = "Requirements"
	headingSkills           = "Required Skills"
	headingCompany          = "About the Company"
	headingApplication      = "How to Apply"
	headingContact          = "Contact Information"
)

// Assemble renders detected sections into an HTML document, emitting a
// heading plus paragraph or bulleted list only for sections with content.
// When nothing was detected it returns the normalized body verbatim, so the
// result is never empty for a non-empty input body.
func Assemble(normalizedBody string, s types.ContentSections) string {
	if s.IsEmpty() {
		return normalizedBody
	}

	var sb strings.Builder
	writeParagraph(&sb, headingOverview, s.Overview)
	writeList(&sb, headingResponsibilities, s.Responsibilities)
	writeList(&sb, headingRequirements, s.Requirements)
	writeList(&sb, headingSkills, s.Skills)
	writeParagraph(&sb, headingCompany, s.CompanyInfo)
	writeParagraph(&sb, headingApplication, s.ApplicationInfo)
	writeParagraph(&sb, headingContact, s.ContactInfo)
	return strings.TrimSpace(sb.String())
}

// writeParagraph emits a heading and paragraph when text is non-empty.
func writeParagraph(sb *strings.Builder, heading, text string) {
	if text == "" {
		return
	}
	sb.WriteString("<h3>" + heading + "</h3>\n")
	sb.WriteString("<p>" + text + "</p>\n\n")
}

// writeList emits a heading and bulleted list when items exist.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("<h3>" + heading + "</h3>\n<ul>\n")
	for _, item := range items {
		sb.WriteString("<li>" + item + "</li>\n")
	}
	sb.WriteString("</ul>\n\n")
}
