package seo

import (
	"fmt"
	"strings"

	"github.com/jonathan/posting-optimizer/internal/types"
)

const (
	// metaMaxLen is a hard contract: search engines truncate longer
	// descriptions, so the builder never returns more than 160 characters.
	metaMaxLen = 160
	ellipsis   = "..."

	defaultCompany  = "Leading company"
	defaultLocation = "South Africa"
	defaultJobType  = "position"
)

// BuildMetaDescription synthesizes the bounded summary sentence for a
// posting. Output longer than 160 characters is cut to 157 and closed with
// an ellipsis, yielding exactly 160. Lengths are counted in runes so the
// cap is exact for multibyte input.
func BuildMetaDescription(p *types.JobPosting) string {
	company := strings.TrimSpace(p.Company)
	if company == "" {
		company = defaultCompany
	}
	location := strings.TrimSpace(p.Location)
	if location == "" {
		location = defaultLocation
	}
	jobType := strings.TrimSpace(p.JobType)
	if jobType == "" {
		jobType = defaultJobType
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Join %s as a %s in %s. ", company, p.Title, location)
	if salary := strings.TrimSpace(p.Salary); salary != "" {
		fmt.Fprintf(&sb, "Competitive salary %s. ", salary)
	}
	fmt.Fprintf(&sb, "Apply now for this exciting %s opportunity.", jobType)

	desc := sb.String()
	if runes := []rune(desc); len(runes) > metaMaxLen {
		desc = string(runes[:metaMaxLen-len(ellipsis)]) + ellipsis
	}
	return desc
}
