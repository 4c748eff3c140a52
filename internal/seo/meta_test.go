package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/posting-optimizer/internal/types"
)

func TestBuildMetaDescription(t *testing.T) {
	tests := []struct {
		name     string
		posting  *types.JobPosting
		expected string
	}{
		{
			"All fields present",
			&types.JobPosting{
				Title:    "Nurse",
				Company:  "City Clinic",
				Location: "Durban",
				JobType:  "full-time",
				Salary:   "R18 000 p/m",
			},
			"Join City Clinic as a Nurse in Durban. Competitive salary R18 000 p/m. Apply now for this exciting full-time opportunity.",
		},
		{
			"Defaults fill absent fields",
			&types.JobPosting{Title: "Nurse"},
			"Join Leading company as a Nurse in South Africa. Apply now for this exciting position opportunity.",
		},
		{
			"Whitespace fields treated as absent",
			&types.JobPosting{Title: "Nurse", Company: "  ", Location: " "},
			"Join Leading company as a Nurse in South Africa. Apply now for this exciting position opportunity.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildMetaDescription(tt.posting))
		})
	}
}

func TestBuildMetaDescriptionCap(t *testing.T) {
	p := &types.JobPosting{
		Title:   strings.Repeat("Senior Theatre Nurse ", 8),
		Company: "Groote Schuur Private Hospital Group",
	}
	desc := BuildMetaDescription(p)

	assert.Len(t, []rune(desc), 160, "capped output is exactly 160 characters")
	assert.True(t, strings.HasSuffix(desc, "..."), "capped output ends with the ellipsis marker")
}

func TestBuildMetaDescriptionUnderCap(t *testing.T) {
	desc := BuildMetaDescription(&types.JobPosting{Title: "Nurse"})
	assert.LessOrEqual(t, len([]rune(desc)), 160)
	assert.False(t, strings.HasSuffix(desc, "..."))
}
