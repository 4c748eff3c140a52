package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/posting-optimizer/internal/types"
)

func TestAssembleEmissionOrder(t *testing.T) {
	s := types.ContentSections{
		Overview:         "A great role.",
		Responsibilities: []string{"Care for patients"},
		Requirements:     []string{"Registered with SANC"},
		Skills:           []string{"Clear communication"},
		CompanyInfo:      "A leading clinic group.",
		ApplicationInfo:  "Apply online.",
		ContactInfo:      "jobs@example.co.za",
	}

	doc := Assemble("ignored", s)

	headings := []string{
		headingOverview, headingResponsibilities, headingRequirements,
		headingSkills, headingCompany, headingApplication, headingContact,
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(doc, "<h3>"+h+"</h3>")
		require.GreaterOrEqual(t, idx, 0, "heading %q missing", h)
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
}

func TestAssembleSkipsEmptySections(t *testing.T) {
	s := types.ContentSections{
		Overview:     "A great role.",
		Requirements: []string{"Registered with SANC"},
	}
	doc := Assemble("ignored", s)

	assert.Contains(t, doc, "<h3>Overview</h3>")
	assert.Contains(t, doc, "<li>Registered with SANC</li>")
	assert.NotContains(t, doc, headingResponsibilities)
	assert.NotContains(t, doc, headingContact)
}

func TestAssembleFallback(t *testing.T) {
	doc := Assemble("plain body text", types.ContentSections{})
	assert.Equal(t, "plain body text", doc, "no sections means the normalized body is returned verbatim")
}

func TestAssembleListRendering(t *testing.T) {
	s := types.ContentSections{
		Responsibilities: []string{"Care for patients", "Keep records current"},
	}
	doc := Assemble("ignored", s)

	first := strings.Index(doc, "<li>Care for patients</li>")
	second := strings.Index(doc, "<li>Keep records current</li>")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "list items keep their order")
}
