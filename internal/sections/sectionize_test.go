package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/posting-optimizer/internal/rules"
)

func newTestSectionizer(t *testing.T) *Sectionizer {
	t.Helper()
	r, err := rules.Load()
	require.NoError(t, err)
	return NewSectionizer(r)
}

func TestSectionizeBullets(t *testing.T) {
	s := newTestSectionizer(t)

	body := "We are looking for a nurse. " +
		"Responsibilities: - Provide patient care daily - Maintain accurate records - Support the medical team"
	out := s.Sectionize(body)

	// The three bullet entries survive in original order.
	joined := strings.Join(out.Responsibilities, "|")
	iProvide := strings.Index(joined, "Provide patient care daily")
	iMaintain := strings.Index(joined, "Maintain accurate records")
	iSupport := strings.Index(joined, "Support the medical team")
	require.GreaterOrEqual(t, iProvide, 0)
	require.GreaterOrEqual(t, iMaintain, 0)
	require.GreaterOrEqual(t, iSupport, 0)
	assert.Less(t, iProvide, iMaintain)
	assert.Less(t, iMaintain, iSupport)

	assert.Equal(t, "We are looking for a nurse.", out.Overview)
}

func TestSectionizeItemLengthBand(t *testing.T) {
	s := newTestSectionizer(t)

	long := strings.Repeat("x", 160)
	body := "Requirements: - ok - " + long + " - A valid matric certificate"
	out := s.Sectionize(body)

	for _, item := range out.Requirements {
		assert.GreaterOrEqual(t, len(item), 10)
		assert.Less(t, len(item), 150)
	}
	assert.Contains(t, out.Requirements, "A valid matric certificate")
	assert.NotContains(t, out.Requirements, "ok", "pieces under 10 chars are dropped")
	assert.NotContains(t, out.Requirements, long, "pieces of 150+ chars are dropped")
}

func TestSectionizeItemCap(t *testing.T) {
	s := newTestSectionizer(t)

	var sb strings.Builder
	sb.WriteString("Skills: ")
	for i := 0; i < 12; i++ {
		sb.WriteString("• communicates clearly with others ")
	}
	out := s.Sectionize(sb.String())
	assert.Len(t, out.Skills, 8)
}

func TestSectionizeContactInfo(t *testing.T) {
	s := newTestSectionizer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"Email contact",
			"Great role. Contact us at jobs@example.co.za for details.",
			"jobs@example.co.za",
		},
		{
			"Phone contact",
			"Great role. Call 011 555 1234 to apply.",
			"011 555 1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Sectionize(tt.body)
			assert.Contains(t, out.ContactInfo, tt.want)
			assert.NotContains(t, out.Overview, tt.want, "contact span is removed from the body")
		})
	}
}

func TestSectionizeRemovalPreventsDoubleCapture(t *testing.T) {
	s := newTestSectionizer(t)

	// "skills" appears inside the requirements window; since requirements is
	// processed first and removes its span, the skills category must not
	// re-capture the same text.
	body := "Requirements: - Strong communication skills for the ward - A valid drivers license"
	out := s.Sectionize(body)

	assert.NotEmpty(t, out.Requirements)
	assert.Empty(t, out.Skills)
}

func TestSectionizeCompanyInfo(t *testing.T) {
	s := newTestSectionizer(t)

	body := "Join our team. About us: " + strings.Repeat("a proud South African retailer ", 20)
	out := s.Sectionize(body)

	require.NotEmpty(t, out.CompanyInfo)
	assert.LessOrEqual(t, len([]rune(out.CompanyInfo)), 300)
	assert.True(t, strings.HasPrefix(out.CompanyInfo, "About us"))
}

func TestSectionizeApplicationInfo(t *testing.T) {
	s := newTestSectionizer(t)

	body := "A rewarding role. How to apply: send your CV via our careers page before Friday."
	out := s.Sectionize(body)

	assert.True(t, strings.HasPrefix(out.ApplicationInfo, "How to apply"))
	assert.Contains(t, out.ApplicationInfo, "careers page")
	assert.Equal(t, "A rewarding role.", out.Overview)
}

func TestSectionizeOverviewTruncation(t *testing.T) {
	s := newTestSectionizer(t)

	out := s.Sectionize(strings.Repeat("plain prose with no anchors ", 20))
	assert.LessOrEqual(t, len([]rune(out.Overview)), 200)
	assert.NotEmpty(t, out.Overview)
}

func TestSectionizeEmptyBody(t *testing.T) {
	s := newTestSectionizer(t)

	out := s.Sectionize("")
	assert.True(t, out.IsEmpty())
}
