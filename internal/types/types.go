// Package types defines the shared data structures for the posting optimizer.
package types

import "strings"

// JobPosting is a single job listing as read from the content system.
// Title and Description are always present; every other field is optional
// and treated as absent when empty or whitespace.
type JobPosting struct {
	RemoteID    int64  `json:"remote_id,omitempty"` // Foreign ID in the external content system
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	Category    string `json:"category,omitempty"`
	Salary      string `json:"salary,omitempty"`

	// Existing SEO metadata, if the posting was optimized before.
	FocusKeyphrase  string `json:"focus_keyphrase,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	SEOScore        int    `json:"seo_score,omitempty"`
}

// HasCompany reports whether the posting carries a non-blank company name.
func (p *JobPosting) HasCompany() bool { return strings.TrimSpace(p.Company) != "" }

// HasLocation reports whether the posting carries a non-blank location.
func (p *JobPosting) HasLocation() bool { return strings.TrimSpace(p.Location) != "" }

// HasJobType reports whether the posting carries a non-blank job type.
func (p *JobPosting) HasJobType() bool { return strings.TrimSpace(p.JobType) != "" }

// HasCategory reports whether the posting carries a non-blank category.
func (p *JobPosting) HasCategory() bool { return strings.TrimSpace(p.Category) != "" }

// KeywordCandidate is a ranked keyword extracted from a posting.
type KeywordCandidate struct {
	Term      string  `json:"term"`      // Lowercase token, length > 2, not a stop word
	Frequency int     `json:"frequency"` // Occurrences in title+description+company+location
	Relevance float64 `json:"relevance"` // 2.0 for domain terms, 1.0 otherwise
}

// Rank is the sort key for keyword candidates: frequency weighted by relevance.
func (k KeywordCandidate) Rank() float64 {
	return float64(k.Frequency) * k.Relevance
}

// ContentSections holds the logical sections detected inside a posting body.
// Absent sections are empty strings / empty slices.
type ContentSections struct {
	Overview         string   `json:"overview"`         // ≤200 chars
	Responsibilities []string `json:"responsibilities"` // ≤8 items, each 10–149 chars
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
	CompanyInfo      string   `json:"company_info"` // ≤300 chars
	ApplicationInfo  string   `json:"application_info"`
	ContactInfo      string   `json:"contact_info"`
}

// IsEmpty reports whether no section captured any content.
func (s *ContentSections) IsEmpty() bool {
	return s.Overview == "" &&
		len(s.Responsibilities) == 0 &&
		len(s.Requirements) == 0 &&
		len(s.Skills) == 0 &&
		s.CompanyInfo == "" &&
		s.ApplicationInfo == "" &&
		s.ContactInfo == ""
}

// AnalysisResult is the outcome of analyzing a posting. It carries no
// identity and is produced fresh on every call.
type AnalysisResult struct {
	Score           int      `json:"score"` // 0–100
	Recommendations []string `json:"recommendations"`
	FocusKeyphrase  string   `json:"focus_keyphrase,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	OptimizedTitle  string   `json:"optimized_title,omitempty"`
}

// OptimizationResult extends AnalysisResult with the restructured body.
type OptimizationResult struct {
	Score            int      `json:"score"`
	Recommendations  []string `json:"recommendations"`
	FocusKeyphrase   string   `json:"focus_keyphrase"`
	MetaDescription  string   `json:"meta_description"`
	OptimizedTitle   string   `json:"optimized_title"`
	OptimizedContent string   `json:"optimized_content"`
}
