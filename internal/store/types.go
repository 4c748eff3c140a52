package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/posting-optimizer/internal/types"
)

// StoredPosting is a job posting row.
type StoredPosting struct {
	ID          uuid.UUID
	RemoteID    int64 // ID of the posting in the external content system
	Title       string
	Description string
	Company     string
	Location    string
	JobType     string
	Category    string
	Salary      string

	FocusKeyphrase  string
	MetaDescription string
	SEOScore        int

	OptimizedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToPosting converts a stored row into the engine's posting record.
func (sp *StoredPosting) ToPosting() *types.JobPosting {
	return &types.JobPosting{
		RemoteID:        sp.RemoteID,
		Title:           sp.Title,
		Description:     sp.Description,
		Company:         sp.Company,
		Location:        sp.Location,
		JobType:         sp.JobType,
		Category:        sp.Category,
		Salary:          sp.Salary,
		FocusKeyphrase:  sp.FocusKeyphrase,
		MetaDescription: sp.MetaDescription,
		SEOScore:        sp.SEOScore,
	}
}

// PostingInput is the writable subset of a posting row.
type PostingInput struct {
	RemoteID    int64
	Title       string
	Description string
	Company     string
	Location    string
	JobType     string
	Category    string
	Salary      string
}

// OptimizationRecord is one audit row for an optimize run on a posting.
type OptimizationRecord struct {
	ID              uuid.UUID
	PostingID       uuid.UUID
	Score           int
	FocusKeyphrase  string
	MetaDescription string
	OptimizedTitle  string
	Recommendations []string
	CreatedAt       time.Time
}
