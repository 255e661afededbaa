package dtos

import "github.com/justsurfingit/jobboard/internal/models"

// JobExtractionRequest carries a pasted job posting for draft extraction.
type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

// JobCreationRequest is the POST /jobs body. Field names match the jobs
// table; every field is optional here and the table decides what it accepts.
type JobCreationRequest struct {
	Title    *string `json:"title"`
	Company  *string `json:"company"`
	Location *string `json:"location"`
	Type     *string `json:"type"`

	SalaryRange  *models.Numeric `json:"salaryRange"`
	SalaryRange2 *models.Numeric `json:"salaryrange2"`

	Description         *string `json:"description"`
	ApplicationDeadline *string `json:"applicationDeadline"` // YYYY-MM-DD
	IsRemote            *bool   `json:"isRemote"`
}

// JobDraft is what the extractor could read out of a posting. It has the
// creation request's field names so it can be posted back after review.
type JobDraft struct {
	Title    *string `json:"title,omitempty"`
	Company  *string `json:"company,omitempty"`
	Location *string `json:"location,omitempty"`
	Type     *string `json:"type,omitempty"`

	SalaryRange  *models.Numeric `json:"salaryRange,omitempty"`
	SalaryRange2 *models.Numeric `json:"salaryrange2,omitempty"`

	Description         *string `json:"description,omitempty"`
	ApplicationDeadline *string `json:"applicationDeadline,omitempty"`
	IsRemote            *bool   `json:"isRemote,omitempty"`
}
