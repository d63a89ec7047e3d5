package dto

import "time"

// CreateTermRequest creates an enrollment period. Dates use the
// YYYY-MM-DD form.
type CreateTermRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=UPCOMING ACTIVE CLOSED"`
}

// UpdateTermRequest mirrors CreateTermRequest for full replacement.
type UpdateTermRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=UPCOMING ACTIVE CLOSED"`
}

// SelectTermRequest sets or replaces the caller's term selection.
type SelectTermRequest struct {
	TermID int64 `json:"termId" binding:"required"`
}

// CurrentSelectionResponse is the student's active selection. Every
// field is omitted when the student has not selected a term yet, so
// the "no selection" sentinel renders as an empty JSON object rather
// than an error.
type CurrentSelectionResponse struct {
	TermID     *int64     `json:"termId,omitempty"`
	TermName   string     `json:"termName,omitempty"`
	Status     string     `json:"status,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	SelectedAt *time.Time `json:"selectedAt,omitempty"`
}
