package models

import "time"

// TermSelection links a student to their currently chosen term.
// At most one row exists per student at any time; replacing a
// selection deletes the old row and inserts the new one in a single
// transaction.
type TermSelection struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	TermID     int64     `json:"termId" db:"term_id"`
	SelectedAt time.Time `json:"selectedAt" db:"selected_at"`

	// Relation (populated when needed)
	Term *Term `json:"term,omitempty"`
}
