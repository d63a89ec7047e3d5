package models

import "time"

// TermStatus tags where a term sits in the enrollment calendar.
type TermStatus string

const (
	TermStatusUpcoming TermStatus = "UPCOMING"
	TermStatusActive   TermStatus = "ACTIVE"
	TermStatusClosed   TermStatus = "CLOSED"
)

// Term models a named enrollment period.
type Term struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	StartDate time.Time  `json:"startDate" db:"start_date"`
	EndDate   time.Time  `json:"endDate" db:"end_date"`
	Status    TermStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
