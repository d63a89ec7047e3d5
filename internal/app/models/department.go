package models

// Department is a lookup row referenced by admin profiles.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
