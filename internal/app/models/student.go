package models

// StudentProfile defines the student model based on the
// 'student_profiles' table. Exactly one row exists per student
// account; it is created in the same transaction as the account.
// Text fields are nullable: a partial update clearing a field stores
// NULL, not an empty string.
type StudentProfile struct {
	ID        int64   `json:"id" db:"id"`
	AccountID int64   `json:"accountId" db:"account_id"`
	FirstName *string `json:"firstName" db:"first_name"`
	LastName  *string `json:"lastName" db:"last_name"`
	Email     *string `json:"email" db:"email"`
	Phone     *string `json:"phone,omitempty" db:"phone"`
	Address   *string `json:"address,omitempty" db:"address"`
	Program   *string `json:"program,omitempty" db:"program"`
	YearLevel *int    `json:"yearLevel,omitempty" db:"year_level"`
	AdminID   int64   `json:"adminId" db:"admin_id"`         // assigning admin
	TermID    *int64  `json:"termId,omitempty" db:"term_id"` // denormalized current term

	// Relations (populated when needed)
	Account *Account `json:"account,omitempty"`
	Term    *Term    `json:"term,omitempty"`
}
