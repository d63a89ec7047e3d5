package models

// AdminProfile defines the admin model based on the 'admin_profiles'
// table, one-to-one with an ADMIN account. Text fields are nullable
// for the same partial-update reasons as StudentProfile.
type AdminProfile struct {
	ID           int64   `json:"id" db:"id"`
	AccountID    int64   `json:"accountId" db:"account_id"`
	FirstName    *string `json:"firstName" db:"first_name"`
	LastName     *string `json:"lastName" db:"last_name"`
	Email        *string `json:"email" db:"email"`
	Phone        *string `json:"phone,omitempty" db:"phone"`
	DepartmentID int64   `json:"departmentId" db:"department_id"`

	// Relations (populated when needed)
	Account    *Account    `json:"account,omitempty"`
	Department *Department `json:"department,omitempty"`
}
