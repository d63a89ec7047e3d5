package dto

import "github.com/campusflow/backend/internal/app/models"

// AccountInfo is the credential-free view of an account.
type AccountInfo struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// ProfileResponse is the tagged profile union: exactly one of Student
// or Admin is set when the role profile row exists, neither when it
// does not (a missing profile is not an error).
type ProfileResponse struct {
	Account AccountInfo            `json:"account"`
	Student *models.StudentProfile `json:"student,omitempty"`
	Admin   *models.AdminProfile   `json:"admin,omitempty"`
}

// UpdateProfileRequest is a partial update. Field semantics: a nil
// pointer means the key was omitted and the stored value is kept; an
// explicit empty string clears the field to NULL; anything else
// replaces the value. YearLevel and DepartmentID arrive as strings and
// follow the same policy, with unparsable input keeping the previous
// value.
type UpdateProfileRequest struct {
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`

	// Student fields
	Address   *string `json:"address"`
	Program   *string `json:"program"`
	YearLevel *string `json:"yearLevel"`

	// Admin fields
	DepartmentID *string `json:"departmentId"`
}
