package dto

// RegisterRequest carries the registration payload. Role-specific
// required fields are validated in the service once the role has been
// parsed: students need an assigning admin, admins a department.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`

	// Student fields
	AdminID   int64  `json:"adminId"`
	Program   string `json:"program"`
	YearLevel *int   `json:"yearLevel"`

	// Admin fields
	DepartmentID int64 `json:"departmentId"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}
