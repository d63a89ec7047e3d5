package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/pkg/apperrors"
	"github.com/campusflow/backend/internal/pkg/auth"
)

// testBcryptCost keeps hashing fast in tests. bcrypt's minimum is 4.
const testBcryptCost = 4

type authFixture struct {
	store       *memStore
	accountRepo *mockAccountRepo
	service     AuthService
	jwtService  *auth.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	store := newMemStore()
	accountRepo := &mockAccountRepo{store: store}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	service := NewAuthService(
		accountRepo,
		&mockAdminRepo{store: store},
		&mockDepartmentRepo{departments: []*models.Department{{ID: 1, Name: "Computer Science"}}},
		jwtService,
		testBcryptCost,
		zerolog.Nop(),
	)
	return &authFixture{
		store:       store,
		accountRepo: accountRepo,
		service:     service,
		jwtService:  jwtService,
	}
}

// seedAdmin inserts an admin account directly into the store so
// student registrations have an assigning admin to reference.
func (f *authFixture) seedAdmin(t *testing.T) *models.AdminProfile {
	t.Helper()
	hashed, err := auth.HashPassword("admin-pass", testBcryptCost)
	require.NoError(t, err)
	account := &models.Account{Username: "registrar", Password: hashed, Role: models.RoleAdmin}
	profile := &models.AdminProfile{DepartmentID: 1}
	require.NoError(t, f.accountRepo.CreateAdminAccount(context.Background(), account, profile))
	return profile
}

func studentRequest(admin *models.AdminProfile) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  "jdoe",
		Password:  "secret123",
		Role:      "student",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.edu",
		AdminID:   admin.ID,
	}
}

func TestRegisterStudent(t *testing.T) {
	f := newAuthFixture(t)
	admin := f.seedAdmin(t)

	response, err := f.service.Register(context.Background(), studentRequest(admin))
	require.NoError(t, err)

	assert.Equal(t, "jdoe", response.Account.Username)
	assert.Equal(t, models.RoleStudent, response.Account.Role)
	require.NotNil(t, response.Student)
	assert.Nil(t, response.Admin)
	assert.Equal(t, "Jane", *response.Student.FirstName)
	assert.Equal(t, admin.ID, response.Student.AdminID)

	// The stored password is a hash, never the plaintext.
	stored, err := f.accountRepo.GetAccountByUsername(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "secret123"))
}

func TestRegisterAdmin(t *testing.T) {
	f := newAuthFixture(t)

	response, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Username:     "dean",
		Password:     "secret123",
		Role:         "ADMIN",
		FirstName:    "Dana",
		LastName:     "Dean",
		Email:        "dana@example.edu",
		DepartmentID: 1,
	})
	require.NoError(t, err)

	require.NotNil(t, response.Admin)
	assert.Nil(t, response.Student)
	assert.Equal(t, int64(1), response.Admin.DepartmentID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newAuthFixture(t)
	admin := f.seedAdmin(t)

	_, err := f.service.Register(context.Background(), studentRequest(admin))
	require.NoError(t, err)

	_, err = f.service.Register(context.Background(), studentRequest(admin))
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	// Exactly one account with the contested name survives.
	assert.Len(t, f.store.byUsername, 2) // registrar + jdoe
}

func TestRegisterAtomicity(t *testing.T) {
	f := newAuthFixture(t)
	admin := f.seedAdmin(t)
	f.accountRepo.failProfileInsert = true

	_, err := f.service.Register(context.Background(), studentRequest(admin))
	require.Error(t, err)

	// The failed profile insert must not leave a dangling account.
	exists, err := f.accountRepo.UsernameExists(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.False(t, exists)

	// The same username registers cleanly afterwards.
	f.accountRepo.failProfileInsert = false
	_, err = f.service.Register(context.Background(), studentRequest(admin))
	assert.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture(t)
	admin := f.seedAdmin(t)

	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
	}{
		{"unknown role", func(r *dto.RegisterRequest) { r.Role = "TEACHER" }},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "abc" }},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }},
		{"missing names", func(r *dto.RegisterRequest) { r.FirstName = " " }},
		{"student without admin", func(r *dto.RegisterRequest) { r.AdminID = 0 }},
		{"student with unknown admin", func(r *dto.RegisterRequest) { r.AdminID = 9999 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := studentRequest(admin)
			req.Username = "someone-else"
			tt.mutate(req)

			_, err := f.service.Register(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestRegisterAdminRequiresExistingDepartment(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Username:     "dean",
		Password:     "secret123",
		Role:         "ADMIN",
		FirstName:    "Dana",
		LastName:     "Dean",
		Email:        "dana@example.edu",
		DepartmentID: 42,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLoginRoundTrip(t *testing.T) {
	f := newAuthFixture(t)
	admin := f.seedAdmin(t)

	_, err := f.service.Register(context.Background(), studentRequest(admin))
	require.NoError(t, err)

	token, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "jdoe",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := f.jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleStudent), claims.Role)
	assert.Positive(t, claims.AccountID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	admin := f.seedAdmin(t)

	_, err := f.service.Register(context.Background(), studentRequest(admin))
	require.NoError(t, err)

	// Unknown username and wrong password yield the identical error so
	// responses cannot be used to enumerate accounts.
	_, unknownErr := f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	_, wrongErr := f.service.Login(context.Background(), &dto.LoginRequest{
		Username: "jdoe",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
