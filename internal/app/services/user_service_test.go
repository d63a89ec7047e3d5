package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/pkg/auth"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

type userFixture struct {
	store       *memStore
	accountRepo *mockAccountRepo
	service     UserService
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	store := newMemStore()
	accountRepo := &mockAccountRepo{store: store}
	service := NewUserService(
		accountRepo,
		&mockStudentRepo{store: store},
		&mockAdminRepo{store: store},
		testBcryptCost,
		zerolog.Nop(),
	)
	return &userFixture{store: store, accountRepo: accountRepo, service: service}
}

// seedStudent inserts a student account with a fully populated profile.
func (f *userFixture) seedStudent(t *testing.T) int64 {
	t.Helper()
	hashed, err := auth.HashPassword("secret123", testBcryptCost)
	require.NoError(t, err)

	account := &models.Account{Username: "jdoe", Password: hashed, Role: models.RoleStudent}
	profile := &models.StudentProfile{
		FirstName: strPtr("Jane"),
		LastName:  strPtr("Doe"),
		Email:     strPtr("jane@example.edu"),
		Phone:     strPtr("555-0100"),
		Address:   strPtr("12 Campus Way"),
		Program:   strPtr("Computer Science"),
		YearLevel: intPtr(2),
		AdminID:   1,
	}
	require.NoError(t, f.accountRepo.CreateStudentAccount(context.Background(), account, profile))
	return account.ID
}

func (f *userFixture) seedAdmin(t *testing.T) int64 {
	t.Helper()
	hashed, err := auth.HashPassword("secret123", testBcryptCost)
	require.NoError(t, err)

	account := &models.Account{Username: "dean", Password: hashed, Role: models.RoleAdmin}
	profile := &models.AdminProfile{
		FirstName:    strPtr("Dana"),
		LastName:     strPtr("Dean"),
		Email:        strPtr("dana@example.edu"),
		DepartmentID: 3,
	}
	require.NoError(t, f.accountRepo.CreateAdminAccount(context.Background(), account, profile))
	return account.ID
}

func TestGetProfileStudent(t *testing.T) {
	f := newUserFixture(t)
	accountID := f.seedStudent(t)

	response, err := f.service.GetProfile(context.Background(), accountID)
	require.NoError(t, err)

	assert.Equal(t, "jdoe", response.Account.Username)
	require.NotNil(t, response.Student)
	assert.Nil(t, response.Admin)
	assert.Equal(t, "Jane", *response.Student.FirstName)
}

func TestGetProfileMissingProfileRow(t *testing.T) {
	f := newUserFixture(t)

	// An account whose profile row is gone still resolves; the profile
	// side of the response is simply absent.
	f.store.nextID++
	account := &models.Account{ID: f.store.nextID, Username: "ghost", Role: models.RoleStudent}
	f.store.accounts[account.ID] = account
	f.store.byUsername[account.Username] = account.ID

	response, err := f.service.GetProfile(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Nil(t, response.Student)
	assert.Nil(t, response.Admin)
}

func TestUpdateProfileEmptyPatchIsIdempotent(t *testing.T) {
	f := newUserFixture(t)
	accountID := f.seedStudent(t)

	before, err := f.service.GetProfile(context.Background(), accountID)
	require.NoError(t, err)
	passwordBefore := f.store.accounts[accountID].Password

	after, err := f.service.UpdateProfile(context.Background(), accountID, &dto.UpdateProfileRequest{})
	require.NoError(t, err)

	assert.Equal(t, before.Student, after.Student)
	assert.Equal(t, passwordBefore, f.store.accounts[accountID].Password)
}

func TestUpdateProfileClearsFieldWithEmptyString(t *testing.T) {
	f := newUserFixture(t)
	accountID := f.seedStudent(t)

	response, err := f.service.UpdateProfile(context.Background(), accountID, &dto.UpdateProfileRequest{
		Phone:   strPtr(""),
		Address: strPtr("44 New Street"),
	})
	require.NoError(t, err)

	assert.Nil(t, response.Student.Phone, "empty string clears to null")
	require.NotNil(t, response.Student.Address)
	assert.Equal(t, "44 New Street", *response.Student.Address)
	// Untouched fields keep their values.
	require.NotNil(t, response.Student.FirstName)
	assert.Equal(t, "Jane", *response.Student.FirstName)
}

func TestUpdateProfileRepeatedPatchIsIdempotent(t *testing.T) {
	f := newUserFixture(t)
	accountID := f.seedStudent(t)

	patch := &dto.UpdateProfileRequest{
		FirstName: strPtr("Janet"),
		Phone:     strPtr(""),
		YearLevel: strPtr("3"),
	}

	first, err := f.service.UpdateProfile(context.Background(), accountID, patch)
	require.NoError(t, err)
	second, err := f.service.UpdateProfile(context.Background(), accountID, patch)
	require.NoError(t, err)

	assert.Equal(t, first.Student, second.Student)
}

func TestUpdateProfileYearLevel(t *testing.T) {
	f := newUserFixture(t)
	accountID := f.seedStudent(t)

	tests := []struct {
		name  string
		patch *string
		want  *int
	}{
		{"omitted keeps stored value", nil, intPtr(2)},
		{"numeric string replaces", strPtr("4"), intPtr(4)},
		{"non-numeric keeps previous", strPtr("senior"), intPtr(4)},
		{"empty string clears", strPtr(""), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := f.service.UpdateProfile(context.Background(), accountID, &dto.UpdateProfileRequest{
				YearLevel: tt.patch,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, response.Student.YearLevel)
		})
	}
}

func TestUpdateProfilePassword(t *testing.T) {
	f := newUserFixture(t)
	accountID := f.seedStudent(t)
	hashBefore := f.store.accounts[accountID].Password

	// A blank password is ignored, not stored.
	_, err := f.service.UpdateProfile(context.Background(), accountID, &dto.UpdateProfileRequest{
		Password: strPtr("  "),
	})
	require.NoError(t, err)
	assert.Equal(t, hashBefore, f.store.accounts[accountID].Password)

	// A real password is rehashed and verifies afterwards.
	_, err = f.service.UpdateProfile(context.Background(), accountID, &dto.UpdateProfileRequest{
		Password: strPtr("new-secret"),
	})
	require.NoError(t, err)

	hashAfter := f.store.accounts[accountID].Password
	assert.NotEqual(t, hashBefore, hashAfter)
	assert.True(t, auth.CheckPassword(hashAfter, "new-secret"))
	assert.False(t, auth.CheckPassword(hashAfter, "secret123"))
}

func TestUpdateProfileAdminDepartment(t *testing.T) {
	f := newUserFixture(t)
	accountID := f.seedAdmin(t)

	// Department is NOT NULL: empty or unparsable input keeps the
	// stored reference instead of clearing it.
	response, err := f.service.UpdateProfile(context.Background(), accountID, &dto.UpdateProfileRequest{
		DepartmentID: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), response.Admin.DepartmentID)

	response, err = f.service.UpdateProfile(context.Background(), accountID, &dto.UpdateProfileRequest{
		DepartmentID: strPtr("5"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), response.Admin.DepartmentID)
}
