package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/app/repositories"
	"github.com/campusflow/backend/internal/pkg/apperrors"
	"github.com/campusflow/backend/internal/pkg/auth"
)

// UserService exposes the caller's own account and profile.
type UserService interface {
	GetProfile(ctx context.Context, accountID int64) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type userServiceImpl struct {
	accountRepo repositories.IAccountRepository
	studentRepo repositories.IStudentRepository
	adminRepo   repositories.IAdminRepository
	bcryptCost  int
	logger      zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	accountRepo repositories.IAccountRepository,
	studentRepo repositories.IStudentRepository,
	adminRepo repositories.IAdminRepository,
	bcryptCost int,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		accountRepo: accountRepo,
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

// GetProfile joins the account with its role profile. A missing
// profile row yields a response without a profile, not an error; the
// role decides once which branch of the union gets filled.
func (s *userServiceImpl) GetProfile(ctx context.Context, accountID int64) (*dto.ProfileResponse, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	response := &dto.ProfileResponse{
		Account: dto.AccountInfo{
			ID:       account.ID,
			Username: account.Username,
			Role:     account.Role,
		},
	}

	switch account.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetStudentByAccountID(ctx, accountID)
		if err != nil && !errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to get student profile: %w", err)
		}
		response.Student = student
	case models.RoleAdmin:
		admin, err := s.adminRepo.GetAdminByAccountID(ctx, accountID)
		if err != nil && !errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to get admin profile: %w", err)
		}
		response.Admin = admin
	}

	return response, nil
}

// mergeText applies the per-field patch policy for a nullable text
// field: omitted keeps the stored value, explicit empty clears to
// NULL, anything else replaces.
func mergeText(current, patch *string) *string {
	if patch == nil {
		return current
	}
	if *patch == "" {
		return nil
	}
	value := *patch
	return &value
}

// mergeNumeric applies the same policy to a numeric field carried as
// a string. Unparsable input keeps the previous value instead of
// erroring.
func mergeNumeric(current *int, patch *string) *int {
	if patch == nil {
		return current
	}
	if *patch == "" {
		return nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(*patch))
	if err != nil {
		return current
	}
	return &value
}

// mergeRequiredID is mergeNumeric for NOT NULL id columns: empty or
// unparsable input keeps the previous reference.
func mergeRequiredID(current int64, patch *string) int64 {
	if patch == nil || *patch == "" {
		return current
	}
	value, err := strconv.ParseInt(strings.TrimSpace(*patch), 10, 64)
	if err != nil {
		return current
	}
	return value
}

// UpdateProfile merges the partial request into the stored account
// and role profile, then commits both updates as one transaction.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, accountID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Password is rehashed only when a non-blank value was supplied.
	if req.Password != nil && strings.TrimSpace(*req.Password) != "" {
		hashed, err := auth.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		account.Password = hashed
	}

	switch account.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetStudentByAccountID(ctx, accountID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrProfileNotFound) {
				return nil, fmt.Errorf("failed to load student profile: %w", err)
			}
			student = &models.StudentProfile{AccountID: accountID}
		}

		student.FirstName = mergeText(student.FirstName, req.FirstName)
		student.LastName = mergeText(student.LastName, req.LastName)
		student.Email = mergeText(student.Email, req.Email)
		student.Phone = mergeText(student.Phone, req.Phone)
		student.Address = mergeText(student.Address, req.Address)
		student.Program = mergeText(student.Program, req.Program)
		student.YearLevel = mergeNumeric(student.YearLevel, req.YearLevel)

		if err := s.accountRepo.UpdateAccountWithStudentProfile(ctx, account, student); err != nil {
			s.logger.Error().Err(err).Int64("accountID", accountID).Msg("Profile update failed")
			return nil, fmt.Errorf("profile update failed: %w", err)
		}

	case models.RoleAdmin:
		admin, err := s.adminRepo.GetAdminByAccountID(ctx, accountID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrProfileNotFound) {
				return nil, fmt.Errorf("failed to load admin profile: %w", err)
			}
			admin = &models.AdminProfile{AccountID: accountID}
		}

		admin.FirstName = mergeText(admin.FirstName, req.FirstName)
		admin.LastName = mergeText(admin.LastName, req.LastName)
		admin.Email = mergeText(admin.Email, req.Email)
		admin.Phone = mergeText(admin.Phone, req.Phone)
		admin.DepartmentID = mergeRequiredID(admin.DepartmentID, req.DepartmentID)

		if err := s.accountRepo.UpdateAccountWithAdminProfile(ctx, account, admin); err != nil {
			s.logger.Error().Err(err).Int64("accountID", accountID).Msg("Profile update failed")
			return nil, fmt.Errorf("profile update failed: %w", err)
		}
	}

	return s.GetProfile(ctx, accountID)
}
