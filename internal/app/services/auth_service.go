package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/app/repositories"
	"github.com/campusflow/backend/internal/pkg/apperrors"
	"github.com/campusflow/backend/internal/pkg/auth"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ProfileResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	accountRepo    repositories.IAccountRepository
	adminRepo      repositories.IAdminRepository
	departmentRepo repositories.IDepartmentRepository
	jwtService     *auth.JWTService
	bcryptCost     int
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	accountRepo repositories.IAccountRepository,
	adminRepo repositories.IAdminRepository,
	departmentRepo repositories.IDepartmentRepository,
	jwtService *auth.JWTService,
	bcryptCost int,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		accountRepo:    accountRepo,
		adminRepo:      adminRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// validateRegistration checks the role-independent fields.
func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return apperrors.NewValidationError("username cannot be empty")
	}
	if strings.TrimSpace(req.Password) == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}
	if len(req.Password) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters long")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return apperrors.NewValidationError("first and last name are required")
	}
	if !emailRegex.MatchString(req.Email) {
		return apperrors.NewValidationError("invalid email format")
	}
	return nil
}

// Register creates an account and its role profile atomically. A
// taken username surfaces as a conflict, distinct from internal
// failures; any partial insert is rolled back by the repository.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ProfileResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, apperrors.NewValidationError("role must be STUDENT or ADMIN")
	}

	exists, err := s.accountRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameTaken
	}

	hashedPassword, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Username: req.Username,
		Password: hashedPassword,
		Role:     role,
	}

	response := &dto.ProfileResponse{}

	switch role {
	case models.RoleStudent:
		if req.AdminID <= 0 {
			return nil, apperrors.NewValidationError("students require an assigning admin reference")
		}
		adminExists, err := s.adminRepo.AdminExists(ctx, req.AdminID)
		if err != nil {
			return nil, fmt.Errorf("error checking assigning admin: %w", err)
		}
		if !adminExists {
			return nil, apperrors.NewValidationError("assigning admin does not exist")
		}

		profile := &models.StudentProfile{
			FirstName: &req.FirstName,
			LastName:  &req.LastName,
			Email:     &req.Email,
			YearLevel: req.YearLevel,
			AdminID:   req.AdminID,
		}
		if req.Phone != "" {
			profile.Phone = &req.Phone
		}
		if req.Program != "" {
			profile.Program = &req.Program
		}

		if err := s.accountRepo.CreateStudentAccount(ctx, account, profile); err != nil {
			if errors.Is(err, apperrors.ErrUsernameTaken) {
				return nil, err
			}
			s.logger.Error().Err(err).Str("username", req.Username).Msg("Student registration failed")
			return nil, fmt.Errorf("registration failed: %w", err)
		}
		response.Student = profile

	case models.RoleAdmin:
		if req.DepartmentID <= 0 {
			return nil, apperrors.NewValidationError("admins require a department reference")
		}
		deptExists, err := s.departmentRepo.DepartmentExists(ctx, req.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("error checking department: %w", err)
		}
		if !deptExists {
			return nil, apperrors.NewValidationError("department does not exist")
		}

		profile := &models.AdminProfile{
			FirstName:    &req.FirstName,
			LastName:     &req.LastName,
			Email:        &req.Email,
			DepartmentID: req.DepartmentID,
		}
		if req.Phone != "" {
			profile.Phone = &req.Phone
		}

		if err := s.accountRepo.CreateAdminAccount(ctx, account, profile); err != nil {
			if errors.Is(err, apperrors.ErrUsernameTaken) {
				return nil, err
			}
			s.logger.Error().Err(err).Str("username", req.Username).Msg("Admin registration failed")
			return nil, fmt.Errorf("registration failed: %w", err)
		}
		response.Admin = profile
	}

	response.Account = dto.AccountInfo{
		ID:       account.ID,
		Username: account.Username,
		Role:     account.Role,
	}

	s.logger.Info().Int64("accountID", account.ID).Str("role", string(account.Role)).Msg("Account registered")
	return response, nil
}

// Login authenticates credentials and issues a session token. Unknown
// usernames and wrong passwords produce the same error so callers
// cannot enumerate accounts.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	account, err := s.accountRepo.GetAccountByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(account)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
