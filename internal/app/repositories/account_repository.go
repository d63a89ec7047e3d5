package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/db"
	"github.com/campusflow/backend/internal/pkg/apperrors"
	"github.com/campusflow/backend/internal/pkg/dberrors"
	"github.com/campusflow/backend/internal/pkg/logger"
)

// IAccountRepository defines account-level database operations. The
// create and update pairs are transactional: the account row and its
// role profile commit together or not at all.
type IAccountRepository interface {
	GetAccountByID(ctx context.Context, id int64) (*models.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*models.Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	CreateStudentAccount(ctx context.Context, account *models.Account, profile *models.StudentProfile) error
	CreateAdminAccount(ctx context.Context, account *models.Account, profile *models.AdminProfile) error

	UpdateAccountWithStudentProfile(ctx context.Context, account *models.Account, profile *models.StudentProfile) error
	UpdateAccountWithAdminProfile(ctx context.Context, account *models.Account, profile *models.AdminProfile) error
}

// AccountRepository implements IAccountRepository against Postgres.
type AccountRepository struct {
	db *db.PostgresDB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(database *db.PostgresDB) *AccountRepository {
	return &AccountRepository{db: database}
}

// GetAccountByID retrieves an account by its id.
func (r *AccountRepository) GetAccountByID(ctx context.Context, id int64) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, username, password, role, created_at, updated_at
		FROM accounts
		WHERE id = $1`,
		id).Scan(
		&account.ID, &account.Username, &account.Password,
		&account.Role, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return account, nil
}

// GetAccountByUsername retrieves an account by its login name.
func (r *AccountRepository) GetAccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, username, password, role, created_at, updated_at
		FROM accounts
		WHERE username = $1`,
		username).Scan(
		&account.ID, &account.Username, &account.Password,
		&account.Role, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	return account, nil
}

// UsernameExists checks whether a login name is already taken.
func (r *AccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// insertAccount inserts the account row inside the given transaction.
func insertAccount(ctx context.Context, tx pgx.Tx, account *models.Account) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO accounts (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		account.Username, account.Password, account.Role).Scan(
		&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_username_key") {
			return apperrors.ErrUsernameTaken
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	return nil
}

// CreateStudentAccount inserts the account and its student profile in
// one transaction. If either insert fails, neither row persists.
func (r *AccountRepository) CreateStudentAccount(ctx context.Context, account *models.Account, profile *models.StudentProfile) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertAccount(ctx, tx, account); err != nil {
			return err
		}

		profile.AccountID = account.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO student_profiles (account_id, first_name, last_name, email, phone, address, program, year_level, admin_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
			profile.AccountID, profile.FirstName, profile.LastName, profile.Email,
			profile.Phone, profile.Address, profile.Program, profile.YearLevel,
			profile.AdminID).Scan(&profile.ID)

		if err != nil {
			logger.Error().Err(err).Int64("accountID", account.ID).Msg("Error creating student profile")
			return fmt.Errorf("error creating student profile: %w", err)
		}

		return nil
	})
}

// CreateAdminAccount inserts the account and its admin profile in one
// transaction.
func (r *AccountRepository) CreateAdminAccount(ctx context.Context, account *models.Account, profile *models.AdminProfile) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertAccount(ctx, tx, account); err != nil {
			return err
		}

		profile.AccountID = account.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO admin_profiles (account_id, first_name, last_name, email, phone, department_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			profile.AccountID, profile.FirstName, profile.LastName, profile.Email,
			profile.Phone, profile.DepartmentID).Scan(&profile.ID)

		if err != nil {
			logger.Error().Err(err).Int64("accountID", account.ID).Msg("Error creating admin profile")
			return fmt.Errorf("error creating admin profile: %w", err)
		}

		return nil
	})
}

// updateAccountRow writes the merged account fields inside the
// transaction that also carries the profile update.
func updateAccountRow(ctx context.Context, tx pgx.Tx, account *models.Account) error {
	_, err := tx.Exec(ctx, `
		UPDATE accounts
		SET password = $1, updated_at = NOW()
		WHERE id = $2`,
		account.Password, account.ID)

	if err != nil {
		return fmt.Errorf("error updating account: %w", err)
	}

	return nil
}

// UpdateAccountWithStudentProfile commits the merged account row and
// student profile row as one transaction.
func (r *AccountRepository) UpdateAccountWithStudentProfile(ctx context.Context, account *models.Account, profile *models.StudentProfile) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := updateAccountRow(ctx, tx, account); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			UPDATE student_profiles
			SET first_name = $1, last_name = $2, email = $3, phone = $4,
			    address = $5, program = $6, year_level = $7
			WHERE account_id = $8`,
			profile.FirstName, profile.LastName, profile.Email, profile.Phone,
			profile.Address, profile.Program, profile.YearLevel, account.ID)

		if err != nil {
			return fmt.Errorf("error updating student profile: %w", err)
		}

		return nil
	})
}

// UpdateAccountWithAdminProfile commits the merged account row and
// admin profile row as one transaction.
func (r *AccountRepository) UpdateAccountWithAdminProfile(ctx context.Context, account *models.Account, profile *models.AdminProfile) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := updateAccountRow(ctx, tx, account); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			UPDATE admin_profiles
			SET first_name = $1, last_name = $2, email = $3, phone = $4, department_id = $5
			WHERE account_id = $6`,
			profile.FirstName, profile.LastName, profile.Email, profile.Phone,
			profile.DepartmentID, account.ID)

		if err != nil {
			return fmt.Errorf("error updating admin profile: %w", err)
		}

		return nil
	})
}
