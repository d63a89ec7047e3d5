package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/db"
	"github.com/campusflow/backend/internal/pkg/apperrors"
)

// IAdminRepository defines admin profile lookups.
type IAdminRepository interface {
	GetAdminByAccountID(ctx context.Context, accountID int64) (*models.AdminProfile, error)
	AdminExists(ctx context.Context, id int64) (bool, error)
}

// AdminRepository handles admin profile database operations.
type AdminRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(database *db.PostgresDB) *AdminRepository {
	return &AdminRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAdminByAccountID retrieves an admin profile by account id.
func (r *AdminRepository) GetAdminByAccountID(ctx context.Context, accountID int64) (*models.AdminProfile, error) {
	var admin models.AdminProfile
	sql, args, err := r.sb.Select(
		"id", "account_id", "first_name", "last_name", "email", "phone", "department_id").
		From("admin_profiles").
		Where(squirrel.Eq{"account_id": accountID}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&admin.ID, &admin.AccountID, &admin.FirstName, &admin.LastName,
		&admin.Email, &admin.Phone, &admin.DepartmentID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving admin profile: %w", err)
	}

	return &admin, nil
}

// AdminExists checks whether an admin profile row exists. Used to
// validate the assigning-admin reference during student registration.
func (r *AdminRepository) AdminExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	sql, args, err := r.sb.Select("1").
		From("admin_profiles").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("failed to build admin exists query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}
