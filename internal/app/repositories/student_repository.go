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

// IStudentRepository defines student profile lookups.
type IStudentRepository interface {
	GetStudentByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error)
}

// StudentRepository handles student profile database operations.
type StudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetStudentByAccountID retrieves a student profile by account id.
// Returns apperrors.ErrProfileNotFound when no row exists; callers
// decide whether that is an error or the "no profile yet" case.
func (r *StudentRepository) GetStudentByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error) {
	var student models.StudentProfile
	sql, args, err := r.sb.Select(
		"id", "account_id", "first_name", "last_name", "email",
		"phone", "address", "program", "year_level", "admin_id", "term_id").
		From("student_profiles").
		Where(squirrel.Eq{"account_id": accountID}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.AccountID, &student.FirstName, &student.LastName,
		&student.Email, &student.Phone, &student.Address, &student.Program,
		&student.YearLevel, &student.AdminID, &student.TermID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &student, nil
}
