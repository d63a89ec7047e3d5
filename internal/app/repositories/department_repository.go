package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/db"
)

// IDepartmentRepository defines department lookups.
type IDepartmentRepository interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	DepartmentExists(ctx context.Context, id int64) (bool, error)
}

// DepartmentRepository handles department database operations.
type DepartmentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(database *db.PostgresDB) *DepartmentRepository {
	return &DepartmentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListDepartments returns all departments ordered by name.
func (r *DepartmentRepository) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.sb.Select("id", "name").From("departments").OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		department := &models.Department{}
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// DepartmentExists checks whether a department row exists.
func (r *DepartmentRepository) DepartmentExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	sql, args, err := r.sb.Select("1").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("failed to build department exists query: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}

	return exists, nil
}
