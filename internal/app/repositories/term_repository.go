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
	"github.com/campusflow/backend/internal/pkg/dberrors"
)

// ITermRepository defines term database operations.
type ITermRepository interface {
	ListTerms(ctx context.Context, nameFilter string) ([]*models.Term, error)
	GetTermByID(ctx context.Context, id int64) (*models.Term, error)
	CreateTerm(ctx context.Context, term *models.Term) error
	UpdateTerm(ctx context.Context, term *models.Term) error
	DeleteTerm(ctx context.Context, id int64) error
}

// TermRepository handles term database operations.
type TermRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewTermRepository creates a new TermRepository.
func NewTermRepository(database *db.PostgresDB) *TermRepository {
	return &TermRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListTerms returns terms ordered newest start date first, optionally
// filtered by a case-insensitive substring match on the name.
func (r *TermRepository) ListTerms(ctx context.Context, nameFilter string) ([]*models.Term, error) {
	builder := r.sb.Select("id", "name", "start_date", "end_date", "status", "created_at").
		From("terms").
		OrderBy("start_date DESC")

	if nameFilter != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + nameFilter + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list terms query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing terms: %w", err)
	}
	defer rows.Close()

	terms := make([]*models.Term, 0)
	for rows.Next() {
		term := &models.Term{}
		if err := rows.Scan(&term.ID, &term.Name, &term.StartDate, &term.EndDate, &term.Status, &term.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning term row: %w", err)
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating term rows: %w", err)
	}

	return terms, nil
}

// GetTermByID retrieves a term by id.
func (r *TermRepository) GetTermByID(ctx context.Context, id int64) (*models.Term, error) {
	term := &models.Term{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, start_date, end_date, status, created_at
		FROM terms
		WHERE id = $1`,
		id).Scan(&term.ID, &term.Name, &term.StartDate, &term.EndDate, &term.Status, &term.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, fmt.Errorf("error retrieving term: %w", err)
	}

	return term, nil
}

// CreateTerm inserts a new term.
func (r *TermRepository) CreateTerm(ctx context.Context, term *models.Term) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO terms (name, start_date, end_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		term.Name, term.StartDate, term.EndDate, term.Status).Scan(&term.ID, &term.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating term: %w", err)
	}

	return nil
}

// UpdateTerm replaces a term's fields.
func (r *TermRepository) UpdateTerm(ctx context.Context, term *models.Term) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE terms
		SET name = $1, start_date = $2, end_date = $3, status = $4
		WHERE id = $5`,
		term.Name, term.StartDate, term.EndDate, term.Status, term.ID)

	if err != nil {
		return fmt.Errorf("error updating term: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTermNotFound
	}

	return nil
}

// DeleteTerm removes a term. Terms still referenced by selections or
// profiles cannot be deleted.
func (r *TermRepository) DeleteTerm(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM terms WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrTermHasUsage
		}
		return fmt.Errorf("error deleting term: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTermNotFound
	}

	return nil
}
