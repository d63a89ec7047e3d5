package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/db"
	"github.com/campusflow/backend/internal/pkg/apperrors"
	"github.com/campusflow/backend/internal/pkg/logger"
)

// ISelectionRepository defines term selection database operations.
type ISelectionRepository interface {
	GetCurrentSelection(ctx context.Context, studentID int64) (*models.TermSelection, error)
	ReplaceSelection(ctx context.Context, studentID, termID int64) (*models.TermSelection, error)
}

// SelectionRepository enforces the at-most-one-selection-per-student
// invariant at the storage level.
type SelectionRepository struct {
	db *db.PostgresDB
}

// NewSelectionRepository creates a new SelectionRepository.
func NewSelectionRepository(database *db.PostgresDB) *SelectionRepository {
	return &SelectionRepository{db: database}
}

// GetCurrentSelection fetches the student's most recent selection
// joined with its term. Returns (nil, nil) when the student has not
// selected a term yet; that is a sentinel, not an error.
func (r *SelectionRepository) GetCurrentSelection(ctx context.Context, studentID int64) (*models.TermSelection, error) {
	selection := &models.TermSelection{Term: &models.Term{}}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT ts.id, ts.student_id, ts.term_id, ts.selected_at,
		       t.id, t.name, t.start_date, t.end_date, t.status, t.created_at
		FROM term_selections ts
		JOIN terms t ON t.id = ts.term_id
		WHERE ts.student_id = $1
		ORDER BY ts.selected_at DESC
		LIMIT 1`,
		studentID).Scan(
		&selection.ID, &selection.StudentID, &selection.TermID, &selection.SelectedAt,
		&selection.Term.ID, &selection.Term.Name, &selection.Term.StartDate,
		&selection.Term.EndDate, &selection.Term.Status, &selection.Term.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving current selection: %w", err)
	}

	return selection, nil
}

// ReplaceSelection atomically replaces the student's selection. Inside
// one transaction: the term's existence is checked (so a concurrent
// term deletion cannot race past validation), every existing selection
// row for the student is deleted, exactly one new row is inserted, and
// the profile's denormalized term reference is updated to match. The
// delete-then-insert pattern guarantees at most one row survives even
// if prior data was inconsistent; concurrent calls for the same
// student serialize on the database's transaction isolation.
func (r *SelectionRepository) ReplaceSelection(ctx context.Context, studentID, termID int64) (*models.TermSelection, error) {
	selection := &models.TermSelection{StudentID: studentID, TermID: termID, Term: &models.Term{}}

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			SELECT id, name, start_date, end_date, status, created_at
			FROM terms
			WHERE id = $1`,
			termID).Scan(
			&selection.Term.ID, &selection.Term.Name, &selection.Term.StartDate,
			&selection.Term.EndDate, &selection.Term.Status, &selection.Term.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrInvalidTerm
			}
			return fmt.Errorf("error validating term: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM term_selections WHERE student_id = $1`, studentID); err != nil {
			return fmt.Errorf("error clearing previous selections: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO term_selections (student_id, term_id, selected_at)
			VALUES ($1, $2, NOW())
			RETURNING id, selected_at`,
			studentID, termID).Scan(&selection.ID, &selection.SelectedAt)
		if err != nil {
			return fmt.Errorf("error inserting selection: %w", err)
		}

		if _, err := tx.Exec(ctx, `UPDATE student_profiles SET term_id = $1 WHERE id = $2`, termID, studentID); err != nil {
			return fmt.Errorf("error updating denormalized term reference: %w", err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTerm) {
			logger.Error().Err(err).Int64("studentID", studentID).Int64("termID", termID).Msg("Failed to replace term selection")
		}
		return nil, err
	}

	return selection, nil
}
