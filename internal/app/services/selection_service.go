package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/app/repositories"
	"github.com/campusflow/backend/internal/pkg/apperrors"
)

// SelectionService owns the single-active-term-selection invariant.
type SelectionService interface {
	GetCurrentSelection(ctx context.Context, accountID int64) (*dto.CurrentSelectionResponse, error)
	SelectTerm(ctx context.Context, accountID, termID int64) (*dto.CurrentSelectionResponse, error)
}

type selectionServiceImpl struct {
	studentRepo   repositories.IStudentRepository
	selectionRepo repositories.ISelectionRepository
	logger        zerolog.Logger
}

// NewSelectionService creates a new SelectionService.
func NewSelectionService(
	studentRepo repositories.IStudentRepository,
	selectionRepo repositories.ISelectionRepository,
	logger zerolog.Logger,
) SelectionService {
	return &selectionServiceImpl{
		studentRepo:   studentRepo,
		selectionRepo: selectionRepo,
		logger:        logger,
	}
}

// resolveStudentID maps the authenticated account to its student
// profile id. Tokens carry account ids, never student ids.
func (s *selectionServiceImpl) resolveStudentID(ctx context.Context, accountID int64) (int64, error) {
	student, err := s.studentRepo.GetStudentByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, fmt.Errorf("failed to resolve student: %w", err)
	}
	return student.ID, nil
}

// GetCurrentSelection returns the student's active selection, or an
// empty response when no term has been selected yet. "No selection"
// is a sentinel distinct from the account lacking a student profile,
// which is a not-found error.
func (s *selectionServiceImpl) GetCurrentSelection(ctx context.Context, accountID int64) (*dto.CurrentSelectionResponse, error) {
	studentID, err := s.resolveStudentID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	selection, err := s.selectionRepo.GetCurrentSelection(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if selection == nil {
		return &dto.CurrentSelectionResponse{}, nil
	}

	response := &dto.CurrentSelectionResponse{
		TermID:     &selection.TermID,
		SelectedAt: &selection.SelectedAt,
	}
	if selection.Term != nil {
		response.TermName = selection.Term.Name
		response.Status = string(selection.Term.Status)
		response.StartDate = &selection.Term.StartDate
		response.EndDate = &selection.Term.EndDate
	}

	return response, nil
}

// SelectTerm replaces the student's selection with the given term.
// The repository performs the whole mutation in one transaction, so a
// nonexistent term leaves any prior selection untouched.
func (s *selectionServiceImpl) SelectTerm(ctx context.Context, accountID, termID int64) (*dto.CurrentSelectionResponse, error) {
	if termID <= 0 {
		return nil, apperrors.ErrInvalidTerm
	}

	studentID, err := s.resolveStudentID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	selection, err := s.selectionRepo.ReplaceSelection(ctx, studentID, termID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("termID", termID).Msg("Term selection replaced")

	response := &dto.CurrentSelectionResponse{
		TermID:     &selection.TermID,
		SelectedAt: &selection.SelectedAt,
	}
	if selection.Term != nil {
		response.TermName = selection.Term.Name
		response.Status = string(selection.Term.Status)
		response.StartDate = &selection.Term.StartDate
		response.EndDate = &selection.Term.EndDate
	}

	return response, nil
}
