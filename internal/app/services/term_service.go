package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/app/repositories"
	"github.com/campusflow/backend/internal/pkg/apperrors"
)

const termDateLayout = "2006-01-02"

// TermService manages enrollment periods.
type TermService interface {
	ListTerms(ctx context.Context, nameFilter string) ([]*models.Term, error)
	CreateTerm(ctx context.Context, req *dto.CreateTermRequest) (*models.Term, error)
	UpdateTerm(ctx context.Context, id int64, req *dto.UpdateTermRequest) (*models.Term, error)
	DeleteTerm(ctx context.Context, id int64) error
}

type termServiceImpl struct {
	termRepo repositories.ITermRepository
	logger   zerolog.Logger
}

// NewTermService creates a new TermService.
func NewTermService(termRepo repositories.ITermRepository, logger zerolog.Logger) TermService {
	return &termServiceImpl{termRepo: termRepo, logger: logger}
}

// ListTerms returns terms, newest start date first.
func (s *termServiceImpl) ListTerms(ctx context.Context, nameFilter string) ([]*models.Term, error) {
	return s.termRepo.ListTerms(ctx, strings.TrimSpace(nameFilter))
}

// parseTermDates validates and parses the YYYY-MM-DD date pair.
func parseTermDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(termDateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("startDate must use the YYYY-MM-DD format")
	}

	end, err := time.Parse(termDateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("endDate must use the YYYY-MM-DD format")
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("endDate must be after startDate")
	}

	return start, end, nil
}

// CreateTerm creates a new enrollment period.
func (s *termServiceImpl) CreateTerm(ctx context.Context, req *dto.CreateTermRequest) (*models.Term, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("term name cannot be empty")
	}

	start, end, err := parseTermDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	status := models.TermStatus(req.Status)
	if status == "" {
		status = models.TermStatusUpcoming
	}

	term := &models.Term{
		Name:      strings.TrimSpace(req.Name),
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}

	if err := s.termRepo.CreateTerm(ctx, term); err != nil {
		return nil, fmt.Errorf("failed to create term: %w", err)
	}

	s.logger.Info().Int64("termID", term.ID).Str("name", term.Name).Msg("Term created")
	return term, nil
}

// UpdateTerm replaces a term's fields.
func (s *termServiceImpl) UpdateTerm(ctx context.Context, id int64, req *dto.UpdateTermRequest) (*models.Term, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("term name cannot be empty")
	}

	start, end, err := parseTermDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	term, err := s.termRepo.GetTermByID(ctx, id)
	if err != nil {
		return nil, err
	}

	term.Name = strings.TrimSpace(req.Name)
	term.StartDate = start
	term.EndDate = end
	if req.Status != "" {
		term.Status = models.TermStatus(req.Status)
	}

	if err := s.termRepo.UpdateTerm(ctx, term); err != nil {
		return nil, err
	}

	return term, nil
}

// DeleteTerm removes a term.
func (s *termServiceImpl) DeleteTerm(ctx context.Context, id int64) error {
	return s.termRepo.DeleteTerm(ctx, id)
}
