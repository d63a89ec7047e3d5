package services

import (
	"context"

	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/app/repositories"
)

// DepartmentService exposes the department lookup table.
type DepartmentService interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
}

type departmentServiceImpl struct {
	departmentRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository) DepartmentService {
	return &departmentServiceImpl{departmentRepo: departmentRepo}
}

// ListDepartments returns all departments ordered by name.
func (s *departmentServiceImpl) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.ListDepartments(ctx)
}
