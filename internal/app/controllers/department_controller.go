package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/services"
	"github.com/campusflow/backend/internal/middleware"
)

// DepartmentController serves the department lookup table.
type DepartmentController struct {
	departmentService services.DepartmentService
	logger            zerolog.Logger
}

// NewDepartmentController creates a new DepartmentController.
func NewDepartmentController(departmentService services.DepartmentService, logger zerolog.Logger) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		logger:            logger,
	}
}

// ListDepartments lists all departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.ListDepartments(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list departments")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}
