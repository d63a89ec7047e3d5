package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/app/services"
	"github.com/campusflow/backend/internal/middleware"
)

// SelectionController serves the student's active term selection.
type SelectionController struct {
	selectionService services.SelectionService
	logger           zerolog.Logger
}

// NewSelectionController creates a new SelectionController.
func NewSelectionController(selectionService services.SelectionService, logger zerolog.Logger) *SelectionController {
	return &SelectionController{
		selectionService: selectionService,
		logger:           logger,
	}
}

// GetCurrentTerm returns the caller's active term selection
// @Summary Get current term selection
// @Description Returns an empty object when the student has not selected a term
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CurrentSelectionResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /students/me/term [get]
func (c *SelectionController) GetCurrentTerm(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	selection, err := c.selectionService.GetCurrentSelection(ctx.Request.Context(), accountID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, selection)
}

// SelectTerm replaces the caller's term selection
// @Summary Select a term
// @Description Replaces any previous selection in a single transaction
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SelectTermRequest true "Term to select"
// @Success 200 {object} dto.CurrentSelectionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid term"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /students/me/term [patch]
func (c *SelectionController) SelectTerm(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.SelectTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("invalid request").WithDetail(middleware.FormatBindingError(err)))
		return
	}

	selection, err := c.selectionService.SelectTerm(ctx.Request.Context(), accountID, req.TermID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("accountID", accountID).Int64("termID", req.TermID).Msg("Term selection failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, selection)
}
