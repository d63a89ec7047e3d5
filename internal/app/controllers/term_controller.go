package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/app/services"
	"github.com/campusflow/backend/internal/middleware"
)

// TermController manages enrollment periods.
type TermController struct {
	termService services.TermService
	logger      zerolog.Logger
}

// NewTermController creates a new TermController.
func NewTermController(termService services.TermService, logger zerolog.Logger) *TermController {
	return &TermController{
		termService: termService,
		logger:      logger,
	}
}

// ListTerms lists enrollment periods
// @Summary List terms
// @Description Terms ordered by start date descending, optionally filtered by name substring
// @Tags terms
// @Produce json
// @Param q query string false "Case-insensitive name filter"
// @Success 200 {array} models.Term
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /terms [get]
func (c *TermController) ListTerms(ctx *gin.Context) {
	terms, err := c.termService.ListTerms(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list terms")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, terms)
}

// CreateTerm creates a new enrollment period
// @Summary Create a term
// @Tags terms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTermRequest true "Term information"
// @Success 201 {object} models.Term
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /terms [post]
func (c *TermController) CreateTerm(ctx *gin.Context) {
	var req dto.CreateTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("invalid request").WithDetail(middleware.FormatBindingError(err)))
		return
	}

	term, err := c.termService.CreateTerm(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, term)
}

// UpdateTerm replaces a term's fields
// @Summary Update a term
// @Tags terms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Term ID"
// @Param request body dto.UpdateTermRequest true "Term information"
// @Success 200 {object} models.Term
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Term not found"
// @Router /terms/{id} [put]
func (c *TermController) UpdateTerm(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid term id"))
		return
	}

	var req dto.UpdateTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("invalid request").WithDetail(middleware.FormatBindingError(err)))
		return
	}

	term, err := c.termService.UpdateTerm(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, term)
}

// DeleteTerm removes a term
// @Summary Delete a term
// @Tags terms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Term ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid term id"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Term not found"
// @Failure 409 {object} dto.ErrorResponse "Term is referenced by selections"
// @Router /terms/{id} [delete]
func (c *TermController) DeleteTerm(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid term id"))
		return
	}

	if err := c.termService.DeleteTerm(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("termID", id).Msg("Term deleted")
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "term deleted"})
}
