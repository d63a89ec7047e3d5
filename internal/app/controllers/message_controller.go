package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusflow/backend/internal/app/models/dto"
	"github.com/campusflow/backend/internal/app/services"
	"github.com/campusflow/backend/internal/middleware"
)

// MessageController handles account-to-account messages.
type MessageController struct {
	messageService services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController.
func NewMessageController(messageService services.MessageService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		messageService: messageService,
		logger:         logger,
	}
}

// SendMessage sends a message to another account
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Recipient not found"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("invalid request").WithDetail(middleware.FormatBindingError(err)))
		return
	}

	message, err := c.messageService.SendMessage(ctx.Request.Context(), accountID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

// ListMessages lists the caller's messages
// @Summary List messages
// @Description Messages sent or received by the caller, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Message
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /messages [get]
func (c *MessageController) ListMessages(ctx *gin.Context) {
	accountID, ok := middleware.AccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	messages, err := c.messageService.ListMessages(ctx.Request.Context(), accountID)
	if err != nil {
		c.logger.Error().Err(err).Int64("accountID", accountID).Msg("Failed to list messages")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}
