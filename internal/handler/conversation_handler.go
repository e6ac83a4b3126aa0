package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/middleware"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
)

// ConversationCommander defines the write-side operations used by ConversationHandler.
type ConversationCommander interface {
	CreateConversation(context.Context, cqrs.CreateConversationCommand) (*models.Conversation, error)
}

// ConversationQuerier defines the read-side operations used by ConversationHandler.
type ConversationQuerier interface {
	ListConversations(context.Context, cqrs.ListConversationsQuery) ([]models.Conversation, error)
}

type ConversationHandler struct {
	commands ConversationCommander
	queries  ConversationQuerier
}

type CreateConversationRequest struct {
	UserID  int    `json:"userId" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=chat voice action"`
}

func NewConversationHandler(commands ConversationCommander, queries ConversationQuerier) *ConversationHandler {
	return &ConversationHandler{commands: commands, queries: queries}
}

// ListConversations serves GET /api/conversations/:userId, newest first.
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	conversations, err := h.queries.ListConversations(c.Request.Context(), cqrs.ListConversationsQuery{UserID: userID})
	if err != nil {
		respondWithServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// CreateConversation serves POST /api/conversations. The generated response
// is part of the returned record.
func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid conversation data")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	conversation, err := h.commands.CreateConversation(c.Request.Context(), cqrs.CreateConversationCommand{
		UserID:  req.UserID,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		respondWithServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, conversation)
}
