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

// ContactCommander defines the write-side operations used by ContactHandler.
type ContactCommander interface {
	CreateContact(context.Context, cqrs.CreateContactCommand) (*models.Contact, error)
}

// ContactQuerier defines the read-side operations used by ContactHandler.
type ContactQuerier interface {
	ListContacts(context.Context, cqrs.ListContactsQuery) ([]models.Contact, error)
	ListFrequentContacts(context.Context, cqrs.ListFrequentContactsQuery) ([]models.Contact, error)
}

type ContactHandler struct {
	commands ContactCommander
	queries  ContactQuerier
}

type CreateContactRequest struct {
	UserID     int    `json:"userId" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Account    string `json:"account" validate:"required"`
	Bank       string `json:"bank"`
	IsFrequent bool   `json:"isFrequent"`
}

func NewContactHandler(commands ContactCommander, queries ContactQuerier) *ContactHandler {
	return &ContactHandler{commands: commands, queries: queries}
}

// ListContacts serves GET /api/contacts/:userId.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	contacts, err := h.queries.ListContacts(c.Request.Context(), cqrs.ListContactsQuery{UserID: userID})
	if err != nil {
		respondWithServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// ListFrequentContacts serves GET /api/contacts/:userId/frequent.
func (h *ContactHandler) ListFrequentContacts(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	contacts, err := h.queries.ListFrequentContacts(c.Request.Context(), cqrs.ListFrequentContactsQuery{UserID: userID})
	if err != nil {
		respondWithServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// CreateContact serves POST /api/contacts.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid contact data")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	contact, err := h.commands.CreateContact(c.Request.Context(), cqrs.CreateContactCommand{
		UserID:     req.UserID,
		Name:       req.Name,
		Account:    req.Account,
		Bank:       req.Bank,
		IsFrequent: req.IsFrequent,
	})
	if err != nil {
		respondWithServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, contact)
}
