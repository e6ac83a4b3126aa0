package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/middleware"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/models"
)

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	CreateTransaction(context.Context, cqrs.CreateTransactionCommand) (*models.Transaction, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	GetTransaction(context.Context, cqrs.GetTransactionQuery) (*models.Transaction, error)
	ListTransactions(context.Context, cqrs.ListTransactionsQuery) ([]models.Transaction, error)
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

type CreateTransactionRequest struct {
	UserID           int             `json:"userId" validate:"required"`
	Type             string          `json:"type" validate:"required,oneof=send receive payment deposit"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	Recipient        string          `json:"recipient"`
	RecipientAccount string          `json:"recipientAccount"`
	Description      string          `json:"description"`
	Status           string          `json:"status" validate:"omitempty,oneof=pending completed failed"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

// ListTransactions serves GET /api/transactions/:userId, newest first.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	transactions, err := h.queries.ListTransactions(c.Request.Context(), cqrs.ListTransactionsQuery{UserID: userID})
	if err != nil {
		respondWithServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetTransaction serves GET /api/transaction/:id.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	transaction, err := h.queries.GetTransaction(c.Request.Context(), cqrs.GetTransactionQuery{TransactionID: id})
	if err != nil {
		respondWithServiceError(c, err, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// CreateTransaction serves POST /api/transactions. A "send" transaction
// also debits the owner's balance before the response is written.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid transaction data")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	transaction, err := h.commands.CreateTransaction(c.Request.Context(), cqrs.CreateTransactionCommand{
		UserID:           req.UserID,
		Type:             req.Type,
		Amount:           req.Amount,
		Recipient:        req.Recipient,
		RecipientAccount: req.RecipientAccount,
		Description:      req.Description,
		Status:           req.Status,
	})
	if err != nil {
		respondWithServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusCreated, transaction)
}
