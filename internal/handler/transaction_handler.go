package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	CreateTransaction(cqrs.CreateTransactionCommand) (*models.Transaction, error)
	SetStatus(cqrs.SetTransactionStatusCommand) (*models.Transaction, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	ListByAccount(cqrs.ListTransactionsQuery) ([]models.Transaction, error)
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

// CreateTransactionRequest carries a new pending transaction. Amount is a
// decimal string; its sign is not checked here — intake stores what the
// client sent and moderation decides.
type CreateTransactionRequest struct {
	FromAccountID   string `json:"fromAccountId"`
	ToAccountID     string `json:"toAccountId"`
	Amount          string `json:"amount" validate:"required"`
	TransactionType string `json:"transactionType" validate:"required,oneof=credit debit transfer"`
	Description     string `json:"description"`
}

type SetTransactionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	transaction, err := h.commands.CreateTransaction(cqrs.CreateTransactionCommand{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        amount,
		Type:          req.TransactionType,
		Description:   req.Description,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// SetStatus records the admin decision. It deliberately does not touch any
// balance: that is a separate account update the client issues afterwards.
func (h *TransactionHandler) SetStatus(c *gin.Context) {
	transactionID := c.Param("id")
	adminID, _ := middleware.GetUserID(c)

	var req SetTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	transaction, err := h.commands.SetStatus(cqrs.SetTransactionStatusCommand{
		TransactionID: transactionID,
		Status:        req.Status,
		AdminID:       adminID,
	})
	if err != nil {
		switch err.Error() {
		case "transaction not found":
			middleware.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		case "transaction already settled":
			middleware.RespondWithError(c, http.StatusConflict, "Transaction has already been approved or rejected")
		case "invalid status":
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		default:
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update transaction")
		}
		return
	}

	c.JSON(http.StatusOK, transaction)
}

func (h *TransactionHandler) ListByAccount(c *gin.Context) {
	accountID := c.Param("accountId")

	transactions, err := h.queries.ListByAccount(cqrs.ListTransactionsQuery{AccountID: accountID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, ListTransactionsResponse{Transactions: transactions})
}
