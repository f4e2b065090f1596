package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	UpdateAccount(cqrs.UpdateAccountCommand) (*models.Account, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	ListAccounts(cqrs.ListAccountsQuery) ([]models.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

// UpdateAccountRequest carries a partial field merge. Balance is a decimal
// string; pointer fields distinguish "absent" from zero values.
type UpdateAccountRequest struct {
	AccountName *string `json:"accountName"`
	Balance     *string `json:"balance"`
	IsActive    *bool   `json:"isActive"`
	IsFrozen    *bool   `json:"isFrozen"`
}

type ListAccountsResponse struct {
	Accounts []models.Account `json:"accounts"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	userID := c.Param("userId")

	accounts, err := h.queries.ListAccounts(cqrs.ListAccountsQuery{UserID: userID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, ListAccountsResponse{Accounts: accounts})
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	accountID := c.Param("id")

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := cqrs.UpdateAccountCommand{
		AccountID:   accountID,
		AccountName: req.AccountName,
		IsActive:    req.IsActive,
		IsFrozen:    req.IsFrozen,
	}
	if req.Balance != nil {
		balance, err := decimal.NewFromString(*req.Balance)
		if err != nil {
			middleware.RespondWithError(c, http.StatusBadRequest, "Invalid balance")
			return
		}
		cmd.Balance = &balance
	}

	account, err := h.commands.UpdateAccount(cmd)
	if err != nil {
		if err.Error() == "account not found" {
			middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, account)
}
