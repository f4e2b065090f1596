package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// AdminCommander defines the moderation operations used by AdminHandler.
type AdminCommander interface {
	Approve(cqrs.ApproveUserCommand) (*models.UserView, error)
	Ban(cqrs.BanUserCommand) (*models.UserView, error)
}

// AdminQuerier defines the dashboard reads used by AdminHandler.
type AdminQuerier interface {
	ListUsers(cqrs.ListUsersQuery) ([]models.UserView, error)
}

// PendingTransactionQuerier serves the moderation queue.
type PendingTransactionQuerier interface {
	ListPending(cqrs.ListPendingTransactionsQuery) ([]models.Transaction, error)
}

// AdminHandler is the moderation surface: user approval queue, bans and
// the pending-transaction queue. Every route behind it runs through
// AdminMiddleware.
type AdminHandler struct {
	commands     AdminCommander
	queries      AdminQuerier
	transactions PendingTransactionQuerier
}

type ListUsersResponse struct {
	Users []models.UserView `json:"users"`
}

func NewAdminHandler(commands AdminCommander, queries AdminQuerier, transactions PendingTransactionQuerier) *AdminHandler {
	return &AdminHandler{commands: commands, queries: queries, transactions: transactions}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	h.listUsers(c, false)
}

func (h *AdminHandler) ListPendingUsers(c *gin.Context) {
	h.listUsers(c, true)
}

func (h *AdminHandler) listUsers(c *gin.Context, pendingOnly bool) {
	users, err := h.queries.ListUsers(cqrs.ListUsersQuery{PendingOnly: pendingOnly})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, ListUsersResponse{Users: users})
}

func (h *AdminHandler) ApproveUser(c *gin.Context) {
	userID := c.Param("id")
	adminID, _ := middleware.GetUserID(c)

	view, err := h.commands.Approve(cqrs.ApproveUserCommand{UserID: userID, AdminID: adminID})
	if err != nil {
		if err.Error() == "user not found" {
			middleware.RespondWithError(c, http.StatusNotFound, "User not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to approve user")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) BanUser(c *gin.Context) {
	userID := c.Param("id")
	adminID, _ := middleware.GetUserID(c)

	view, err := h.commands.Ban(cqrs.BanUserCommand{UserID: userID, AdminID: adminID})
	if err != nil {
		if err.Error() == "user not found" {
			middleware.RespondWithError(c, http.StatusNotFound, "User not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to ban user")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) ListPendingTransactions(c *gin.Context) {
	transactions, err := h.transactions.ListPending(cqrs.ListPendingTransactionsQuery{})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list pending transactions")
		return
	}

	c.JSON(http.StatusOK, ListTransactionsResponse{Transactions: transactions})
}
