package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// SupportCommander defines the write-side operations used by SupportHandler.
type SupportCommander interface {
	CreateMessage(cqrs.CreateSupportMessageCommand) (*models.SupportMessage, error)
}

// SupportQuerier defines the read-side operations used by SupportHandler.
type SupportQuerier interface {
	ListSupportMessages(cqrs.ListSupportMessagesQuery) ([]models.SupportMessage, error)
}

type SupportHandler struct {
	commands SupportCommander
	queries  SupportQuerier
}

type CreateSupportMessageRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Message string `json:"message" validate:"required"`
	Sender  string `json:"sender" validate:"required,oneof=user admin"`
}

func NewSupportHandler(commands SupportCommander, queries SupportQuerier) *SupportHandler {
	return &SupportHandler{commands: commands, queries: queries}
}

func (h *SupportHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	messages, err := h.queries.ListSupportMessages(cqrs.ListSupportMessagesQuery{UserID: userID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list support messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *SupportHandler) Create(c *gin.Context) {
	var req CreateSupportMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	cmd := cqrs.CreateSupportMessageCommand{
		UserID:  req.UserID,
		Message: req.Message,
		Sender:  req.Sender,
	}
	if cmd.Sender == "admin" {
		cmd.AdminID, _ = middleware.GetUserID(c)
	}

	message, err := h.commands.CreateMessage(cmd)
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create support message")
		return
	}

	c.JSON(http.StatusCreated, message)
}
