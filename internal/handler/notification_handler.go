package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// NotificationCommander defines the write-side operations used by NotificationHandler.
type NotificationCommander interface {
	CreateNotification(cqrs.CreateNotificationCommand) (*models.Notification, error)
	MarkRead(id string) error
}

// NotificationQuerier defines the read-side operations used by NotificationHandler.
type NotificationQuerier interface {
	ListNotifications(cqrs.ListNotificationsQuery) ([]models.Notification, error)
}

type NotificationHandler struct {
	commands NotificationCommander
	queries  NotificationQuerier
}

type CreateNotificationRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=transaction security system"`
}

func NewNotificationHandler(commands NotificationCommander, queries NotificationQuerier) *NotificationHandler {
	return &NotificationHandler{commands: commands, queries: queries}
}

func (h *NotificationHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	notifications, err := h.queries.ListNotifications(cqrs.ListNotificationsQuery{UserID: userID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	notification, err := h.commands.CreateNotification(cqrs.CreateNotificationCommand{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create notification")
		return
	}

	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	if err := h.commands.MarkRead(id); err != nil {
		if err.Error() == "notification not found" {
			middleware.RespondWithError(c, http.StatusNotFound, "Notification not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to mark notification read")
		return
	}

	c.Status(http.StatusNoContent)
}
