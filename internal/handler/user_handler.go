package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// UserCommander defines the write-side operations used by UserHandler.
type UserCommander interface {
	UpdateUser(cqrs.UpdateUserCommand) (*models.UserView, error)
}

// UserQuerier defines the read-side operations used by UserHandler.
type UserQuerier interface {
	GetUser(cqrs.GetUserQuery) (*models.UserView, error)
}

// UserHandler routes requests to the command or query service as appropriate.
type UserHandler struct {
	commands UserCommander
	queries  UserQuerier
}

type UpdateUserRequest struct {
	Email     string `json:"email" validate:"omitempty,email"`
	IDCardURL string `json:"idCardUrl"`
	PIN       string `json:"pin" validate:"omitempty,len=4,numeric"`
}

func NewUserHandler(commands UserCommander, queries UserQuerier) *UserHandler {
	return &UserHandler{commands: commands, queries: queries}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	requestingUserID, _ := middleware.GetUserID(c)
	requestingRole, _ := middleware.GetRole(c)

	view, err := h.queries.GetUser(cqrs.GetUserQuery{
		UserID:           userID,
		RequestingUserID: requestingUserID,
		RequestingRole:   requestingRole,
	})
	if err != nil {
		if err.Error() == "forbidden" {
			middleware.RespondWithError(c, http.StatusForbidden, "You can only access your own user details")
			return
		}
		middleware.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")
	requestingUserID, _ := middleware.GetUserID(c)

	if userID != requestingUserID {
		middleware.RespondWithError(c, http.StatusForbidden, "You can only update your own user details")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	view, err := h.commands.UpdateUser(cqrs.UpdateUserCommand{
		UserID:    userID,
		Email:     req.Email,
		IDCardURL: req.IDCardURL,
		PIN:       req.PIN,
	})
	if err != nil {
		if err.Error() == "user not found" {
			middleware.RespondWithError(c, http.StatusNotFound, "User not found")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, view)
}
