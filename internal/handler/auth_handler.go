package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// AuthCommander defines the write-side operations used by AuthHandler.
type AuthCommander interface {
	Register(cqrs.RegisterUserCommand) (*models.User, error)
}

// AuthQuerier defines the read-side operations used by AuthHandler.
type AuthQuerier interface {
	Login(cqrs.LoginCommand) (*models.User, string, error)
	RefreshToken(cqrs.RefreshTokenCommand) (string, error)
}

// AuthHandler handles registration, login and token refresh.
type AuthHandler struct {
	commands AuthCommander
	queries  AuthQuerier
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	AccountType string `json:"accountType" validate:"required,oneof=personal business"`
	IDCardURL   string `json:"idCardUrl"`
	PIN         string `json:"pin" validate:"omitempty,len=4,numeric"`
}

type LoginRequest struct {
	// Identifier is an email when it contains '@', a username otherwise.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type AuthResponse struct {
	User  *models.UserView `json:"user"`
	Token string           `json:"token,omitempty"`
}

func NewAuthHandler(commands AuthCommander, queries AuthQuerier) *AuthHandler {
	return &AuthHandler{commands: commands, queries: queries}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, err := h.commands.Register(cqrs.RegisterUserCommand{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: req.DateOfBirth,
		Category:    req.AccountType,
		IDCardURL:   req.IDCardURL,
		PIN:         req.PIN,
	})
	if err != nil {
		if err.Error() == "username or email already exists" {
			middleware.RespondWithError(c, http.StatusConflict, "Username or email already exists")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{User: user.ToView()})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	user, token, err := h.queries.Login(cqrs.LoginCommand{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		switch err.Error() {
		case "account banned":
			middleware.RespondWithError(c, http.StatusForbidden, "Account banned. Please contact support.")
		case "account pending approval":
			middleware.RespondWithError(c, http.StatusForbidden, "Account pending approval")
		default:
			middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: user.ToView(), Token: token})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	token, err := h.queries.RefreshToken(cqrs.RefreshTokenCommand{Token: req.Token})
	if err != nil {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
