package query

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/utils"
)

var (
	jwtSecretOnce sync.Once
	jwtSecretVal  []byte
)

func jwtSecret() []byte {
	jwtSecretOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			panic("JWT_SECRET environment variable is not set")
		}
		jwtSecretVal = []byte(secret)
	})
	return jwtSecretVal
}

// Claims is the JWT payload.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// CredentialReader looks up users by either login identifier.
type CredentialReader interface {
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// AuthQueryService handles login and token refresh. There's no
// CommandService for auth because these operations don't mutate
// application state.
type AuthQueryService struct {
	userRepo CredentialReader
	tokenTTL time.Duration
}

func NewAuthQueryService(userRepo CredentialReader, tokenTTL time.Duration) *AuthQueryService {
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthQueryService{userRepo: userRepo, tokenTTL: tokenTTL}
}

// Login resolves the identifier (email if it contains '@', username
// otherwise), checks the password, then the ban flag, then the approval
// flag — in that order — and issues a token on success.
func (s *AuthQueryService) Login(cmd cqrs.LoginCommand) (*models.User, string, error) {
	var user *models.User
	var err error
	if utils.IsEmail(cmd.Identifier) {
		user, err = s.userRepo.GetByEmail(cmd.Identifier)
	} else {
		user, err = s.userRepo.GetByUsername(cmd.Identifier)
	}
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if !utils.CheckPassword(cmd.Password, user.PasswordHash) {
		return nil, "", fmt.Errorf("invalid credentials")
	}
	if user.IsBanned {
		return nil, "", fmt.Errorf("account banned")
	}
	if !user.IsApproved {
		return nil, "", fmt.Errorf("account pending approval")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthQueryService) RefreshToken(cmd cqrs.RefreshTokenCommand) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cmd.Token, claims, func(token *jwt.Token) (any, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return s.signToken(claims.UserID, claims.Email, claims.Role)
}

func (s *AuthQueryService) generateToken(user *models.User) (string, error) {
	return s.signToken(user.ID, user.Email, user.Role)
}

func (s *AuthQueryService) signToken(userID, email, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}
