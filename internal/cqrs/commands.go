package cqrs

import "github.com/shopspring/decimal"

type RegisterUserCommand struct {
	Username    string
	Email       string
	Password    string
	DateOfBirth string
	Category    string
	IDCardURL   string
	PIN         string
}

type UpdateUserCommand struct {
	UserID    string
	Email     string
	IDCardURL string
	PIN       string
}

type ApproveUserCommand struct {
	UserID  string
	AdminID string
}

type BanUserCommand struct {
	UserID  string
	AdminID string
}

type UpdateAccountCommand struct {
	AccountID   string
	AccountName *string
	Balance     *decimal.Decimal
	IsActive    *bool
	IsFrozen    *bool
}

type CreateTransactionCommand struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Type          string
	Description   string
}

type SetTransactionStatusCommand struct {
	TransactionID string
	Status        string
	AdminID       string
}

type CreateNotificationCommand struct {
	UserID  string
	Title   string
	Message string
	Type    string
}

type CreateSupportMessageCommand struct {
	UserID  string
	AdminID string
	Message string
	Sender  string
}

type LoginCommand struct {
	Identifier string
	Password   string
}

type RefreshTokenCommand struct {
	Token string
}
