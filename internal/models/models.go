package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User categories determine which default account set is provisioned on approval.
const (
	CategoryPersonal = "personal"
	CategoryBusiness = "business"
)

// User roles. Admins moderate registrations and pending transactions.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Transaction statuses. A transaction is created pending and settled exactly once.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Transaction types.
const (
	TypeCredit   = "credit"
	TypeDebit    = "debit"
	TypeTransfer = "transfer"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DateOfBirth  string    `json:"dateOfBirth"`
	IDCardURL    string    `json:"idCardUrl,omitempty"`
	Category     string    `json:"accountType"`
	Role         string    `json:"role"`
	IsApproved   bool      `json:"isApproved"`
	IsBanned     bool      `json:"isBanned"`
	PIN          string    `json:"-"`
	BankID       string    `json:"ubsId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Account struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	AccountName   string          `json:"accountName"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
	IsFrozen      bool            `json:"isFrozen"`
	BankID        string          `json:"ubsId"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type Transaction struct {
	ID              string          `json:"id"`
	FromAccountID   string          `json:"fromAccountId,omitempty"`
	ToAccountID     string          `json:"toAccountId,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	Description     string          `json:"description,omitempty"`
	Status          string          `json:"status"`
	AdminID         string          `json:"adminId,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type SupportMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	AdminID   string    `json:"adminId,omitempty"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
