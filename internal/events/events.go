package events

import "time"

// Event types
const (
	UserRegistered = "user.registered"
	UserApproved   = "user.approved"
	UserBanned     = "user.banned"

	AccountProvisioned = "account.provisioned"
	BalanceUpdated     = "balance.updated"

	TransactionCreated  = "transaction.created"
	TransactionApproved = "transaction.approved"
	TransactionRejected = "transaction.rejected"
)

// Stream names
const (
	UserEventsStream        = "user.events"
	AccountEventsStream     = "account.events"
	TransactionEventsStream = "transaction.events"
)

// Base event structure
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// User events
type UserRegisteredEvent struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Category string `json:"accountType"`
}

type UserApprovedEvent struct {
	UserID  string `json:"userId"`
	AdminID string `json:"adminId"`
}

type UserBannedEvent struct {
	UserID  string `json:"userId"`
	AdminID string `json:"adminId"`
}

// Account events
type AccountProvisionedEvent struct {
	AccountID     string `json:"accountId"`
	AccountNumber string `json:"accountNumber"`
	UserID        string `json:"userId"`
	AccountType   string `json:"accountType"`
}

type BalanceUpdatedEvent struct {
	AccountID  string `json:"accountId"`
	UserID     string `json:"userId"`
	NewBalance string `json:"newBalance"`
}

// Transaction events
type TransactionCreatedEvent struct {
	TransactionID string `json:"transactionId"`
	FromAccountID string `json:"fromAccountId,omitempty"`
	ToAccountID   string `json:"toAccountId,omitempty"`
	Amount        string `json:"amount"`
	Type          string `json:"type"`
}

// TransactionDecidedEvent reports a one-shot moderation decision.
// Published as transaction.approved or transaction.rejected.
type TransactionDecidedEvent struct {
	TransactionID string `json:"transactionId"`
	FromAccountID string `json:"fromAccountId,omitempty"`
	ToAccountID   string `json:"toAccountId,omitempty"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	AdminID       string `json:"adminId"`
}
