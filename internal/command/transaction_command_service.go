package command

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/events"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/utils"
)

// TransactionWriter defines the write-store operations
// TransactionCommandService needs.
type TransactionWriter interface {
	Create(*models.Transaction) error
	GetByID(id string) (*models.Transaction, error)
	Update(*models.Transaction) error
}

// TransactionCommandService handles transaction intake and the one-shot
// moderation decision. It never mutates balances: the balance adjustment
// after an approval is a separate account update issued by the client,
// and a failure between the two calls leaves them inconsistent.
type TransactionCommandService struct {
	writeRepo TransactionWriter
	publisher Publisher
}

func NewTransactionCommandService(writeRepo TransactionWriter, publisher Publisher) *TransactionCommandService {
	return &TransactionCommandService{writeRepo: writeRepo, publisher: publisher}
}

// CreateTransaction persists an intended money movement with status forced
// to pending. No ownership or balance validation happens at intake; the
// moderation step is where a human looks at it.
func (s *TransactionCommandService) CreateTransaction(cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
	transaction := &models.Transaction{
		ID:              utils.GenerateID("txn"),
		FromAccountID:   cmd.FromAccountID,
		ToAccountID:     cmd.ToAccountID,
		Amount:          cmd.Amount,
		TransactionType: cmd.Type,
		Description:     cmd.Description,
		Status:          models.StatusPending,
		TransactionDate: time.Now().UTC(),
	}
	if err := s.writeRepo.Create(transaction); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID: transaction.ID,
		FromAccountID: transaction.FromAccountID,
		ToAccountID:   transaction.ToAccountID,
		Amount:        transaction.Amount.String(),
		Type:          transaction.TransactionType,
	}); err != nil {
		log.Printf("Failed to publish transaction.created event: %v", err)
	}
	return transaction, nil
}

// SetStatus applies the admin decision. The transition is one-shot:
// pending -> approved or pending -> rejected, nothing after that.
// ApprovedAt is stamped if and only if the decision is an approval.
func (s *TransactionCommandService) SetStatus(cmd cqrs.SetTransactionStatusCommand) (*models.Transaction, error) {
	if cmd.Status != models.StatusApproved && cmd.Status != models.StatusRejected {
		return nil, fmt.Errorf("invalid status")
	}

	transaction, err := s.writeRepo.GetByID(cmd.TransactionID)
	if err != nil {
		return nil, err
	}
	if transaction.Status != models.StatusPending {
		return nil, fmt.Errorf("transaction already settled")
	}

	transaction.Status = cmd.Status
	transaction.AdminID = cmd.AdminID
	if cmd.Status == models.StatusApproved {
		now := time.Now().UTC()
		transaction.ApprovedAt = &now
	}
	if err := s.writeRepo.Update(transaction); err != nil {
		return nil, err
	}

	eventType := events.TransactionRejected
	if cmd.Status == models.StatusApproved {
		eventType = events.TransactionApproved
	}
	ctx := context.Background()
	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, eventType, events.TransactionDecidedEvent{
		TransactionID: transaction.ID,
		FromAccountID: transaction.FromAccountID,
		ToAccountID:   transaction.ToAccountID,
		Amount:        transaction.Amount.String(),
		Status:        transaction.Status,
		AdminID:       transaction.AdminID,
	}); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
	return transaction, nil
}
