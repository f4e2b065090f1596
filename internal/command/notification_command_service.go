package command

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/events"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/utils"
)

// NotificationWriter defines the store operations the notification service needs.
type NotificationWriter interface {
	Create(*models.Notification) error
	MarkRead(id string) error
}

// AccountResolver resolves an account to its owner for event fan-out.
type AccountResolver interface {
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

// NotificationCommandService creates notifications, both from direct API
// calls and from the transaction event stream.
type NotificationCommandService struct {
	writeRepo NotificationWriter
	accounts  AccountResolver
}

func NewNotificationCommandService(writeRepo NotificationWriter, accounts AccountResolver) *NotificationCommandService {
	return &NotificationCommandService{writeRepo: writeRepo, accounts: accounts}
}

func (s *NotificationCommandService) CreateNotification(cmd cqrs.CreateNotificationCommand) (*models.Notification, error) {
	notification := &models.Notification{
		ID:        utils.GenerateID("ntf"),
		UserID:    cmd.UserID,
		Title:     cmd.Title,
		Message:   cmd.Message,
		Type:      cmd.Type,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.writeRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *NotificationCommandService) MarkRead(id string) error {
	return s.writeRepo.MarkRead(id)
}

// HandleTransactionEvent is the Redis stream subscriber handler. A
// moderation decision fans out as a notification to the owner of the
// source account (or the destination, for inbound credits).
func (s *NotificationCommandService) HandleTransactionEvent(ctx context.Context, event events.Event) error {
	if event.Type != events.TransactionApproved && event.Type != events.TransactionRejected {
		return nil
	}

	dataBytes, _ := json.Marshal(event.Data)
	var data events.TransactionDecidedEvent
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		return fmt.Errorf("failed to unmarshal %s event: %w", event.Type, err)
	}

	accountID := data.FromAccountID
	if accountID == "" {
		accountID = data.ToAccountID
	}
	if accountID == "" {
		return nil
	}
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to resolve account for notification: %w", err)
	}

	title := "Transaction rejected"
	message := fmt.Sprintf("Your transaction of %s was rejected.", data.Amount)
	if event.Type == events.TransactionApproved {
		title = "Transaction approved"
		message = fmt.Sprintf("Your transaction of %s was approved.", data.Amount)
	}

	_, err = s.CreateNotification(cqrs.CreateNotificationCommand{
		UserID:  account.UserID,
		Title:   title,
		Message: message,
		Type:    "transaction",
	})
	if err != nil {
		log.Printf("Failed to create notification for account %s: %v", accountID, err)
		return err
	}
	return nil
}
