package command

import (
	"context"
	"testing"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/events"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

func TestHandleTransactionEvent(t *testing.T) {
	store, userCmd, _ := newTestServices()
	user, err := userCmd.Register(registerCmd("admin", "admin@example.com", models.CategoryPersonal))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	account := userAccounts(t, store, user.ID)[0]
	svc := NewNotificationCommandService(store.Notifications(), store.AccountViews())

	tests := []struct {
		name              string
		event             events.Event
		wantNotifications int
		wantTitle         string
	}{
		{
			name: "approval notifies the source account owner",
			event: events.Event{
				Type: events.TransactionApproved,
				Data: events.TransactionDecidedEvent{
					TransactionID: "txn-001",
					FromAccountID: account.ID,
					Amount:        "120",
					Status:        models.StatusApproved,
				},
			},
			wantNotifications: 1,
			wantTitle:         "Transaction approved",
		},
		{
			name: "rejection notifies the destination owner when no source",
			event: events.Event{
				Type: events.TransactionRejected,
				Data: events.TransactionDecidedEvent{
					TransactionID: "txn-002",
					ToAccountID:   account.ID,
					Amount:        "50",
					Status:        models.StatusRejected,
				},
			},
			wantNotifications: 1,
			wantTitle:         "Transaction rejected",
		},
		{
			name: "intake events are ignored",
			event: events.Event{
				Type: events.TransactionCreated,
				Data: events.TransactionCreatedEvent{TransactionID: "txn-003", FromAccountID: account.ID},
			},
			wantNotifications: 0,
		},
		{
			name: "decision without any account is dropped",
			event: events.Event{
				Type: events.TransactionApproved,
				Data: events.TransactionDecidedEvent{TransactionID: "txn-004", Amount: "10"},
			},
			wantNotifications: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := store.Notifications().ListByUserID(user.ID)

			if err := svc.HandleTransactionEvent(context.Background(), tt.event); err != nil {
				t.Fatalf("HandleTransactionEvent: %v", err)
			}

			after, _ := store.Notifications().ListByUserID(user.ID)
			if got := len(after) - len(before); got != tt.wantNotifications {
				t.Fatalf("created %d notifications, want %d", got, tt.wantNotifications)
			}
			if tt.wantNotifications > 0 {
				latest := after[0]
				if latest.Title != tt.wantTitle {
					t.Errorf("title = %q, want %q", latest.Title, tt.wantTitle)
				}
				if latest.Type != "transaction" {
					t.Errorf("type = %q, want transaction", latest.Type)
				}
				if latest.IsRead {
					t.Error("new notification should be unread")
				}
			}
		})
	}
}

func TestMarkNotificationRead(t *testing.T) {
	store, _, _ := newTestServices()
	svc := NewNotificationCommandService(store.Notifications(), store.AccountViews())

	notification, err := svc.CreateNotification(cqrs.CreateNotificationCommand{
		UserID: "usr-001", Title: "Welcome", Message: "Your account is ready", Type: "system",
	})
	if err != nil {
		t.Fatalf("CreateNotification: %v", err)
	}

	if err := svc.MarkRead(notification.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	list, _ := store.Notifications().ListByUserID("usr-001")
	if len(list) != 1 || !list[0].IsRead {
		t.Error("notification should be marked read")
	}

	if err := svc.MarkRead("ntf-missing"); err == nil {
		t.Error("expected error for unknown notification")
	}
}
