package query

import (
	"testing"
	"time"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/repository/memory"
	"github.com/allyglazer/UBSSwissBankDigital/internal/utils"

	"github.com/shopspring/decimal"
)

func seedTransaction(t *testing.T, store *memory.Store, from, to, status string, age time.Duration) *models.Transaction {
	t.Helper()
	transaction := &models.Transaction{
		ID:              utils.GenerateID("txn"),
		FromAccountID:   from,
		ToAccountID:     to,
		Amount:          decimal.NewFromInt(10),
		TransactionType: models.TypeTransfer,
		Status:          status,
		TransactionDate: time.Now().UTC().Add(-age),
	}
	if err := store.Transactions().Create(transaction); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return transaction
}

func TestListByAccountUnion(t *testing.T) {
	store := memory.NewStore()
	svc := NewTransactionQueryService(store.TransactionViews())

	outgoing := seedTransaction(t, store, "acc-1", "acc-2", models.StatusApproved, 3*time.Hour)
	incoming := seedTransaction(t, store, "acc-3", "acc-1", models.StatusPending, 1*time.Hour)
	selfTransfer := seedTransaction(t, store, "acc-1", "acc-1", models.StatusPending, 2*time.Hour)
	seedTransaction(t, store, "acc-3", "acc-2", models.StatusPending, 0) // unrelated

	got, err := svc.ListByAccount(cqrs.ListTransactionsQuery{AccountID: "acc-1"})
	if err != nil {
		t.Fatalf("ListByAccount: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d transactions, want 3", len(got))
	}
	// Newest first; the self-transfer appears exactly once.
	wantOrder := []string{incoming.ID, selfTransfer.ID, outgoing.ID}
	for i, transaction := range got {
		if transaction.ID != wantOrder[i] {
			t.Errorf("got[%d] = %s, want %s", i, transaction.ID, wantOrder[i])
		}
	}
}

func TestListPendingQueue(t *testing.T) {
	store := memory.NewStore()
	svc := NewTransactionQueryService(store.TransactionViews())

	seedTransaction(t, store, "acc-1", "acc-2", models.StatusApproved, 3*time.Hour)
	seedTransaction(t, store, "acc-1", "", models.StatusRejected, 2*time.Hour)
	pending := seedTransaction(t, store, "", "acc-2", models.StatusPending, time.Hour)

	got, err := svc.ListPending(cqrs.ListPendingTransactionsQuery{})
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d pending transactions, want 1", len(got))
	}
	if got[0].ID != pending.ID {
		t.Errorf("got %s, want %s", got[0].ID, pending.ID)
	}
}

func TestGetUserOwnership(t *testing.T) {
	store := memory.NewStore()
	alice := seedUser(t, store, "alice", true, false)
	bob := seedUser(t, store, "bob", true, false)
	svc := NewUserQueryService(store.UserViews())

	tests := []struct {
		name    string
		query   cqrs.GetUserQuery
		wantErr string
	}{
		{"self", cqrs.GetUserQuery{UserID: alice.ID, RequestingUserID: alice.ID, RequestingRole: models.RoleCustomer}, ""},
		{"admin fetches anyone", cqrs.GetUserQuery{UserID: alice.ID, RequestingUserID: bob.ID, RequestingRole: models.RoleAdmin}, ""},
		{"other customer", cqrs.GetUserQuery{UserID: alice.ID, RequestingUserID: bob.ID, RequestingRole: models.RoleCustomer}, "forbidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := svc.GetUser(tt.query)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetUser: %v", err)
			}
			if view.ID != alice.ID {
				t.Errorf("got user %s, want %s", view.ID, alice.ID)
			}
		})
	}
}

func TestListUsersPendingOnly(t *testing.T) {
	store := memory.NewStore()
	seedUser(t, store, "alice", true, false)
	pending := seedUser(t, store, "carol", false, false)
	svc := NewUserQueryService(store.UserViews())

	all, err := svc.ListUsers(cqrs.ListUsersQuery{})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d users, want 2", len(all))
	}

	queue, err := svc.ListUsers(cqrs.ListUsersQuery{PendingOnly: true})
	if err != nil {
		t.Fatalf("ListUsers pending: %v", err)
	}
	if len(queue) != 1 || queue[0].ID != pending.ID {
		t.Errorf("pending queue = %v, want just %s", queue, pending.ID)
	}
}
