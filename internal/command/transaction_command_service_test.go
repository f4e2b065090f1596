package command

import (
	"testing"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/repository/memory"

	"github.com/shopspring/decimal"
)

func newTransactionService() (*memory.Store, *TransactionCommandService) {
	store := memory.NewStore()
	return store, NewTransactionCommandService(store.Transactions(), nopPublisher{})
}

func TestCreateTransactionStartsPending(t *testing.T) {
	_, svc := newTransactionService()

	transaction, err := svc.CreateTransaction(cqrs.CreateTransactionCommand{
		FromAccountID: "acc-from",
		ToAccountID:   "acc-to",
		Amount:        decimal.NewFromInt(250),
		Type:          models.TypeTransfer,
		Description:   "rent",
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if transaction.Status != models.StatusPending {
		t.Errorf("status = %q, want %q", transaction.Status, models.StatusPending)
	}
	if transaction.ApprovedAt != nil {
		t.Error("ApprovedAt should be nil at intake")
	}
	if transaction.AdminID != "" {
		t.Errorf("AdminID = %q, want empty", transaction.AdminID)
	}
}

func TestSetStatusTransitions(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		wantErr        string
		wantApprovedAt bool
	}{
		{"approve", models.StatusApproved, "", true},
		{"reject", models.StatusRejected, "", false},
		{"back to pending", models.StatusPending, "invalid status", false},
		{"garbage status", "settled", "invalid status", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newTransactionService()
			created, err := svc.CreateTransaction(cqrs.CreateTransactionCommand{
				FromAccountID: "acc-from",
				Amount:        decimal.NewFromInt(40),
				Type:          models.TypeDebit,
			})
			if err != nil {
				t.Fatalf("CreateTransaction: %v", err)
			}

			decided, err := svc.SetStatus(cqrs.SetTransactionStatusCommand{
				TransactionID: created.ID,
				Status:        tt.status,
				AdminID:       "usr-admin",
			})
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetStatus: %v", err)
			}
			if decided.Status != tt.status {
				t.Errorf("status = %q, want %q", decided.Status, tt.status)
			}
			if decided.AdminID != "usr-admin" {
				t.Errorf("AdminID = %q, want usr-admin", decided.AdminID)
			}
			if got := decided.ApprovedAt != nil; got != tt.wantApprovedAt {
				t.Errorf("ApprovedAt set = %v, want %v", got, tt.wantApprovedAt)
			}
		})
	}
}

func TestSetStatusIsOneShot(t *testing.T) {
	store, svc := newTransactionService()

	created, _ := svc.CreateTransaction(cqrs.CreateTransactionCommand{
		FromAccountID: "acc-from",
		Amount:        decimal.NewFromInt(10),
		Type:          models.TypeDebit,
	})
	if _, err := svc.SetStatus(cqrs.SetTransactionStatusCommand{
		TransactionID: created.ID,
		Status:        models.StatusRejected,
		AdminID:       "usr-admin",
	}); err != nil {
		t.Fatalf("first SetStatus: %v", err)
	}

	_, err := svc.SetStatus(cqrs.SetTransactionStatusCommand{
		TransactionID: created.ID,
		Status:        models.StatusApproved,
		AdminID:       "usr-other",
	})
	if err == nil || err.Error() != "transaction already settled" {
		t.Fatalf("err = %v, want settled error", err)
	}

	// The stored record keeps the first decision.
	stored, _ := store.Transactions().GetByID(created.ID)
	if stored.Status != models.StatusRejected {
		t.Errorf("status = %q, want %q", stored.Status, models.StatusRejected)
	}
	if stored.AdminID != "usr-admin" {
		t.Errorf("AdminID = %q, want usr-admin", stored.AdminID)
	}
}

func TestSetStatusUnknownTransaction(t *testing.T) {
	_, svc := newTransactionService()

	if _, err := svc.SetStatus(cqrs.SetTransactionStatusCommand{
		TransactionID: "txn-missing",
		Status:        models.StatusApproved,
	}); err == nil {
		t.Error("expected error for unknown transaction")
	}
}

// Approval records the decision but moves no money. Balances only change
// when the client follows up with an account update, so a missing second
// call leaves the ledger showing an approved transfer with untouched
// balances.
func TestApprovalDoesNotMoveBalances(t *testing.T) {
	store, userCmd, accountCmd := newTestServices()
	txnCmd := NewTransactionCommandService(store.Transactions(), nopPublisher{})

	user, err := userCmd.Register(registerCmd("alice", "alice@example.com", models.CategoryPersonal))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := userCmd.Approve(cqrs.ApproveUserCommand{UserID: user.ID}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	accounts := userAccounts(t, store, user.ID)
	current, savings := accounts[0], accounts[1]

	seed := decimal.NewFromInt(500)
	if _, err := accountCmd.UpdateAccount(cqrs.UpdateAccountCommand{AccountID: current.ID, Balance: &seed}); err != nil {
		t.Fatalf("seed balance: %v", err)
	}

	transaction, err := txnCmd.CreateTransaction(cqrs.CreateTransactionCommand{
		FromAccountID: current.ID,
		ToAccountID:   savings.ID,
		Amount:        decimal.NewFromInt(120),
		Type:          models.TypeTransfer,
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if _, err := txnCmd.SetStatus(cqrs.SetTransactionStatusCommand{
		TransactionID: transaction.ID,
		Status:        models.StatusApproved,
		AdminID:       "usr-admin",
	}); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	gotCurrent, _ := store.Accounts().GetByID(current.ID)
	gotSavings, _ := store.Accounts().GetByID(savings.ID)
	if !gotCurrent.Balance.Equal(seed) {
		t.Errorf("current balance = %s, want %s", gotCurrent.Balance, seed)
	}
	if !gotSavings.Balance.IsZero() {
		t.Errorf("savings balance = %s, want 0", gotSavings.Balance)
	}

	// The explicit follow-up updates are what settle the transfer.
	newFrom := seed.Sub(decimal.NewFromInt(120))
	newTo := decimal.NewFromInt(120)
	if _, err := accountCmd.UpdateAccount(cqrs.UpdateAccountCommand{AccountID: current.ID, Balance: &newFrom}); err != nil {
		t.Fatalf("debit update: %v", err)
	}
	if _, err := accountCmd.UpdateAccount(cqrs.UpdateAccountCommand{AccountID: savings.ID, Balance: &newTo}); err != nil {
		t.Fatalf("credit update: %v", err)
	}
	gotCurrent, _ = store.Accounts().GetByID(current.ID)
	if !gotCurrent.Balance.Equal(decimal.NewFromInt(380)) {
		t.Errorf("current balance = %s, want 380", gotCurrent.Balance)
	}
}
