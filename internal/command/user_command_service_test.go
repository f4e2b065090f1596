package command

import (
	"context"
	"testing"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	"github.com/allyglazer/UBSSwissBankDigital/internal/repository/memory"
	"github.com/allyglazer/UBSSwissBankDigital/internal/utils"
)

// nopPublisher drops events; command behaviour must not depend on the stream.
type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, stream, eventType string, data any) error {
	return nil
}

func newTestServices() (*memory.Store, *UserCommandService, *AccountCommandService) {
	store := memory.NewStore()
	accountCmd := NewAccountCommandService(store.Accounts(), store.AccountViews(), nopPublisher{})
	userCmd := NewUserCommandService(store.Users(), store.UserViews(), accountCmd, nopPublisher{}, "admin")
	return store, userCmd, accountCmd
}

func registerCmd(username, email, category string) cqrs.RegisterUserCommand {
	return cqrs.RegisterUserCommand{
		Username:    username,
		Email:       email,
		Password:    "securepass123",
		DateOfBirth: "1990-05-14",
		Category:    category,
	}
}

func userAccounts(t *testing.T, store *memory.Store, userID string) []models.Account {
	t.Helper()
	accounts, err := store.AccountViews().ListByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	return accounts
}

func TestRegisterNewUserIsUnapproved(t *testing.T) {
	store, userCmd, _ := newTestServices()

	user, err := userCmd.Register(registerCmd("alice", "alice@example.com", models.CategoryPersonal))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.IsApproved {
		t.Error("new user should not be approved")
	}
	if user.IsBanned {
		t.Error("new user should not be banned")
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("role = %q, want %q", user.Role, models.RoleCustomer)
	}
	if !utils.ValidateBankID(user.BankID) {
		t.Errorf("bank ID %q is not a 9-digit reference", user.BankID)
	}
	if got := userAccounts(t, store, user.ID); len(got) != 0 {
		t.Errorf("unapproved user has %d accounts, want 0", len(got))
	}
}

func TestRegisterAdminIsAutoApproved(t *testing.T) {
	store, userCmd, _ := newTestServices()

	user, err := userCmd.Register(registerCmd("admin", "admin@example.com", models.CategoryBusiness))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !user.IsApproved {
		t.Error("admin should be auto-approved")
	}
	if user.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", user.Role, models.RoleAdmin)
	}
	if got := userAccounts(t, store, user.ID); len(got) != 3 {
		t.Errorf("admin (business) has %d accounts, want 3", len(got))
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	_, userCmd, _ := newTestServices()

	if _, err := userCmd.Register(registerCmd("alice", "alice@example.com", models.CategoryPersonal)); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"duplicate username", "alice", "other@example.com"},
		{"duplicate email", "bob", "alice@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := userCmd.Register(registerCmd(tt.username, tt.email, models.CategoryPersonal))
			if err == nil || err.Error() != "username or email already exists" {
				t.Errorf("err = %v, want duplicate identity error", err)
			}
		})
	}
}

func TestApproveProvisionsDefaultAccounts(t *testing.T) {
	store, userCmd, _ := newTestServices()

	user, err := userCmd.Register(registerCmd("alice", "alice@example.com", models.CategoryPersonal))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	view, err := userCmd.Approve(cqrs.ApproveUserCommand{UserID: user.ID, AdminID: "usr-admin"})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if !view.IsApproved {
		t.Error("user should be approved")
	}

	accounts := userAccounts(t, store, user.ID)
	if len(accounts) != 4 {
		t.Fatalf("got %d accounts, want 4", len(accounts))
	}
	wantTypes := []string{"current", "savings", "credit_card", "retirement"}
	for i, account := range accounts {
		if account.AccountType != wantTypes[i] {
			t.Errorf("account[%d].AccountType = %q, want %q", i, account.AccountType, wantTypes[i])
		}
		wantFrozen := account.AccountType == "credit_card"
		if account.IsFrozen != wantFrozen {
			t.Errorf("account %s frozen = %v, want %v", account.AccountType, account.IsFrozen, wantFrozen)
		}
		if !account.IsActive {
			t.Errorf("account %s should be active", account.AccountType)
		}
		if !account.Balance.IsZero() {
			t.Errorf("account %s balance = %s, want 0", account.AccountType, account.Balance)
		}
	}
}

func TestApproveTwiceDoesNotReprovision(t *testing.T) {
	store, userCmd, _ := newTestServices()

	user, _ := userCmd.Register(registerCmd("alice", "alice@example.com", models.CategoryPersonal))
	if _, err := userCmd.Approve(cqrs.ApproveUserCommand{UserID: user.ID}); err != nil {
		t.Fatalf("first Approve: %v", err)
	}
	if _, err := userCmd.Approve(cqrs.ApproveUserCommand{UserID: user.ID}); err != nil {
		t.Fatalf("second Approve: %v", err)
	}

	if got := userAccounts(t, store, user.ID); len(got) != 4 {
		t.Errorf("got %d accounts after double approval, want 4", len(got))
	}
}

func TestBanSetsFlagOnly(t *testing.T) {
	store, userCmd, _ := newTestServices()

	user, _ := userCmd.Register(registerCmd("admin", "admin@example.com", models.CategoryBusiness))
	view, err := userCmd.Ban(cqrs.BanUserCommand{UserID: user.ID, AdminID: "usr-root"})
	if err != nil {
		t.Fatalf("Ban: %v", err)
	}
	if !view.IsBanned {
		t.Error("user should be banned")
	}
	// Accounts stay untouched: banning does not freeze anything.
	for _, account := range userAccounts(t, store, user.ID) {
		if account.IsFrozen {
			t.Errorf("account %s frozen after ban", account.AccountType)
		}
	}
}

func TestApproveUnknownUser(t *testing.T) {
	_, userCmd, _ := newTestServices()

	if _, err := userCmd.Approve(cqrs.ApproveUserCommand{UserID: "usr-missing"}); err == nil {
		t.Error("expected error approving unknown user")
	}
}
