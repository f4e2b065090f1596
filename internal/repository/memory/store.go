// Package memory provides a mutex-guarded in-memory implementation of every
// repository the services consume. It backs the service tests and any
// deployment that runs without PostgreSQL/Redis.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

type Store struct {
	mu sync.RWMutex

	users        map[string]*models.User
	accounts     map[string]*models.Account
	transactions map[string]*models.Transaction
	notification map[string]*models.Notification
	support      map[string]*models.SupportMessage

	// insertion order, for queries that promise it
	userOrder    []string
	accountOrder []string
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*models.User),
		accounts:     make(map[string]*models.Account),
		transactions: make(map[string]*models.Transaction),
		notification: make(map[string]*models.Notification),
		support:      make(map[string]*models.SupportMessage),
	}
}

// ---------- users ----------

// UserStore is the write-side view of the user collection.
type UserStore struct{ s *Store }

func (s *Store) Users() *UserStore { return &UserStore{s: s} }

func (u *UserStore) Create(user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, existing := range u.s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return fmt.Errorf("username or email already exists")
		}
	}
	cp := *user
	u.s.users[user.ID] = &cp
	u.s.userOrder = append(u.s.userOrder, user.ID)
	return nil
}

func (u *UserStore) GetByID(id string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	cp := *user
	return &cp, nil
}

func (u *UserStore) GetByUsername(username string) (*models.User, error) {
	return u.find(func(user *models.User) bool { return user.Username == username })
}

func (u *UserStore) GetByEmail(email string) (*models.User, error) {
	return u.find(func(user *models.User) bool { return user.Email == email })
}

func (u *UserStore) find(match func(*models.User) bool) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, id := range u.s.userOrder {
		if user := u.s.users[id]; match(user) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (u *UserStore) Update(user *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[user.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	cp := *user
	u.s.users[user.ID] = &cp
	return nil
}

// UserViewStore is the read-side view of the user collection. The cache
// hooks are no-ops; an in-memory map needs no warm path.
type UserViewStore struct{ s *Store }

func (s *Store) UserViews() *UserViewStore { return &UserViewStore{s: s} }

func (v *UserViewStore) GetByID(ctx context.Context, id string) (*models.UserView, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	user, ok := v.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return user.ToView(), nil
}

func (v *UserViewStore) List(ctx context.Context) ([]models.UserView, error) {
	return v.list(func(*models.User) bool { return true }), nil
}

func (v *UserViewStore) ListPending(ctx context.Context) ([]models.UserView, error) {
	return v.list(func(u *models.User) bool { return !u.IsApproved }), nil
}

func (v *UserViewStore) list(match func(*models.User) bool) []models.UserView {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var views []models.UserView
	for _, id := range v.s.userOrder {
		if user := v.s.users[id]; match(user) {
			views = append(views, *user.ToView())
		}
	}
	return views
}

func (v *UserViewStore) CacheUserView(ctx context.Context, view *models.UserView) {}

// ---------- accounts ----------

type AccountStore struct{ s *Store }

func (s *Store) Accounts() *AccountStore { return &AccountStore{s: s} }

func (a *AccountStore) Create(account *models.Account) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	cp := *account
	a.s.accounts[account.ID] = &cp
	a.s.accountOrder = append(a.s.accountOrder, account.ID)
	return nil
}

func (a *AccountStore) GetByID(id string) (*models.Account, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	account, ok := a.s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account not found")
	}
	cp := *account
	return &cp, nil
}

func (a *AccountStore) Update(account *models.Account) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.accounts[account.ID]; !ok {
		return fmt.Errorf("account not found")
	}
	cp := *account
	a.s.accounts[account.ID] = &cp
	return nil
}

type AccountViewStore struct{ s *Store }

func (s *Store) AccountViews() *AccountViewStore { return &AccountViewStore{s: s} }

func (v *AccountViewStore) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return (&AccountStore{s: v.s}).GetByID(id)
}

func (v *AccountViewStore) ListByUserID(ctx context.Context, userID string) ([]models.Account, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var accounts []models.Account
	for _, id := range v.s.accountOrder {
		if account := v.s.accounts[id]; account.UserID == userID {
			accounts = append(accounts, *account)
		}
	}
	return accounts, nil
}

func (v *AccountViewStore) CacheAccountView(ctx context.Context, account *models.Account) {}

// ---------- transactions ----------

type TransactionStore struct{ s *Store }

func (s *Store) Transactions() *TransactionStore { return &TransactionStore{s: s} }

func (t *TransactionStore) Create(transaction *models.Transaction) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	cp := *transaction
	t.s.transactions[transaction.ID] = &cp
	return nil
}

func (t *TransactionStore) GetByID(id string) (*models.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	transaction, ok := t.s.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction not found")
	}
	cp := *transaction
	return &cp, nil
}

func (t *TransactionStore) Update(transaction *models.Transaction) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.transactions[transaction.ID]; !ok {
		return fmt.Errorf("transaction not found")
	}
	cp := *transaction
	t.s.transactions[transaction.ID] = &cp
	return nil
}

type TransactionViewStore struct{ s *Store }

func (s *Store) TransactionViews() *TransactionViewStore { return &TransactionViewStore{s: s} }

func (v *TransactionViewStore) ListByAccountID(ctx context.Context, accountID string) ([]models.Transaction, error) {
	return v.list(func(t *models.Transaction) bool {
		return t.FromAccountID == accountID || t.ToAccountID == accountID
	}), nil
}

func (v *TransactionViewStore) ListPending(ctx context.Context) ([]models.Transaction, error) {
	return v.list(func(t *models.Transaction) bool {
		return t.Status == models.StatusPending
	}), nil
}

func (v *TransactionViewStore) list(match func(*models.Transaction) bool) []models.Transaction {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	var transactions []models.Transaction
	for _, transaction := range v.s.transactions {
		if match(transaction) {
			transactions = append(transactions, *transaction)
		}
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].TransactionDate.After(transactions[j].TransactionDate)
	})
	return transactions
}

// ---------- notifications ----------

type NotificationStore struct{ s *Store }

func (s *Store) Notifications() *NotificationStore { return &NotificationStore{s: s} }

func (n *NotificationStore) Create(notification *models.Notification) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	cp := *notification
	n.s.notification[notification.ID] = &cp
	return nil
}

func (n *NotificationStore) ListByUserID(userID string) ([]models.Notification, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()
	var notifications []models.Notification
	for _, notification := range n.s.notification {
		if notification.UserID == userID {
			notifications = append(notifications, *notification)
		}
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (n *NotificationStore) MarkRead(id string) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	notification, ok := n.s.notification[id]
	if !ok {
		return fmt.Errorf("notification not found")
	}
	notification.IsRead = true
	return nil
}

// ---------- support ----------

type SupportStore struct{ s *Store }

func (s *Store) Support() *SupportStore { return &SupportStore{s: s} }

func (p *SupportStore) Create(message *models.SupportMessage) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	cp := *message
	p.s.support[message.ID] = &cp
	return nil
}

func (p *SupportStore) ListByUserID(userID string) ([]models.SupportMessage, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	var messages []models.SupportMessage
	for _, message := range p.s.support {
		if message.UserID == userID {
			messages = append(messages, *message)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}
