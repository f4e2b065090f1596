package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/middleware"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// ---- mock implementations ----

type mockAdminCommander struct {
	approveFn func(cqrs.ApproveUserCommand) (*models.UserView, error)
	banFn     func(cqrs.BanUserCommand) (*models.UserView, error)
}

func (m *mockAdminCommander) Approve(cmd cqrs.ApproveUserCommand) (*models.UserView, error) {
	if m.approveFn != nil {
		return m.approveFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockAdminCommander) Ban(cmd cqrs.BanUserCommand) (*models.UserView, error) {
	if m.banFn != nil {
		return m.banFn(cmd)
	}
	return nil, fmt.Errorf("not configured")
}

type mockAdminQuerier struct {
	listFn func(cqrs.ListUsersQuery) ([]models.UserView, error)
}

func (m *mockAdminQuerier) ListUsers(q cqrs.ListUsersQuery) ([]models.UserView, error) {
	if m.listFn != nil {
		return m.listFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

type mockPendingTransactionQuerier struct {
	listPendingFn func(cqrs.ListPendingTransactionsQuery) ([]models.Transaction, error)
}

func (m *mockPendingTransactionQuerier) ListPending(q cqrs.ListPendingTransactionsQuery) ([]models.Transaction, error) {
	if m.listPendingFn != nil {
		return m.listPendingFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newAdminTestRouter(cmds AdminCommander, qrys AdminQuerier, txns PendingTransactionQuerier, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAdminHandler(cmds, qrys, txns)
	admin := r.Group("/api/admin", fakeAuth("usr-admin", role), middleware.AdminMiddleware())
	admin.GET("/users", h.ListUsers)
	admin.GET("/users/pending", h.ListPendingUsers)
	admin.POST("/users/:id/approve", h.ApproveUser)
	admin.POST("/users/:id/ban", h.BanUser)
	admin.GET("/transactions/pending", h.ListPendingTransactions)
	return r
}

func adminTestView(approved bool) *models.UserView {
	return &models.UserView{
		ID: "usr-002", Username: "carol", Email: "carol@example.com",
		Role: models.RoleCustomer, IsApproved: approved,
	}
}

// ---- tests ----

func TestApproveUser(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		approveFn      func(cqrs.ApproveUserCommand) (*models.UserView, error)
		expectedStatus int
	}{
		{
			name: "success",
			role: models.RoleAdmin,
			approveFn: func(cmd cqrs.ApproveUserCommand) (*models.UserView, error) {
				return adminTestView(true), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "success - already approved is a no-op",
			role: models.RoleAdmin,
			approveFn: func(cmd cqrs.ApproveUserCommand) (*models.UserView, error) {
				return adminTestView(true), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found - unknown user",
			role: models.RoleAdmin,
			approveFn: func(cmd cqrs.ApproveUserCommand) (*models.UserView, error) {
				return nil, fmt.Errorf("user not found")
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "forbidden - customer hits the admin surface",
			role:           models.RoleCustomer,
			approveFn:      nil,
			expectedStatus: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminTestRouter(&mockAdminCommander{approveFn: tt.approveFn}, &mockAdminQuerier{}, &mockPendingTransactionQuerier{}, tt.role)
			w := doRequest(router, http.MethodPost, "/api/admin/users/usr-002/approve", nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestBanUser(t *testing.T) {
	tests := []struct {
		name           string
		banFn          func(cqrs.BanUserCommand) (*models.UserView, error)
		expectedStatus int
	}{
		{
			name: "success",
			banFn: func(cmd cqrs.BanUserCommand) (*models.UserView, error) {
				view := adminTestView(true)
				view.IsBanned = true
				return view, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found - unknown user",
			banFn: func(cmd cqrs.BanUserCommand) (*models.UserView, error) {
				return nil, fmt.Errorf("user not found")
			},
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminTestRouter(&mockAdminCommander{banFn: tt.banFn}, &mockAdminQuerier{}, &mockPendingTransactionQuerier{}, models.RoleAdmin)
			w := doRequest(router, http.MethodPost, "/api/admin/users/usr-002/ban", nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestListUsersQueues(t *testing.T) {
	var gotPendingOnly *bool
	listFn := func(q cqrs.ListUsersQuery) ([]models.UserView, error) {
		gotPendingOnly = &q.PendingOnly
		return []models.UserView{*adminTestView(q.PendingOnly)}, nil
	}

	router := newAdminTestRouter(&mockAdminCommander{}, &mockAdminQuerier{listFn: listFn}, &mockPendingTransactionQuerier{}, models.RoleAdmin)

	w := doRequest(router, http.MethodGet, "/api/admin/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list all: expected 200 got %d", w.Code)
	}
	if gotPendingOnly == nil || *gotPendingOnly {
		t.Error("GET /users should query the full list")
	}

	w = doRequest(router, http.MethodGet, "/api/admin/users/pending", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list pending: expected 200 got %d", w.Code)
	}
	if gotPendingOnly == nil || !*gotPendingOnly {
		t.Error("GET /users/pending should query the approval queue")
	}
}

func TestListPendingTransactionsRoute(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		listPendingFn  func(cqrs.ListPendingTransactionsQuery) ([]models.Transaction, error)
		expectedStatus int
	}{
		{
			name: "success",
			role: models.RoleAdmin,
			listPendingFn: func(q cqrs.ListPendingTransactionsQuery) ([]models.Transaction, error) {
				return []models.Transaction{*txTestTransaction}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "forbidden - customer",
			role:           models.RoleCustomer,
			listPendingFn:  nil,
			expectedStatus: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminTestRouter(&mockAdminCommander{}, &mockAdminQuerier{}, &mockPendingTransactionQuerier{listPendingFn: tt.listPendingFn}, tt.role)
			w := doRequest(router, http.MethodGet, "/api/admin/transactions/pending", nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
