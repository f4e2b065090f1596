package query

import (
	"context"
	"fmt"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// UserViewReader defines the read-model operations UserQueryService needs.
type UserViewReader interface {
	GetByID(ctx context.Context, id string) (*models.UserView, error)
	List(ctx context.Context) ([]models.UserView, error)
	ListPending(ctx context.Context) ([]models.UserView, error)
}

// UserQueryService reads user views from the cache-backed read repository.
type UserQueryService struct {
	readRepo UserViewReader
}

func NewUserQueryService(readRepo UserViewReader) *UserQueryService {
	return &UserQueryService{readRepo: readRepo}
}

// GetUser returns a single user view. Users may only fetch themselves;
// admins may fetch anyone.
func (s *UserQueryService) GetUser(q cqrs.GetUserQuery) (*models.UserView, error) {
	if q.UserID != q.RequestingUserID && q.RequestingRole != models.RoleAdmin {
		return nil, fmt.Errorf("forbidden")
	}
	return s.readRepo.GetByID(context.Background(), q.UserID)
}

// ListUsers serves the admin dashboard: everyone, or just the approval queue.
func (s *UserQueryService) ListUsers(q cqrs.ListUsersQuery) ([]models.UserView, error) {
	ctx := context.Background()
	if q.PendingOnly {
		return s.readRepo.ListPending(ctx)
	}
	return s.readRepo.List(ctx)
}
