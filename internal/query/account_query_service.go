package query

import (
	"context"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// AccountViewReader defines the read-model operations AccountQueryService needs.
type AccountViewReader interface {
	ListByUserID(ctx context.Context, userID string) ([]models.Account, error)
}

// AccountQueryService serves the dashboard account lists.
type AccountQueryService struct {
	readRepo AccountViewReader
}

func NewAccountQueryService(readRepo AccountViewReader) *AccountQueryService {
	return &AccountQueryService{readRepo: readRepo}
}

// ListAccounts returns every account owned by the user, insertion order.
func (s *AccountQueryService) ListAccounts(q cqrs.ListAccountsQuery) ([]models.Account, error) {
	return s.readRepo.ListByUserID(context.Background(), q.UserID)
}
