package query

import (
	"context"

	"github.com/allyglazer/UBSSwissBankDigital/internal/cqrs"
	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// TransactionViewReader defines the read operations TransactionQueryService needs.
type TransactionViewReader interface {
	ListByAccountID(ctx context.Context, accountID string) ([]models.Transaction, error)
	ListPending(ctx context.Context) ([]models.Transaction, error)
}

// TransactionQueryService serves account history and the moderation queue.
type TransactionQueryService struct {
	readRepo TransactionViewReader
}

func NewTransactionQueryService(readRepo TransactionViewReader) *TransactionQueryService {
	return &TransactionQueryService{readRepo: readRepo}
}

// ListByAccount returns the union of transactions where the account is the
// source or the destination, newest first, with no duplicates.
func (s *TransactionQueryService) ListByAccount(q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	return s.readRepo.ListByAccountID(context.Background(), q.AccountID)
}

// ListPending returns the admin moderation queue, newest first.
func (s *TransactionQueryService) ListPending(q cqrs.ListPendingTransactionsQuery) ([]models.Transaction, error) {
	return s.readRepo.ListPending(context.Background())
}
