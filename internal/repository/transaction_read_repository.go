package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// TransactionReadRepository serves the dashboard and moderation queries.
// Transaction lists are always read from PostgreSQL; per-transaction caching
// buys nothing for append-mostly history views.
type TransactionReadRepository struct {
	db *sql.DB
}

func NewTransactionReadRepository(db *sql.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByAccountID returns the union of transactions where the account is
// the source or the destination, newest first.
func (r *TransactionReadRepository) ListByAccountID(ctx context.Context, accountID string) ([]models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE from_account_id = $1 OR to_account_id = $1
		ORDER BY transaction_date DESC
	`, transactionColumns)
	return r.list(query, accountID)
}

// ListPending returns the admin moderation queue, newest first.
func (r *TransactionReadRepository) ListPending(ctx context.Context) ([]models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM transactions
		WHERE status = $1
		ORDER BY transaction_date DESC
	`, transactionColumns)
	return r.list(query, models.StatusPending)
}

func (r *TransactionReadRepository) list(query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, nil
}
