package repository

import (
	"database/sql"
	"fmt"

	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// TransactionWriteRepository handles all state-mutating operations for
// transactions against the PostgreSQL write store.
type TransactionWriteRepository struct {
	db *sql.DB
}

func NewTransactionWriteRepository(db *sql.DB) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db}
}

const transactionColumns = `id, from_account_id, to_account_id, amount,
	transaction_type, description, status, admin_id, transaction_date, approved_at`

func (r *TransactionWriteRepository) Create(transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, from_account_id, to_account_id, amount,
			transaction_type, description, status, admin_id, transaction_date, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(query,
		transaction.ID, nullString(transaction.FromAccountID), nullString(transaction.ToAccountID),
		transaction.Amount, transaction.TransactionType, nullString(transaction.Description),
		transaction.Status, nullString(transaction.AdminID),
		transaction.TransactionDate, transaction.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *TransactionWriteRepository) GetByID(id string) (*models.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = $1`, transactionColumns)

	transaction, err := scanTransaction(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// Update persists a moderation decision. Only the status fields ever change
// after creation.
func (r *TransactionWriteRepository) Update(transaction *models.Transaction) error {
	query := `
		UPDATE transactions
		SET status = $2, admin_id = $3, approved_at = $4
		WHERE id = $1
	`
	result, err := r.db.Exec(query,
		transaction.ID, transaction.Status, nullString(transaction.AdminID),
		transaction.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var transaction models.Transaction
	var fromID, toID, description, adminID sql.NullString
	var approvedAt sql.NullTime

	err := row.Scan(
		&transaction.ID, &fromID, &toID, &transaction.Amount,
		&transaction.TransactionType, &description, &transaction.Status,
		&adminID, &transaction.TransactionDate, &approvedAt,
	)
	if err != nil {
		return nil, err
	}
	if fromID.Valid {
		transaction.FromAccountID = fromID.String
	}
	if toID.Valid {
		transaction.ToAccountID = toID.String
	}
	if description.Valid {
		transaction.Description = description.String
	}
	if adminID.Valid {
		transaction.AdminID = adminID.String
	}
	if approvedAt.Valid {
		t := approvedAt.Time
		transaction.ApprovedAt = &t
	}
	return &transaction, nil
}
