package repository

import (
	"database/sql"
	"fmt"

	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// AccountWriteRepository handles all state-mutating operations for accounts.
// It operates exclusively against the PostgreSQL write store (source of truth).
type AccountWriteRepository struct {
	db *sql.DB
}

func NewAccountWriteRepository(db *sql.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

const accountColumns = `id, user_id, account_number, account_type, account_name,
	balance, is_active, is_frozen, ubs_id, created_at`

func (r *AccountWriteRepository) Create(account *models.Account) error {
	query := `
		INSERT INTO accounts (id, user_id, account_number, account_type, account_name,
			balance, is_active, is_frozen, ubs_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(query,
		account.ID, account.UserID, account.AccountNumber, account.AccountType,
		account.AccountName, account.Balance, account.IsActive, account.IsFrozen,
		account.BankID, account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *AccountWriteRepository) GetByID(id string) (*models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)

	account, err := scanAccount(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// Update writes the full mutable field set. The merge against the incoming
// partial update happens in the command service; the last writer wins.
func (r *AccountWriteRepository) Update(account *models.Account) error {
	query := `
		UPDATE accounts
		SET account_name = $2, balance = $3, is_active = $4, is_frozen = $5
		WHERE id = $1
	`
	result, err := r.db.Exec(query,
		account.ID, account.AccountName, account.Balance,
		account.IsActive, account.IsFrozen,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account not found")
	}
	return nil
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID, &account.UserID, &account.AccountNumber, &account.AccountType,
		&account.AccountName, &account.Balance, &account.IsActive, &account.IsFrozen,
		&account.BankID, &account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}
