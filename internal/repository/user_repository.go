package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// UserWriteRepository handles all state-mutating operations for users.
// It operates exclusively against the PostgreSQL write store (source of truth).
type UserWriteRepository struct {
	db *sql.DB
}

func NewUserWriteRepository(db *sql.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

const userColumns = `id, username, email, password_hash, date_of_birth, id_card_url,
	account_type, role, is_approved, is_banned, pin, ubs_id, created_at, updated_at`

func (r *UserWriteRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, date_of_birth, id_card_url,
			account_type, role, is_approved, is_banned, pin, ubs_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.DateOfBirth,
		nullString(user.IDCardURL), user.Category, user.Role,
		user.IsApproved, user.IsBanned, nullString(user.PIN), user.BankID,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("username or email already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID fetches the full write model (including PasswordHash) for internal operations.
func (r *UserWriteRepository) GetByID(id string) (*models.User, error) {
	return r.getBy("id", id)
}

func (r *UserWriteRepository) GetByUsername(username string) (*models.User, error) {
	return r.getBy("username", username)
}

func (r *UserWriteRepository) GetByEmail(email string) (*models.User, error) {
	return r.getBy("email", email)
}

func (r *UserWriteRepository) getBy(column, value string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, column)

	user, err := scanUser(r.db.QueryRow(query, value))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *UserWriteRepository) Update(user *models.User) error {
	query := `
		UPDATE users
		SET email = $2, id_card_url = $3, is_approved = $4, is_banned = $5,
			pin = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.db.Exec(query,
		user.ID, user.Email, nullString(user.IDCardURL),
		user.IsApproved, user.IsBanned, nullString(user.PIN), user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var idCardURL, pin sql.NullString

	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.DateOfBirth,
		&idCardURL, &user.Category, &user.Role, &user.IsApproved, &user.IsBanned,
		&pin, &user.BankID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if idCardURL.Valid {
		user.IDCardURL = idCardURL.String
	}
	if pin.Valid {
		user.PIN = pin.String
	}
	return &user, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
