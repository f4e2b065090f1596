package repository

import (
	"database/sql"
	"fmt"

	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
)

// SupportRepository stores the per-user support chat thread.
type SupportRepository struct {
	db *sql.DB
}

func NewSupportRepository(db *sql.DB) *SupportRepository {
	return &SupportRepository{db: db}
}

func (r *SupportRepository) Create(m *models.SupportMessage) error {
	query := `
		INSERT INTO support_messages (id, user_id, admin_id, message, sender, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query, m.ID, m.UserID, nullString(m.AdminID), m.Message, m.Sender, m.IsRead, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create support message: %w", err)
	}
	return nil
}

func (r *SupportRepository) ListByUserID(userID string) ([]models.SupportMessage, error) {
	query := `
		SELECT id, user_id, admin_id, message, sender, is_read, created_at
		FROM support_messages
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list support messages: %w", err)
	}
	defer rows.Close()

	var messages []models.SupportMessage
	for rows.Next() {
		var m models.SupportMessage
		var adminID sql.NullString
		if err := rows.Scan(&m.ID, &m.UserID, &adminID, &m.Message, &m.Sender, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan support message: %w", err)
		}
		if adminID.Valid {
			m.AdminID = adminID.String
		}
		messages = append(messages, m)
	}
	return messages, nil
}
