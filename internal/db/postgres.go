package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// Connect opens the PostgreSQL write store, verifies the connection and
// applies startup migrations.
func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("PostgreSQL connection established")
	return db, nil
}

func runMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(20) PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			date_of_birth TEXT NOT NULL,
			id_card_url TEXT,
			account_type VARCHAR(20) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'customer',
			is_approved BOOLEAN NOT NULL DEFAULT FALSE,
			is_banned BOOLEAN NOT NULL DEFAULT FALSE,
			pin TEXT,
			ubs_id VARCHAR(9) UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,

		`CREATE TABLE IF NOT EXISTS accounts (
			id VARCHAR(20) PRIMARY KEY,
			user_id VARCHAR(20) NOT NULL REFERENCES users(id),
			account_number VARCHAR(9) UNIQUE NOT NULL,
			account_type VARCHAR(50) NOT NULL,
			account_name TEXT NOT NULL,
			balance DECIMAL(15, 2) NOT NULL DEFAULT 0.00,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_frozen BOOLEAN NOT NULL DEFAULT FALSE,
			ubs_id VARCHAR(9) UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_accounts_user_id ON accounts(user_id)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id VARCHAR(20) PRIMARY KEY,
			from_account_id VARCHAR(20) REFERENCES accounts(id),
			to_account_id VARCHAR(20) REFERENCES accounts(id),
			amount DECIMAL(15, 2) NOT NULL,
			transaction_type VARCHAR(20) NOT NULL,
			description TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			admin_id VARCHAR(20) REFERENCES users(id),
			transaction_date TIMESTAMPTZ NOT NULL,
			approved_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_from ON transactions(from_account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_to ON transactions(to_account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id VARCHAR(20) PRIMARY KEY,
			user_id VARCHAR(20) NOT NULL REFERENCES users(id),
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			type VARCHAR(20) NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id)`,

		`CREATE TABLE IF NOT EXISTS support_messages (
			id VARCHAR(20) PRIMARY KEY,
			user_id VARCHAR(20) NOT NULL REFERENCES users(id),
			admin_id VARCHAR(20) REFERENCES users(id),
			message TEXT NOT NULL,
			sender VARCHAR(10) NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_support_messages_user_id ON support_messages(user_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}
