package repository

import (
	"context"
	"database/sql"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	sharedredis "github.com/allyglazer/UBSSwissBankDigital/internal/redis"
)

const accountViewKeyPrefix = "account:view:"

// AccountReadRepository handles all read operations for accounts.
// It treats Redis as the primary read store and falls back to PostgreSQL
// transparently, warming the cache on every cold read.
type AccountReadRepository struct {
	db    *sql.DB
	cache *sharedredis.ViewCache[models.Account]
}

func NewAccountReadRepository(db *sql.DB, redisClient *goredis.Client) *AccountReadRepository {
	return &AccountReadRepository{
		db:    db,
		cache: sharedredis.NewViewCache[models.Account](redisClient, 0),
	}
}

// GetByID returns an account, trying Redis first then PostgreSQL.
func (r *AccountReadRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	cacheKey := accountViewKeyPrefix + id

	if account, ok := r.cache.Get(ctx, cacheKey); ok {
		return account, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)

	account, err := scanAccount(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	// Warm the cache
	r.CacheAccountView(ctx, account)
	return account, nil
}

// ListByUserID returns all accounts for the given user in insertion order.
func (r *AccountReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE user_id = $1 ORDER BY created_at`, accountColumns)

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

// CacheAccountView stores or refreshes the Redis read model for an account.
// Called by the command service after every mutation to keep the read model current.
func (r *AccountReadRepository) CacheAccountView(ctx context.Context, account *models.Account) {
	r.cache.Set(ctx, accountViewKeyPrefix+account.ID, account)
}
