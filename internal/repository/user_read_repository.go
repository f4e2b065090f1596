package repository

import (
	"context"
	"database/sql"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/allyglazer/UBSSwissBankDigital/internal/models"
	sharedredis "github.com/allyglazer/UBSSwissBankDigital/internal/redis"
)

const userViewKeyPrefix = "user:view:"

// UserReadRepository handles all read operations for users.
// It uses Redis as the primary read store, falling back to PostgreSQL on a miss.
type UserReadRepository struct {
	db    *sql.DB
	cache *sharedredis.ViewCache[models.UserView]
}

func NewUserReadRepository(db *sql.DB, redisClient *goredis.Client) *UserReadRepository {
	return &UserReadRepository{
		db:    db,
		cache: sharedredis.NewViewCache[models.UserView](redisClient, 0),
	}
}

const userViewColumns = `id, username, email, date_of_birth, id_card_url,
	account_type, role, is_approved, is_banned, ubs_id, created_at, updated_at`

// GetByID returns a UserView from Redis first, then PostgreSQL.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.UserView, error) {
	cacheKey := userViewKeyPrefix + id

	if view, ok := r.cache.Get(ctx, cacheKey); ok {
		return view, nil
	}

	// Fallback: PostgreSQL
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userViewColumns)

	view, err := scanUserView(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Warm the cache
	r.CacheUserView(ctx, view)
	return view, nil
}

// List returns every user view, oldest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserView, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at`, userViewColumns)
	return r.list(query)
}

// ListPending returns the admin approval queue: every unapproved user,
// oldest registration first.
func (r *UserReadRepository) ListPending(ctx context.Context) ([]models.UserView, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE is_approved = FALSE ORDER BY created_at`, userViewColumns)
	return r.list(query)
}

func (r *UserReadRepository) list(query string) ([]models.UserView, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var views []models.UserView
	for rows.Next() {
		view, err := scanUserView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		views = append(views, *view)
	}
	return views, nil
}

// CacheUserView stores or refreshes the Redis read model for a user.
// Called by the command service after every mutation.
func (r *UserReadRepository) CacheUserView(ctx context.Context, view *models.UserView) {
	r.cache.Set(ctx, userViewKeyPrefix+view.ID, view)
}

func scanUserView(row rowScanner) (*models.UserView, error) {
	var view models.UserView
	var idCardURL sql.NullString

	err := row.Scan(
		&view.ID, &view.Username, &view.Email, &view.DateOfBirth, &idCardURL,
		&view.Category, &view.Role, &view.IsApproved, &view.IsBanned,
		&view.BankID, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if idCardURL.Valid {
		view.IDCardURL = idCardURL.String
	}
	return &view, nil
}
