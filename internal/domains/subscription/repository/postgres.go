package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/subscription"
	"foodgram-backend/internal/domains/user"
)

type postgresSubscriptionRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSubscriptionRepository(pool *pgxpool.Pool) subscription.Repository {
	return &postgresSubscriptionRepository{pool: pool}
}

// Create relies on the table constraints: UNIQUE (user_id, author_id)
// rejects duplicates, CHECK (user_id <> author_id) rejects self-follows.
func (r *postgresSubscriptionRepository) Create(ctx context.Context, userID, authorID uuid.UUID) error {
	query := `INSERT INTO subscriptions (user_id, author_id) VALUES ($1, $2)`

	_, err := r.pool.Exec(ctx, query, userID, authorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return subscription.ErrAlreadySubscribed
			case "23514":
				return subscription.ErrSelfSubscription
			case "23503":
				return user.ErrUserNotFound
			}
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *postgresSubscriptionRepository) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	query := `DELETE FROM subscriptions WHERE user_id = $1 AND author_id = $2`

	ct, err := r.pool.Exec(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return subscription.ErrNotSubscribed
	}
	return nil
}

func (r *postgresSubscriptionRepository) ListAuthors(ctx context.Context, userID uuid.UUID, offset, limit int) ([]user.User, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM subscriptions WHERE user_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	query := `
		SELECT u.id, u.username, u.email, u.first_name, u.last_name, u.created_at
		FROM subscriptions s
		JOIN users u ON u.id = s.author_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC, u.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	var authors []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, u)
	}
	return authors, total, rows.Err()
}
