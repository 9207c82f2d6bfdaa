package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/favorite"
	recipemodel "foodgram-backend/internal/domains/recipe/model"
)

type postgresFavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFavoriteRepository(pool *pgxpool.Pool) favorite.Repository {
	return &postgresFavoriteRepository{pool: pool}
}

// Add relies on the UNIQUE (user_id, recipe_id) constraint so the
// duplicate check and the insert are one atomic statement.
func (r *postgresFavoriteRepository) Add(ctx context.Context, userID, recipeID uuid.UUID) error {
	query := `INSERT INTO favorites (user_id, recipe_id) VALUES ($1, $2)`

	_, err := r.pool.Exec(ctx, query, userID, recipeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return favorite.ErrAlreadyFavorited
			case "23503":
				return recipemodel.ErrRecipeNotFound
			}
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *postgresFavoriteRepository) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2`

	ct, err := r.pool.Exec(ctx, query, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return favorite.ErrNotFavorited
	}
	return nil
}
