package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/cart"
	recipemodel "foodgram-backend/internal/domains/recipe/model"
)

type postgresCartRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCartRepository(pool *pgxpool.Pool) cart.Repository {
	return &postgresCartRepository{pool: pool}
}

// Add uses ON CONFLICT DO NOTHING so concurrent adds of the same recipe
// cannot race; zero rows affected means the row already existed.
func (r *postgresCartRepository) Add(ctx context.Context, userID, recipeID uuid.UUID) error {
	query := `
		INSERT INTO shopping_carts (user_id, recipe_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, recipe_id) DO NOTHING
	`

	ct, err := r.pool.Exec(ctx, query, userID, recipeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return recipemodel.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return cart.ErrAlreadyInCart
	}
	return nil
}

func (r *postgresCartRepository) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	query := `DELETE FROM shopping_carts WHERE user_id = $1 AND recipe_id = $2`

	ct, err := r.pool.Exec(ctx, query, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return cart.ErrNotInCart
	}
	return nil
}

// BuildShoppingList folds the ingredient lines of every cart recipe into
// one row per (name, unit) pair. Largest totals first, name breaks ties
// so the output is deterministic.
func (r *postgresCartRepository) BuildShoppingList(ctx context.Context, userID uuid.UUID) ([]cart.ShoppingListItem, error) {
	query := `
		SELECT i.name, i.measurement_unit, SUM(ri.amount) AS total
		FROM shopping_carts sc
		JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE sc.user_id = $1
		GROUP BY i.name, i.measurement_unit
		ORDER BY total DESC, i.name ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build shopping list: %w", err)
	}
	defer rows.Close()

	var items []cart.ShoppingListItem
	for rows.Next() {
		var item cart.ShoppingListItem
		if err := rows.Scan(&item.Name, &item.MeasurementUnit, &item.Total); err != nil {
			return nil, fmt.Errorf("failed to scan shopping list item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
