package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	ingredient "foodgram-backend/internal/domains/ingredient"
)

type postgresIngredientRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresIngredientRepository(pool *pgxpool.Pool) ingredient.Repository {
	return &postgresIngredientRepository{pool: pool}
}

func (r *postgresIngredientRepository) List(ctx context.Context, namePrefix string) ([]ingredient.Ingredient, error) {
	query := `
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE name ILIKE $1 || '%'
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query, namePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []ingredient.Ingredient
	for rows.Next() {
		var i ingredient.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, i)
	}

	return ingredients, nil
}

func (r *postgresIngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	query := `SELECT id, name, measurement_unit FROM ingredients WHERE id = $1`

	i := &ingredient.Ingredient{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&i.ID, &i.Name, &i.MeasurementUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ingredient.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	return i, nil
}

func (r *postgresIngredientRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT id FROM ingredients WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check ingredient ids: %w", err)
	}
	defer rows.Close()

	var found []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient id: %w", err)
		}
		found = append(found, id)
	}

	return found, nil
}
