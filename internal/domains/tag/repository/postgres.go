package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	tag "foodgram-backend/internal/domains/tag"
)

type postgresTagRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTagRepository(pool *pgxpool.Pool) tag.Repository {
	return &postgresTagRepository{pool: pool}
}

func (r *postgresTagRepository) List(ctx context.Context) ([]tag.Tag, error) {
	query := `SELECT id, name, slug, color FROM tags ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}

	return tags, nil
}

func (r *postgresTagRepository) GetByID(ctx context.Context, id uuid.UUID) (*tag.Tag, error) {
	query := `SELECT id, name, slug, color FROM tags WHERE id = $1`

	t := &tag.Tag{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Slug, &t.Color)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tag.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return t, nil
}

// ExistingIDs returns the subset of ids that reference stored tags.
// The recipe write path uses it to validate tag references up front.
func (r *postgresTagRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT id FROM tags WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check tag ids: %w", err)
	}
	defer rows.Close()

	var found []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tag id: %w", err)
		}
		found = append(found, id)
	}

	return found, nil
}
