package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/tag"
	"foodgram-backend/pkg/database"
)

type postgresRecipeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRecipeRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRecipeRepository{pool: pool}
}

// =====================================================
// WRITES
// =====================================================

// Create inserts the recipe row, its tag links and its ingredient lines
// in one transaction. A failure at any step leaves no partial recipe.
func (r *postgresRecipeRepository) Create(ctx context.Context, recipe *model.Recipe, tagIDs []uuid.UUID, lines []model.IngredientLineRequest) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		// Step 1: Insert the recipe row
		query := `
			INSERT INTO recipes (id, author_id, name, image, text, cooking_time)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at
		`
		err := tx.QueryRow(ctx, query,
			recipe.ID, recipe.AuthorID, recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime,
		).Scan(&recipe.CreatedAt)
		if err != nil {
			return translatePgError(err)
		}

		// Step 2: Link tags
		if err := insertRecipeTags(ctx, tx, recipe.ID, tagIDs); err != nil {
			return err
		}

		// Step 3: Insert ingredient lines
		return insertRecipeIngredients(ctx, tx, recipe.ID, lines)
	})
}

// Update rewrites the recipe row. A non-nil tagIDs or lines slice fully
// replaces the stored set; nil leaves it untouched.
func (r *postgresRecipeRepository) Update(ctx context.Context, recipe *model.Recipe, tagIDs *[]uuid.UUID, lines *[]model.IngredientLineRequest) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE recipes
			SET name = $2, image = $3, text = $4, cooking_time = $5
			WHERE id = $1
		`
		ct, err := tx.Exec(ctx, query,
			recipe.ID, recipe.Name, recipe.Image, recipe.Text, recipe.CookingTime,
		)
		if err != nil {
			return translatePgError(err)
		}
		if ct.RowsAffected() == 0 {
			return model.ErrRecipeNotFound
		}

		if tagIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipe.ID); err != nil {
				return fmt.Errorf("failed to clear recipe tags: %w", err)
			}
			if err := insertRecipeTags(ctx, tx, recipe.ID, *tagIDs); err != nil {
				return err
			}
		}

		if lines != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
				return fmt.Errorf("failed to clear recipe ingredients: %w", err)
			}
			if err := insertRecipeIngredients(ctx, tx, recipe.ID, *lines); err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the recipe. Links, favorites and cart rows go with it
// via ON DELETE CASCADE.
func (r *postgresRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrRecipeNotFound
	}
	return nil
}

func insertRecipeTags(ctx context.Context, tx pgx.Tx, recipeID uuid.UUID, tagIDs []uuid.UUID) error {
	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`,
			recipeID, tagID,
		)
		if err != nil {
			return translatePgError(err)
		}
	}
	return nil
}

func insertRecipeIngredients(ctx context.Context, tx pgx.Tx, recipeID uuid.UUID, lines []model.IngredientLineRequest) error {
	for _, line := range lines {
		_, err := tx.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount) VALUES ($1, $2, $3)`,
			recipeID, line.ID, line.Amount,
		)
		if err != nil {
			return translatePgError(err)
		}
	}
	return nil
}

// =====================================================
// READS
// =====================================================

const recipeSelect = `
	SELECT r.id, r.author_id, r.name, r.image, r.text, r.cooking_time, r.created_at,
	       u.username, u.email, u.first_name, u.last_name
	FROM recipes r
	JOIN users u ON u.id = r.author_id
`

func scanRecipe(row pgx.Row) (*model.Recipe, error) {
	rec := &model.Recipe{}
	err := row.Scan(
		&rec.ID, &rec.AuthorID, &rec.Name, &rec.Image, &rec.Text, &rec.CookingTime, &rec.CreatedAt,
		&rec.Author.Username, &rec.Author.Email, &rec.Author.FirstName, &rec.Author.LastName,
	)
	if err != nil {
		return nil, err
	}
	rec.Author.ID = rec.AuthorID
	return rec, nil
}

func (r *postgresRecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	rec, err := scanRecipe(r.pool.QueryRow(ctx, recipeSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	if err := r.attachRelations(ctx, []*model.Recipe{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns one page of recipes, newest first, plus the total count
// matching the filter.
func (r *postgresRecipeRepository) List(ctx context.Context, filter *model.RecipeFilter) ([]model.Recipe, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	if filter.AuthorID != nil {
		conditions = append(conditions, fmt.Sprintf("r.author_id = $%d", argIndex))
		args = append(args, *filter.AuthorID)
		argIndex++
	}

	if len(filter.TagSlugs) > 0 {
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM recipe_tags rt
			JOIN tags t ON t.id = rt.tag_id
			WHERE rt.recipe_id = r.id AND t.slug = ANY($%d)
		)`, argIndex))
		args = append(args, filter.TagSlugs)
		argIndex++
	}

	if filter.FavoritedBy != nil {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = $%d)", argIndex))
		args = append(args, *filter.FavoritedBy)
		argIndex++
	}

	if filter.InCartOf != nil {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM shopping_carts sc WHERE sc.recipe_id = r.id AND sc.user_id = $%d)", argIndex))
		args = append(args, *filter.InCartOf)
		argIndex++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM recipes r WHERE ` + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY r.created_at DESC, r.id DESC LIMIT $%d OFFSET $%d`,
		recipeSelect, whereClause, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	var refs []*model.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, *rec)
	}
	for i := range recipes {
		refs = append(refs, &recipes[i])
	}

	if err := r.attachRelations(ctx, refs); err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListMinifiedByAuthor returns the author's newest recipes in the short
// projection. limit < 0 means no limit.
func (r *postgresRecipeRepository) ListMinifiedByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]model.RecipeMinified, error) {
	query := `
		SELECT id, name, image, cooking_time
		FROM recipes
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC
	`
	args := []interface{}{authorID}
	if limit >= 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list author recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.RecipeMinified
	for rows.Next() {
		var m model.RecipeMinified
		if err := rows.Scan(&m.ID, &m.Name, &m.Image, &m.CookingTime); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, m)
	}
	return recipes, nil
}

func (r *postgresRecipeRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM recipes WHERE author_id = $1`, authorID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count author recipes: %w", err)
	}
	return total, nil
}

// attachRelations loads tags and ingredient lines for a batch of recipes
// with two queries instead of 2N.
func (r *postgresRecipeRepository) attachRelations(ctx context.Context, recipes []*model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(recipes))
	byID := make(map[uuid.UUID]*model.Recipe, len(recipes))
	for _, rec := range recipes {
		ids = append(ids, rec.ID)
		byID[rec.ID] = rec
	}

	tagQuery := `
		SELECT rt.recipe_id, t.id, t.name, t.slug, t.color
		FROM recipe_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id = ANY($1)
		ORDER BY t.name ASC
	`
	rows, err := r.pool.Query(ctx, tagQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to load recipe tags: %w", err)
	}
	for rows.Next() {
		var recipeID uuid.UUID
		var t tag.Tag
		if err := rows.Scan(&recipeID, &t.ID, &t.Name, &t.Slug, &t.Color); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan recipe tag: %w", err)
		}
		rec := byID[recipeID]
		rec.Tags = append(rec.Tags, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to load recipe tags: %w", err)
	}

	lineQuery := `
		SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1)
		ORDER BY i.name ASC
	`
	rows, err = r.pool.Query(ctx, lineQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to load recipe ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var recipeID uuid.UUID
		var line model.IngredientLine
		if err := rows.Scan(&recipeID, &line.ID, &line.Name, &line.MeasurementUnit, &line.Amount); err != nil {
			return fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		rec := byID[recipeID]
		rec.Ingredients = append(rec.Ingredients, line)
	}
	return rows.Err()
}

// translatePgError maps database constraint violations onto domain errors
// so callers never see raw SQLSTATE codes.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to write recipe: %w", err)
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		if strings.Contains(pgErr.ConstraintName, "recipe_ingredients") {
			return model.ErrDuplicateIngredient
		}
		return fmt.Errorf("failed to write recipe: %w", err)
	case "23514": // check_violation
		if strings.Contains(pgErr.ConstraintName, "cooking_time") {
			return model.ErrCookingTimeOutOfRange
		}
		if strings.Contains(pgErr.ConstraintName, "amount") {
			return model.ErrAmountOutOfRange
		}
		return fmt.Errorf("failed to write recipe: %w", err)
	case "23503": // foreign_key_violation
		if strings.Contains(pgErr.ConstraintName, "tag") {
			return model.ErrUnknownTag
		}
		if strings.Contains(pgErr.ConstraintName, "ingredient") {
			return model.ErrUnknownIngredient
		}
		return fmt.Errorf("failed to write recipe: %w", err)
	default:
		return fmt.Errorf("failed to write recipe: %w", err)
	}
}
