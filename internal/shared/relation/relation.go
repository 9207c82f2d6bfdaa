// Package relation answers "does this uniqueness-constrained pair exist"
// for every projection that needs is_subscribed, is_favorited or
// is_in_shopping_cart. One query shape shared by all three relations.
package relation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Kind selects the relation table to probe
type Kind int

const (
	Favorite Kind = iota
	ShoppingCart
	Subscription
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var tables = map[Kind]struct {
	table     string
	targetCol string
}{
	Favorite:     {"favorites", "recipe_id"},
	ShoppingCart: {"shopping_carts", "recipe_id"},
	Subscription: {"subscriptions", "author_id"},
}

// Exists reports whether the (user, target) pair is stored for the given
// relation kind. Anonymous users (uuid.Nil) never have relations.
func Exists(ctx context.Context, q Querier, kind Kind, userID, targetID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}

	t, ok := tables[kind]
	if !ok {
		return false, fmt.Errorf("unknown relation kind %d", kind)
	}

	query := fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND %s = $2)`,
		t.table, t.targetCol,
	)

	var exists bool
	if err := q.QueryRow(ctx, query, userID, targetID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check relation: %w", err)
	}

	return exists, nil
}
