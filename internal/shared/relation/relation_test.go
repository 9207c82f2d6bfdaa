package relation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQuerier struct {
	query string
	args  []any
}

type trueRow struct{}

func (trueRow) Scan(dest ...any) error {
	*dest[0].(*bool) = true
	return nil
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.query = sql
	q.args = args
	return trueRow{}
}

func TestExistsAnonymousNeverQueries(t *testing.T) {
	q := &recordingQuerier{}

	exists, err := Exists(context.Background(), q, Favorite, uuid.Nil, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, q.query)
}

func TestExistsProbesRightTable(t *testing.T) {
	tests := []struct {
		kind      Kind
		wantTable string
		wantCol   string
	}{
		{Favorite, "favorites", "recipe_id"},
		{ShoppingCart, "shopping_carts", "recipe_id"},
		{Subscription, "subscriptions", "author_id"},
	}

	for _, tt := range tests {
		q := &recordingQuerier{}
		userID := uuid.New()
		targetID := uuid.New()

		exists, err := Exists(context.Background(), q, tt.kind, userID, targetID)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Contains(t, q.query, tt.wantTable)
		assert.Contains(t, q.query, tt.wantCol)
		assert.Equal(t, []any{userID, targetID}, q.args)
	}
}

func TestCheckerDelegates(t *testing.T) {
	q := &recordingQuerier{}
	checker := NewChecker(q)

	subscribed, err := checker.Subscribed(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.True(t, subscribed)
	assert.Contains(t, q.query, "subscriptions")
}
