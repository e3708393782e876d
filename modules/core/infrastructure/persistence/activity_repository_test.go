package persistence

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/pkg/constants"
)

// queryTx records the statements it receives and returns no rows.
type queryTx struct {
	queries []string
}

func (t *queryTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	t.queries = append(t.queries, sql)
	return pgconn.CommandTag{}, nil
}

func (t *queryTx) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	t.queries = append(t.queries, sql)
	return emptyRows{}, nil
}

func (t *queryTx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	t.queries = append(t.queries, sql)
	return nil
}

type emptyRows struct {
	pgx.Rows
}

func (emptyRows) Next() bool { return false }
func (emptyRows) Err() error { return nil }
func (emptyRows) Close()     {}

func TestActivityRepositoryGetAllAppliesLimit(t *testing.T) {
	tx := &queryTx{}
	ctx := context.WithValue(context.Background(), constants.TxKey, tx)
	r := NewActivityRepository()

	_, err := r.GetAll(ctx, 50)
	require.NoError(t, err)
	require.Len(t, tx.queries, 1)
	assert.Contains(t, tx.queries[0], "ORDER BY created_at DESC")
	assert.Contains(t, tx.queries[0], "LIMIT 50")
}

func TestActivityRepositoryGetAllUnlimitedByDefault(t *testing.T) {
	tx := &queryTx{}
	ctx := context.WithValue(context.Background(), constants.TxKey, tx)
	r := NewActivityRepository()

	_, err := r.GetAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, tx.queries, 1)
	assert.NotContains(t, tx.queries[0], "LIMIT")
}
