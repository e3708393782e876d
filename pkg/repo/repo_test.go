package repo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itam-labs/assetdesk/pkg/repo"
)

func TestInsert(t *testing.T) {
	q := repo.Insert("assets", []string{"asset_tag", "model"}, "id")
	assert.Equal(t, "INSERT INTO assets (asset_tag, model) VALUES ($1, $2) RETURNING id", q)
}

func TestInsert_NoReturning(t *testing.T) {
	q := repo.Insert("users", []string{"name"})
	assert.Equal(t, "INSERT INTO users (name) VALUES ($1)", q)
}

func TestUpdate(t *testing.T) {
	q := repo.Update("assets", []string{"model", "status"}, "id = $3")
	assert.Equal(t, "UPDATE assets SET model = $1, status = $2 WHERE id = $3", q)
}

func TestJoinWhere(t *testing.T) {
	assert.Equal(t, "", repo.JoinWhere())
	assert.Equal(t, "WHERE a = $1 AND b = $2", repo.JoinWhere("a = $1", "b = $2"))
}

func TestJoin_SkipsEmptyParts(t *testing.T) {
	assert.Equal(t, "SELECT 1 LIMIT 5", repo.Join("SELECT 1", "", "LIMIT 5"))
}

func TestFormatLimitOffset(t *testing.T) {
	assert.Equal(t, "", repo.FormatLimitOffset(0, 0))
	assert.Equal(t, "LIMIT 10", repo.FormatLimitOffset(10, 0))
	assert.Equal(t, "OFFSET 5", repo.FormatLimitOffset(0, 5))
	assert.Equal(t, "LIMIT 10 OFFSET 5", repo.FormatLimitOffset(10, 5))
}

func TestBatchInsertQueryN(t *testing.T) {
	q, args := repo.BatchInsertQueryN(
		"INSERT INTO activity_logs (user_id, action) VALUES",
		[][]any{{1, "create"}, {2, "update"}},
	)
	assert.Equal(t, "INSERT INTO activity_logs (user_id, action) VALUES ($1, $2), ($3, $4)", q)
	assert.Equal(t, []any{1, "create", 2, "update"}, args)
}

func TestBatchInsertQueryN_Empty(t *testing.T) {
	q, args := repo.BatchInsertQueryN("INSERT INTO t (a) VALUES", nil)
	assert.Equal(t, "INSERT INTO t (a) VALUES", q)
	assert.Nil(t, args)
}
