package importer_test

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/pkg/importer"
)

func TestRunBatch_AllSucceed(t *testing.T) {
	report := importer.RunBatch(context.Background(), []int{1, 2, 3}, func(_ context.Context, _ int) error {
		return nil
	})

	assert.Equal(t, 3, report.Submitted)
	assert.Equal(t, 3, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.Outcomes)
	assert.False(t, report.Partial())
}

func TestRunBatch_ContinuesPastFailure(t *testing.T) {
	var persisted []int
	report := importer.RunBatch(context.Background(), []int{1, 2, 3}, func(_ context.Context, n int) error {
		if n == 2 {
			return errors.New("duplicate key")
		}
		persisted = append(persisted, n)
		return nil
	})

	assert.Equal(t, []int{1, 3}, persisted, "records after a failure must still be persisted")
	assert.Equal(t, 3, report.Submitted)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, 1, report.Outcomes[0].Index)
	assert.Contains(t, report.Outcomes[0].Error, "duplicate key")
	assert.True(t, report.Partial())
}

func TestRunBatch_PreservesInputOrder(t *testing.T) {
	var order []int
	importer.RunBatch(context.Background(), []int{5, 4, 3, 2, 1}, func(_ context.Context, n int) error {
		order = append(order, n)
		return nil
	})
	assert.Equal(t, []int{5, 4, 3, 2, 1}, order)
}

func TestRunBatch_Empty(t *testing.T) {
	report := importer.RunBatch(context.Background(), nil, func(_ context.Context, _ struct{}) error {
		t.Fatal("persist must not be called for an empty batch")
		return nil
	})
	assert.Equal(t, 0, report.Submitted)
}
