package marker_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itam-labs/assetdesk/modules/setup/marker"
)

func TestStore_MissingFile(t *testing.T) {
	store := marker.NewStore(filepath.Join(t.TempDir(), "setup-complete.json"))
	assert.False(t, store.IsComplete())
}

func TestStore_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup-complete.json")
	store := marker.NewStore(path)

	require.NoError(t, store.Write(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)))
	assert.True(t, store.IsComplete())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed":true,"timestamp":"2024-03-01T10:30:00Z"}`, string(data))
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup-complete.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	assert.False(t, marker.NewStore(path).IsComplete())
}

func TestStore_IncompleteMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup-complete.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"completed":false}`), 0o644))
	assert.False(t, marker.NewStore(path).IsComplete())
}

func TestStore_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup-complete.json")
	store := marker.NewStore(path)
	require.NoError(t, store.Write(time.Now()))
	require.NoError(t, store.Remove())
	assert.False(t, store.IsComplete())

	// Removing an absent marker is not an error.
	require.NoError(t, store.Remove())
}
