package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "slot key is empty"},
		{name: "whitespace", key: "   ", wantErr: "slot key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid slot key"},
		{name: "traversal", key: "../escape", wantErr: "invalid slot key"},
		{name: "deep traversal", key: "../../state", wantErr: "invalid slot key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := "ignite-timer/cycles-state-1.0.0.json"
	want := `{"cycles":[],"activeCycleId":null}`

	require.NoError(t, store.Put(context.Background(), key, want))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, key))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(slotFileMode), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(root, "ignite-timer", ".slot-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStorePutOverwritesPreviousValue(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	key := "state.json"

	require.NoError(t, store.Put(context.Background(), key, "first"))
	require.NoError(t, store.Put(context.Background(), key, "second"))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestStoreGetMissingSlotReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "ignite-timer/missing.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestStoreDeleteIsIdempotentWhenSlotMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	key := "ignite-timer/cycles-state-1.0.0.json"

	require.NoError(t, store.Delete(context.Background(), key))
	require.NoError(t, store.Delete(context.Background(), key))
}

func TestStoreHonoursCanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "k", "v"), context.Canceled)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
