package memory

import (
	"context"
	"testing"

	"github.com/bnema/ignite-timer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	t.Parallel()

	store := NewStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "state")
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)

	require.NoError(t, store.Put(ctx, "state", "v1"))
	got, err := store.Get(ctx, "state")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, store.Delete(ctx, "state"))
	_, err = store.Get(ctx, "state")
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}
