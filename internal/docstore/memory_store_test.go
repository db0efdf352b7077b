package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Create(ctx, "chatmessage", Record{"name": "Jana", "content": "ahoj"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	records, err := store.Find(ctx, "chatmessage", Record{}, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0]["id"])
	assert.NotNil(t, records[0]["created_at"])
}

func TestMemoryStore_CreateDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	record := Record{"name": "Jana"}

	_, err := store.Create(context.Background(), "chatmessage", record)
	require.NoError(t, err)

	// Исходная запись не получает id/created_at
	assert.NotContains(t, record, "id")
	assert.NotContains(t, record, "created_at")
}

func TestMemoryStore_FindNewestFirstWithLimit(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	for _, content := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, "chatmessage", Record{"content": content})
		require.NoError(t, err)
	}

	records, err := store.Find(ctx, "chatmessage", Record{}, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0]["content"])
	assert.Equal(t, "b", records[1]["content"])
}

func TestMemoryStore_FindAppliesFilter(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, "videoitem", Record{"title": "prvé", "url": "/uploads/a.mp4"})
	require.NoError(t, err)
	_, err = store.Create(ctx, "videoitem", Record{"title": "druhé", "url": "/uploads/b.mp4"})
	require.NoError(t, err)

	records, err := store.Find(ctx, "videoitem", Record{"title": "prvé"}, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/uploads/a.mp4", records[0]["url"])
}

func TestMemoryStore_FindUnknownCollectionIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	records, err := store.Find(context.Background(), "missing", Record{}, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemoryStore_CollectionsSorted(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, "videoitem", Record{"title": "x"})
	require.NoError(t, err)
	_, err = store.Create(ctx, "chatmessage", Record{"content": "y"})
	require.NoError(t, err)

	names, err := store.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"chatmessage", "videoitem"}, names)
}
