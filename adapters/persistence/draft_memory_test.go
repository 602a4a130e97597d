package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDraftStore_SaveIsLastWriteWins(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()
	owner := uuid.New()

	store.Save(ctx, owner, "resume.profile", map[string]string{"full_name": "Draft 1"})
	store.Save(ctx, owner, "resume.profile", map[string]string{"full_name": "Draft 2"})

	var got map[string]string
	require.True(t, store.Load(ctx, owner, "resume.profile", &got))
	assert.Equal(t, "Draft 2", got["full_name"])
}

func TestMemoryDraftStore_LoadReturnsIndependentCopy(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()
	owner := uuid.New()

	store.Save(ctx, owner, "resume.skills", map[string][]string{"items": {"Go"}})

	var first map[string][]string
	require.True(t, store.Load(ctx, owner, "resume.skills", &first))
	first["items"][0] = "mutated"

	var second map[string][]string
	require.True(t, store.Load(ctx, owner, "resume.skills", &second))
	assert.Equal(t, []string{"Go"}, second["items"])
}

func TestMemoryDraftStore_UndecodablePayloadCountsAsAbsent(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()
	owner := uuid.New()

	store.Save(ctx, owner, "resume.profile", map[string]string{"full_name": "Alice"})

	// Destination shape does not match the stored value.
	var dest int
	assert.False(t, store.Load(ctx, owner, "resume.profile", &dest))
}

func TestMemoryDraftStore_ClearUnknownSlotIsNoop(t *testing.T) {
	store := NewMemoryDraftStore()
	store.Clear(context.Background(), uuid.New(), "resume.profile")
}

func TestMemoryDraftStore_UnmarshalableValueIsDropped(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()
	owner := uuid.New()

	store.Save(ctx, owner, "resume.profile", make(chan int))

	var dest any
	assert.False(t, store.Load(ctx, owner, "resume.profile", &dest))
}
