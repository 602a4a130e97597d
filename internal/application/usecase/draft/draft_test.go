package draft

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhngo/campus-hub/adapters/persistence"
)

func TestDraftRoundTrip(t *testing.T) {
	uc := NewDraftUseCase(persistence.NewMemoryDraftStore(), time.Second)
	ctx := context.Background()
	owner := uuid.New()

	payload := json.RawMessage(`{"title":"BSc Computer Science","organization":"State University"}`)
	require.NoError(t, uc.Save(ctx, owner, "resume.education", payload))

	got, ok, err := uc.Load(ctx, owner, "resume.education")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, string(payload), string(got))
}

func TestDraftClearThenLoadReportsAbsent(t *testing.T) {
	uc := NewDraftUseCase(persistence.NewMemoryDraftStore(), time.Second)
	ctx := context.Background()
	owner := uuid.New()

	require.NoError(t, uc.Save(ctx, owner, "resume.skills", json.RawMessage(`{"items":["Go"]}`)))
	require.NoError(t, uc.Clear(ctx, owner, "resume.skills"))

	_, ok, err := uc.Load(ctx, owner, "resume.skills")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDraftLoadAbsentSlot(t *testing.T) {
	uc := NewDraftUseCase(persistence.NewMemoryDraftStore(), time.Second)

	_, ok, err := uc.Load(context.Background(), uuid.New(), "resume.projects")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDraftRejectsUnknownSlot(t *testing.T) {
	uc := NewDraftUseCase(persistence.NewMemoryDraftStore(), time.Second)
	ctx := context.Background()
	owner := uuid.New()

	assert.Error(t, uc.Save(ctx, owner, "users.scratch", json.RawMessage(`{}`)))
	_, _, err := uc.Load(ctx, owner, "users.scratch")
	assert.Error(t, err)
	assert.Error(t, uc.Clear(ctx, owner, "users.scratch"))
}

func TestDraftsAreIsolatedByOwnerAndSlot(t *testing.T) {
	uc := NewDraftUseCase(persistence.NewMemoryDraftStore(), time.Second)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, uc.Save(ctx, alice, "resume.profile", json.RawMessage(`{"full_name":"Alice"}`)))
	require.NoError(t, uc.Save(ctx, alice, "resume.projects", json.RawMessage(`{"title":"Compiler"}`)))

	_, ok, err := uc.Load(ctx, bob, "resume.profile")
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err := uc.Load(ctx, alice, "resume.projects")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"title":"Compiler"}`, string(got))
}

func TestDraftAutosaveDebouncesWrites(t *testing.T) {
	uc := NewDraftUseCase(persistence.NewMemoryDraftStore(), 20*time.Millisecond)
	defer uc.Close()
	ctx := context.Background()
	owner := uuid.New()

	require.NoError(t, uc.Autosave(owner, "resume.profile", json.RawMessage(`{"full_name":"Ali"}`)))
	require.NoError(t, uc.Autosave(owner, "resume.profile", json.RawMessage(`{"full_name":"Alice"}`)))

	_, ok, err := uc.Load(ctx, owner, "resume.profile")
	require.NoError(t, err)
	assert.False(t, ok)

	require.Eventually(t, func() bool {
		_, ok, err := uc.Load(ctx, owner, "resume.profile")
		return err == nil && ok
	}, time.Second, 5*time.Millisecond)

	got, ok, err := uc.Load(ctx, owner, "resume.profile")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"full_name":"Alice"}`, string(got))

	assert.Error(t, uc.Autosave(owner, "users.scratch", json.RawMessage(`{}`)))
}

func TestDraftClearDropsPendingAutosave(t *testing.T) {
	uc := NewDraftUseCase(persistence.NewMemoryDraftStore(), 20*time.Millisecond)
	defer uc.Close()
	ctx := context.Background()
	owner := uuid.New()

	require.NoError(t, uc.Autosave(owner, "resume.skills", json.RawMessage(`{"items":["Go"]}`)))
	require.NoError(t, uc.Clear(ctx, owner, "resume.skills"))

	time.Sleep(60 * time.Millisecond)
	_, ok, err := uc.Load(ctx, owner, "resume.skills")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAutosaverFiresAfterQuietPeriod(t *testing.T) {
	store := persistence.NewMemoryDraftStore()
	saver := NewAutosaver(store, 20*time.Millisecond)
	defer saver.Close()
	owner := uuid.New()

	saver.Touch(owner, "resume.profile", map[string]string{"full_name": "Alice"})

	var dest map[string]string
	assert.False(t, store.Load(context.Background(), owner, "resume.profile", &dest))

	require.Eventually(t, func() bool {
		var got map[string]string
		return store.Load(context.Background(), owner, "resume.profile", &got)
	}, time.Second, 5*time.Millisecond)
}

func TestAutosaverKeepsLatestValue(t *testing.T) {
	store := persistence.NewMemoryDraftStore()
	saver := NewAutosaver(store, 20*time.Millisecond)
	defer saver.Close()
	owner := uuid.New()

	saver.Touch(owner, "resume.profile", map[string]string{"full_name": "Ali"})
	saver.Touch(owner, "resume.profile", map[string]string{"full_name": "Alice"})

	require.Eventually(t, func() bool {
		var got map[string]string
		return store.Load(context.Background(), owner, "resume.profile", &got)
	}, time.Second, 5*time.Millisecond)

	var got map[string]string
	require.True(t, store.Load(context.Background(), owner, "resume.profile", &got))
	assert.Equal(t, "Alice", got["full_name"])
}

func TestAutosaverCancelDropsPendingSave(t *testing.T) {
	store := persistence.NewMemoryDraftStore()
	saver := NewAutosaver(store, 20*time.Millisecond)
	defer saver.Close()
	owner := uuid.New()

	saver.Touch(owner, "resume.skills", map[string]string{"items": "Go"})
	saver.Cancel(owner, "resume.skills")

	time.Sleep(60 * time.Millisecond)
	var got map[string]string
	assert.False(t, store.Load(context.Background(), owner, "resume.skills", &got))
}

func TestAutosaverCloseStopsTimers(t *testing.T) {
	store := persistence.NewMemoryDraftStore()
	saver := NewAutosaver(store, 20*time.Millisecond)
	owner := uuid.New()

	saver.Touch(owner, "resume.profile", map[string]string{"full_name": "Alice"})
	saver.Close()

	time.Sleep(60 * time.Millisecond)
	var got map[string]string
	assert.False(t, store.Load(context.Background(), owner, "resume.profile", &got))

	// Touch after Close is a no-op.
	saver.Touch(owner, "resume.profile", map[string]string{"full_name": "Alice"})
	time.Sleep(60 * time.Millisecond)
	assert.False(t, store.Load(context.Background(), owner, "resume.profile", &got))
}
