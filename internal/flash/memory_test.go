package flash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeClearsMessage(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Set(ctx, "session-1", Success, "Person created successfully!")
	assert.NoError(t, err)

	message, ok, err := store.Take(ctx, "session-1", Success)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Person created successfully!", message)

	// Second read must report absent
	message, ok, err = store.Take(ctx, "session-1", Success)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, message)
}

func TestTakeWithoutSet(t *testing.T) {
	store := NewMemoryStore()

	_, ok, err := store.Take(context.Background(), "session-1", Error)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSetOverwritesUnreadMessage(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "session-1", Error, "first"))
	assert.NoError(t, store.Set(ctx, "session-1", Error, "second"))

	message, ok, err := store.Take(ctx, "session-1", Error)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", message)
}

func TestSeveritiesAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "session-1", Success, "created"))
	assert.NoError(t, store.Set(ctx, "session-1", Error, "failed"))

	success, ok, _ := store.Take(ctx, "session-1", Success)
	assert.True(t, ok)
	assert.Equal(t, "created", success)

	errMsg, ok, _ := store.Take(ctx, "session-1", Error)
	assert.True(t, ok)
	assert.Equal(t, "failed", errMsg)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "session-1", Success, "for session one"))

	_, ok, err := store.Take(ctx, "session-2", Success)
	assert.NoError(t, err)
	assert.False(t, ok)

	message, ok, _ := store.Take(ctx, "session-1", Success)
	assert.True(t, ok)
	assert.Equal(t, "for session one", message)
}
