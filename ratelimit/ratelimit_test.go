package ratelimit

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAllowsUpToLimit(t *testing.T) {
	store := NewMemoryStore()
	cfg := Config{Limit: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		result, err := store.Check(context.Background(), "1.2.3.4", cfg)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 3-(i+1), result.Remaining)
	}

	result, err := store.Check(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)

	// Repeated rejections keep reporting zero, never negative
	result, err = store.Check(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
}

func TestMemoryStoreIdentitiesAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	cfg := Config{Limit: 1, Window: time.Minute}

	first, err := store.Check(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := store.Check(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	other, err := store.Check(context.Background(), "5.6.7.8", cfg)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestMemoryStoreWindowResets(t *testing.T) {
	store := NewMemoryStore()
	cfg := Config{Limit: 1, Window: 20 * time.Millisecond}

	first, err := store.Check(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := store.Check(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	time.Sleep(25 * time.Millisecond)

	again, err := store.Check(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.True(t, again.Allowed)
}

func TestMemoryStoreResetAt(t *testing.T) {
	store := NewMemoryStore()
	cfg := Config{Limit: 5, Window: 5 * time.Minute}

	before := time.Now()
	result, err := store.Check(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)

	assert.True(t, result.ResetAt.After(before))
	assert.WithinDuration(t, before.Add(cfg.Window), result.ResetAt, time.Second)
}

func TestMemoryStoreCleanup(t *testing.T) {
	store := NewMemoryStore()
	cfg := Config{Limit: 1, Window: time.Millisecond}

	_, err := store.Check(context.Background(), "stale", cfg)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	store.Cleanup(time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.windows)
}

func TestClientIdentifierPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/contact", nil)
	r.RemoteAddr = "10.0.0.1:51234"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.Header.Set("X-Real-IP", "198.51.100.2")

	assert.Equal(t, "203.0.113.7", ClientIdentifier(r))
}

func TestClientIdentifierFallsBackToRealIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/contact", nil)
	r.RemoteAddr = "10.0.0.1:51234"
	r.Header.Set("X-Real-IP", "198.51.100.2")

	assert.Equal(t, "198.51.100.2", ClientIdentifier(r))
}

func TestClientIdentifierFallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/contact", nil)
	r.RemoteAddr = "10.0.0.1:51234"

	assert.Equal(t, "10.0.0.1", ClientIdentifier(r))
}

func TestClientIdentifierUnknown(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/contact", nil)
	r.RemoteAddr = ""

	assert.Equal(t, "unknown", ClientIdentifier(r))
}
