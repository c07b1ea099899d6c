package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newStore(t *testing.T) *InMemoryBlacklistStore {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewInMemoryBlacklistStore(ctx)
}

func TestAddToBlacklist(t *testing.T) {
	store := newStore(t)
	jti := "test-token-id"
	exp := time.Now().Add(time.Hour)

	assert.NoError(t, store.AddToBlacklist(jti, exp))

	store.mu.RLock()
	expTime, exists := store.blacklist[jti]
	store.mu.RUnlock()

	assert.True(t, exists)
	assert.Equal(t, exp, expTime)
}

func TestIsBlacklisted(t *testing.T) {
	store := newStore(t)
	assert.NoError(t, store.AddToBlacklist("revoked", time.Now().Add(time.Hour)))
	assert.NoError(t, store.AddToBlacklist("stale", time.Now().Add(-time.Minute)))

	tests := []struct {
		jti  string
		want bool
	}{
		{"revoked", true},
		{"unknown", false},
		// expired entries no longer matter even before cleanup runs
		{"stale", false},
	}
	for _, tt := range tests {
		t.Run(tt.jti, func(t *testing.T) {
			got, err := store.IsBlacklisted(tt.jti)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddToBlacklist_UpdateExpiration(t *testing.T) {
	store := newStore(t)
	jti := "test-token"

	assert.NoError(t, store.AddToBlacklist(jti, time.Now().Add(time.Hour)))
	exp2 := time.Now().Add(2 * time.Hour)
	assert.NoError(t, store.AddToBlacklist(jti, exp2))

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Equal(t, exp2, store.blacklist[jti])
}

func TestCleanUpExpired(t *testing.T) {
	store := newStore(t)
	expired := time.Now().Add(-time.Hour)

	assert.NoError(t, store.AddToBlacklist("expired-token-1", expired))
	assert.NoError(t, store.AddToBlacklist("expired-token-2", expired))
	assert.NoError(t, store.AddToBlacklist("valid-token", time.Now().Add(time.Hour)))

	store.CleanUpExpired()

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Len(t, store.blacklist, 1)
	assert.Contains(t, store.blacklist, "valid-token")
}

func TestCleanUpExpired_EmptyStore(t *testing.T) {
	store := newStore(t)
	assert.NotPanics(t, store.CleanUpExpired)
}

func TestPeriodicCleanUpStopsWithContext(t *testing.T) {
	store := &InMemoryBlacklistStore{blacklist: map[string]time.Time{
		"expired": time.Now().Add(-time.Hour),
	}}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		periodicCleanUp(ctx, store, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		return len(store.blacklist) == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup goroutine did not stop")
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := newStore(t)
	exp := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, store.AddToBlacklist(fmt.Sprintf("token-%d", id), exp))
		}(i)
		go func(id int) {
			defer wg.Done()
			_, err := store.IsBlacklisted(fmt.Sprintf("token-%d", id))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Len(t, store.blacklist, 10)
}
