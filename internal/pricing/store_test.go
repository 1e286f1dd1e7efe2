package pricing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCouponStore_GetSetClear(t *testing.T) {
	store := NewMemoryCouponStore()

	_, ok := store.Get("user123")
	assert.False(t, ok)

	store.Set("user123", "FLAT10")
	code, ok := store.Get("user123")
	assert.True(t, ok)
	assert.Equal(t, "FLAT10", code)

	store.Set("user123", "NEWUSER")
	code, _ = store.Get("user123")
	assert.Equal(t, "NEWUSER", code)

	store.Clear("user123")
	_, ok = store.Get("user123")
	assert.False(t, ok)

	// Clearing an absent entry is a no-op.
	store.Clear("user123")
}

func TestMemoryCouponStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryCouponStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Set("user123", "FLAT10")
			store.Get("user123")
			store.Clear("user123")
		}()
	}
	wg.Wait()
}
