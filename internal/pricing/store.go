package pricing

import "sync"

// AppliedCouponStore tracks the single coupon code associated with a user.
// The association is volatile: it does not survive a process restart.
type AppliedCouponStore interface {
	Get(userID string) (string, bool)
	Set(userID, code string)
	Clear(userID string)
}

// MemoryCouponStore implements AppliedCouponStore with in-memory storage.
type MemoryCouponStore struct {
	mu      sync.RWMutex
	applied map[string]string // userID -> coupon code
}

func NewMemoryCouponStore() *MemoryCouponStore {
	return &MemoryCouponStore{applied: make(map[string]string)}
}

func (s *MemoryCouponStore) Get(userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.applied[userID]
	return code, ok
}

func (s *MemoryCouponStore) Set(userID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied[userID] = code
}

func (s *MemoryCouponStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.applied, userID)
}
