// Package revocation tracks bearer tokens invalidated before their natural
// expiry. Stores are injected into the auth service rather than held as
// process-wide state, and every implementation is safe for concurrent use.
package revocation

import (
	"context"
	"sync"
	"time"
)

// Store is the revocation set. Revoke is idempotent; revoking an already
// revoked token is a no-op. Entries lapse on their own once the ttl passes,
// which matches the token's natural expiry, so the set stays bounded.
type Store interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// MemoryStore is a mutex-guarded in-memory Store. Expired entries are pruned
// lazily on access.
type MemoryStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: make(map[string]time.Time),
	}
}

// Revoke records the token until its ttl lapses. A non-positive ttl means the
// token has already expired naturally and nothing needs to be recorded.
func (s *MemoryStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = time.Now().Add(ttl)
	return nil
}

// IsRevoked reports whether the token is currently revoked.
func (s *MemoryStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	expiry, ok := s.revoked[token]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		s.mu.Lock()
		delete(s.revoked, token)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}
