package utils

import (
	"sync"
	"time"
)

// TokenBlacklist remembers revoked session ids until they would have
// expired anyway.
type TokenBlacklist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (b *TokenBlacklist) Revoke(id string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[id] = expiresAt
	b.cleanupLocked()
}

func (b *TokenBlacklist) IsRevoked(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	expiry, exists := b.revoked[id]
	return exists && b.now().Before(expiry)
}

// cleanupLocked drops entries whose token has expired. Called on every
// revoke, so the map never outgrows the number of live sessions.
func (b *TokenBlacklist) cleanupLocked() {
	now := b.now()
	for id, expiry := range b.revoked {
		if !now.Before(expiry) {
			delete(b.revoked, id)
		}
	}
}
