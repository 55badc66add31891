package repository

import (
	"sync"
)

// DeviceToken is a registered push notification target.
type DeviceToken struct {
	Token     string
	Platform  string // "android" or "ios"
	CreatedAt int64
}

// TokenRepository manages device tokens for trade push alerts.
type TokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*DeviceToken
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{
		tokens: make(map[string]*DeviceToken),
	}
}

// Register adds or refreshes a device token.
func (r *TokenRepository) Register(token, platform string, timestamp int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token] = &DeviceToken{
		Token:     token,
		Platform:  platform,
		CreatedAt: timestamp,
	}
}

// Unregister removes a device token.
func (r *TokenRepository) Unregister(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, token)
}

// All returns every registered token.
func (r *TokenRepository) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens := make([]string, 0, len(r.tokens))
	for token := range r.tokens {
		tokens = append(tokens, token)
	}
	return tokens
}

// Count returns the number of registered devices.
func (r *TokenRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tokens)
}
