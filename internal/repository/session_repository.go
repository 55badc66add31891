package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionRepository holds admin login sessions in memory. Tokens are opaque
// random values handed out as cookies; a restart logs the admin out, which
// is acceptable for a single-user journal.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create mints a new session token.
func (r *SessionRepository) Create() string {
	token := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = r.now().Add(r.ttl)
	return token
}

// Valid reports whether a token exists and has not expired. Expired tokens
// are removed on sight.
func (r *SessionRepository) Valid(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, exists := r.sessions[token]
	if !exists {
		return false
	}
	if r.now().After(expiry) {
		delete(r.sessions, token)
		return false
	}
	return true
}

// Delete removes a session (logout).
func (r *SessionRepository) Delete(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
}
