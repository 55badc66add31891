package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	sessions := NewSessionRepository(time.Hour)

	token := sessions.Create()
	require.NotEmpty(t, token)
	assert.True(t, sessions.Valid(token))
	assert.False(t, sessions.Valid("forged"))

	sessions.Delete(token)
	assert.False(t, sessions.Valid(token))
}

func TestSessionRepositoryExpiry(t *testing.T) {
	sessions := NewSessionRepository(time.Hour)

	current := time.Now()
	sessions.now = func() time.Time { return current }

	token := sessions.Create()
	assert.True(t, sessions.Valid(token))

	current = current.Add(2 * time.Hour)
	assert.False(t, sessions.Valid(token))
	// Expired tokens are dropped, not resurrected by a clock rollback.
	current = current.Add(-2 * time.Hour)
	assert.False(t, sessions.Valid(token))
}
