package http

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// sessionStore is the process-scoped "is logged in" flag: a set of live
// tokens held only in memory. It empties on process restart and is never
// persisted, so a login survives page reloads but not a restart.
type sessionStore struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func newSessionStore() *sessionStore {
	return &sessionStore{tokens: make(map[string]struct{})}
}

// Create mints a new session token and marks it live.
func (s *sessionStore) Create() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(b)

	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token, nil
}

// Valid reports whether the token belongs to a live session.
func (s *sessionStore) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

// Destroy forgets the token. Destroying an unknown token is a no-op.
func (s *sessionStore) Destroy(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
