package client

import (
	"sync"

	"github.com/vibank/account-system/internal/core/domain"
)

// Session is the explicit logged-in-user state for the lifetime of the
// client process: initialised at app start with NewSession, populated
// by a successful login, and torn down on logout with Clear. It
// replaces the implicit global the original UI carried.
type Session struct {
	mu   sync.RWMutex
	user *domain.PublicUser
}

func NewSession() *Session {
	return &Session{}
}

// Establish records u as the logged-in user.
func (s *Session) Establish(u domain.PublicUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// Current returns the logged-in user and whether one is established.
func (s *Session) Current() (domain.PublicUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.PublicUser{}, false
	}
	return *s.user, true
}

// Clear tears the session down (logout / navigation away).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
