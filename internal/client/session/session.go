// Package session holds the signed-in identity for the lifetime of a run.
//
// The session is an explicit dependency handed to every component that needs
// the current user, not an ambient global: it is set on sign-in, cleared on
// sign-out, and dependents observe changes through Subscribe.
package session

import (
	"fmt"
	"sync"

	"github.com/blogsphere/blogsphere-cli/internal/client/models"
	"golang.org/x/oauth2"
)

// Session is safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	user   *models.User
	tokens oauth2.TokenSource
	subs   []func(*models.User)
}

func New() *Session {
	return &Session{}
}

// SignIn installs the user and its token source and notifies subscribers.
// The token source is expected to refresh credentials on its own; that is
// the identity provider's responsibility.
func (s *Session) SignIn(user *models.User, tokens oauth2.TokenSource) {
	s.mu.Lock()
	s.user = user
	s.tokens = tokens
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}

// SignOut clears the session and notifies subscribers with a nil user.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.tokens = nil
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// User returns the signed-in user, or nil when no session is active.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Email returns the signed-in user's email, or "" when no session is active.
func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Email
}

// Token returns a fresh bearer token, or "" when no session is active.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	tokens := s.tokens
	s.mu.RUnlock()

	if tokens == nil {
		return "", nil
	}
	tok, err := tokens.Token()
	if err != nil {
		return "", fmt.Errorf("token refresh: %w", err)
	}
	return tok.AccessToken, nil
}

// Subscribe registers fn to be called with the new user on every sign-in and
// with nil on every sign-out. Subscriptions live for the session's lifetime.
func (s *Session) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
