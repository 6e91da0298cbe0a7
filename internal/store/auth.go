package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

// AuthStore holds the bearer token and minimal identity used to authorize
// API calls, persisted across restarts.
type AuthStore struct {
	mu      sync.RWMutex
	session model.AuthSession
	storage Storage
	log     *slog.Logger
}

func NewAuthStore(storage Storage, log *slog.Logger) *AuthStore {
	s := &AuthStore{storage: storage, log: log}

	var doc model.AuthSession
	found, err := storage.Load(AuthStorageKey, &doc)
	if err != nil {
		log.Warn("auth storage unreadable, starting logged out", "err", err)
	}
	if found {
		s.session = doc
	}
	return s
}

// Login stores the user and lifts its token into the session.
func (s *AuthStore) Login(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.session = model.AuthSession{User: &u, Token: user.Token}
	s.persistLocked()
}

func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = model.AuthSession{}
	s.persistLocked()
}

func (s *AuthStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token != ""
}

func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

func (s *AuthStore) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session.User == nil {
		return nil
	}
	u := *s.session.User
	return &u
}

// ExpiresAt reads the exp claim without verifying the signature; the
// client holds no signing key, and expiry is still enforced server-side
// via 401. Used only to warn ahead of time.
func (s *AuthStore) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (s *AuthStore) persistLocked() {
	if err := s.storage.Save(AuthStorageKey, s.session); err != nil {
		s.log.Warn("persist auth failed", "err", err)
	}
}
