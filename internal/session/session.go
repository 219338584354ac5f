package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"farhanadbm1/traintrack-client/internal/domain"
)

// Store persists the authenticated session (bearer token plus the user it
// belongs to) across process restarts. It is read once at startup to hydrate
// the user slice and written on login, profile update and logout.
type Store struct {
	path string

	mu    sync.Mutex
	token string
	user  *domain.User
}

// payload is the on-disk shape. Mirrors the "token" and "user" keys the
// web client keeps in browser storage.
type payload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

// NewStore creates a session store backed by the file at path. Nothing is
// read until Load is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user default session file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".traintrack-session.json"
	}
	return filepath.Join(home, ".traintrack", "session.json")
}

// Load reads the persisted session from disk. A missing file is an empty
// session, not an error. A token whose expiry has passed is dropped along
// with the user so a stale session never hydrates the store.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.token, s.user = "", nil
			return nil
		}
		return err
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		// Corrupt session file: treat as logged out.
		s.token, s.user = "", nil
		return nil
	}
	if p.Token != "" && tokenExpired(p.Token, time.Now()) {
		s.token, s.user = "", nil
		return nil
	}
	s.token, s.user = p.Token, p.User
	return nil
}

// Token returns the persisted bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the persisted user, or nil when logged out.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Set stores a fresh token/user pair and persists it.
func (s *Store) Set(token string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = token, user
	return s.write()
}

// SetUser replaces the persisted user, keeping the token. Used when the
// authenticated user's own profile is updated.
func (s *Store) SetUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return s.write()
}

// Clear wipes the session in memory and on disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token, s.user = "", nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// write persists the current session via a temp file rename so a crash
// mid-write never leaves a truncated session behind.
func (s *Store) write() error {
	data, err := json.MarshalIndent(payload{Token: s.token, User: s.user}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// tokenExpired inspects the token's registered claims without verifying the
// signature; the client has no secret and only needs the expiry. Tokens that
// do not parse at all are kept — the backend is the authority and will reject
// them with a 401 if they are bad.
func tokenExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(now)
}
