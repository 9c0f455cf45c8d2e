package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"foodgram-admin/internal/data/entity"

	"go.uber.org/zap"
)

// Store holds the authenticated admin under a fixed storage slot on disk,
// the console's stand-in for the browser's localStorage. Only records with
// the admin role are ever accepted or kept.
type Store struct {
	mu       sync.RWMutex
	path     string
	current  *entity.AdminSession
	onLogout func()
	log      *zap.Logger
}

func NewStore(path string, log *zap.Logger) *Store {
	s := &Store{
		path: path,
		log:  log,
	}
	s.load()
	return s
}

// SetLogoutHook registers the side-effect fired after the slot is cleared
// (the redirect-to-login analog)
func (s *Store) SetLogoutHook(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// load restores a persisted session, re-validating the role at load time.
// A slot holding a non-admin record is cleared and reported.
func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("Failed to read session slot", zap.String("path", s.path), zap.Error(err))
		}
		return
	}

	var admin entity.AdminSession
	if err := json.Unmarshal(raw, &admin); err != nil {
		s.log.Warn("Corrupt session slot, clearing", zap.String("path", s.path), zap.Error(err))
		os.Remove(s.path)
		return
	}

	if !admin.IsAdmin() {
		s.log.Error("Persisted session lacks admin role, clearing",
			zap.String("email", admin.Email),
			zap.String("role", string(admin.Role)),
		)
		os.Remove(s.path)
		return
	}

	s.current = &admin
}

// Save persists an admin session to the slot. Non-admin records are refused.
func (s *Store) Save(admin *entity.AdminSession) error {
	if !admin.IsAdmin() {
		return fmt.Errorf("access denied: admin privileges required")
	}

	raw, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("write session slot: %w", err)
	}

	s.mu.Lock()
	s.current = admin
	s.mu.Unlock()

	return nil
}

// Current returns the persisted admin record, or nil when logged out
func (s *Store) Current() *entity.AdminSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token derives the bearer token from the current record. Implements the
// backend client's TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Clear wipes the slot without firing the logout hook
func (s *Store) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Failed to remove session slot", zap.String("path", s.path), zap.Error(err))
	}
}

// Logout clears the slot and fires the logout hook
func (s *Store) Logout() {
	s.Clear()

	s.mu.RLock()
	hook := s.onLogout
	s.mu.RUnlock()

	if hook != nil {
		hook()
	}
}
