package apiclient

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v2"
)

// SessionKey is the key the signed-in user is stored under.
const SessionKey = "currentUser"

type (
	SessionUser struct {
		ID           string `yaml:"id"`
		Name         string `yaml:"name"`
		Email        string `yaml:"email"`
		Role         string `yaml:"role"`
		Organization string `yaml:"organization,omitempty"`
	}

	Session struct {
		User    SessionUser `yaml:"user"`
		Access  string      `yaml:"access"`
		Refresh string      `yaml:"refresh"`
	}

	// SessionStore persists the session as YAML in a single local file.
	// Other keys in the file are preserved.
	SessionStore struct {
		path string
		mu   sync.Mutex
	}
)

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load returns the stored session, or nil if none is stored.
func (s *SessionStore) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	session, ok := doc[SessionKey]
	if !ok || session == nil || session.Access == "" {
		return nil, nil
	}
	return session, nil
}

func (s *SessionStore) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc[SessionKey] = &session
	return s.write(doc)
}

func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := doc[SessionKey]; !ok {
		return nil
	}
	delete(doc, SessionKey)
	if len(doc) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove session file: %w", err)
		}
		return nil
	}
	return s.write(doc)
}

func (s *SessionStore) read() (map[string]*Session, error) {
	doc := make(map[string]*Session)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return doc, nil
}

func (s *SessionStore) write(doc map[string]*Session) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
