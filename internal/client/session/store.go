// Package session manages the console's stored credential and the identity
// derived from it.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CredentialStore holds the raw bearer credential between invocations.
// Implementations return an empty string, not an error, when no credential
// has been saved yet.
type CredentialStore interface {
	Load() (string, error)
	Save(raw string) error
	Clear() error
}

// FileStore persists the credential in a file, the console analogue of
// browser local storage.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(raw string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(raw), 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-memory CredentialStore for tests and short-lived commands.
type MemStore struct {
	mu  sync.Mutex
	raw string
}

func NewMemStore(raw string) *MemStore {
	return &MemStore{raw: raw}
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw, nil
}

func (s *MemStore) Save(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
	return nil
}

func (s *MemStore) Clear() error {
	return s.Save("")
}
