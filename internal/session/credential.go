package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Great2008/reads-web-app/internal/gateway"
)

// CredentialStore persists the opaque bearer credential between runs.
// Load returns an empty credential, not an error, when none is stored;
// absence on startup is equivalent to an unauthenticated session.
type CredentialStore interface {
	Load() (gateway.Credential, error)
	Save(cred gateway.Credential) error
	Clear() error
}

// FileCredentialStore keeps the credential in a single file, mode 0600.
type FileCredentialStore struct {
	path string
}

// NewFileCredentialStore creates a store backed by the file at path.
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

// Load implements CredentialStore.Load.
func (s *FileCredentialStore) Load() (gateway.Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read credential file: %w", err)
	}
	return gateway.Credential(strings.TrimSpace(string(data))), nil
}

// Save implements CredentialStore.Save.
func (s *FileCredentialStore) Save(cred gateway.Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(cred), 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return nil
}

// Clear implements CredentialStore.Clear.
func (s *FileCredentialStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credential file: %w", err)
	}
	return nil
}

// MemoryCredentialStore keeps the credential in memory. Used in tests and in
// deployments that must not persist sessions across restarts.
type MemoryCredentialStore struct {
	mu   sync.Mutex
	cred gateway.Credential
}

// NewMemoryCredentialStore creates an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

// Load implements CredentialStore.Load.
func (s *MemoryCredentialStore) Load() (gateway.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred, nil
}

// Save implements CredentialStore.Save.
func (s *MemoryCredentialStore) Save(cred gateway.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}

// Clear implements CredentialStore.Clear.
func (s *MemoryCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = ""
	return nil
}
