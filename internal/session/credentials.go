package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// credentialFile is the on-disk shape of the saved token. A single token is
// kept per client; there is no multi-session support.
type credentialFile struct {
	AccessToken string    `json:"access_token"`
	SavedAt     time.Time `json:"saved_at"`
}

// FileTokenStore persists the bearer token as a 0600 JSON file under the XDG
// data directory. It implements api.TokenStore.
type FileTokenStore struct {
	path   string
	mu     sync.Mutex
	token  string
	loaded bool
}

// NewFileTokenStore creates a store backed by the given file. An empty path
// uses the default location under the user's data directory.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	if path == "" {
		var err error
		path, err = defaultCredentialPath()
		if err != nil {
			return nil, err
		}
	}
	return &FileTokenStore{path: path}, nil
}

func defaultCredentialPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "paytx", "credentials.json"), nil
}

// Token returns the held token, loading it from disk on first use. A missing
// or unreadable file means no token.
func (s *FileTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loaded = true
		data, err := os.ReadFile(s.path)
		if err == nil {
			var creds credentialFile
			if err := json.Unmarshal(data, &creds); err == nil {
				s.token = creds.AccessToken
			}
		}
	}
	return s.token
}

// Save persists the token durably.
func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}
	data, err := json.MarshalIndent(credentialFile{
		AccessToken: token,
		SavedAt:     time.Now(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	s.token = token
	s.loaded = true
	return nil
}

// Clear drops the token from memory and disk. The in-memory copy is dropped
// first so concurrent readers never observe a stale credential after Clear
// returns, even if the file removal fails.
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}
