// Package storage provides file-based persistence for session state.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
)

// tokenFile is the single fixed key the bearer token lives under.
const tokenFile = "token"

// FileTokenStore persists the bearer token as a plain file with atomic
// replacement. The token is opaque to this store.
type FileTokenStore struct {
	basePath string
	logger   *common.Logger
}

// NewFileTokenStore creates the store and ensures its directory exists.
func NewFileTokenStore(logger *common.Logger, basePath string) (*FileTokenStore, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", basePath, err)
	}

	logger.Debug().Str("path", basePath).Msg("Token store opened")
	return &FileTokenStore{basePath: basePath, logger: logger}, nil
}

func (s *FileTokenStore) path() string {
	return filepath.Join(s.basePath, tokenFile)
}

// ReadToken returns the persisted token, or "" when none is stored.
func (s *FileTokenStore) ReadToken() (string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return string(data), nil
}

// WriteToken persists the token atomically: write to a temp file in the
// same directory, then rename over the target.
func (s *FileTokenStore) WriteToken(token string) error {
	tmpFile, err := os.CreateTemp(s.basePath, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.WriteString(token); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// ClearToken removes the persisted token. A missing token is not an error.
func (s *FileTokenStore) ClearToken() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// Ensure FileTokenStore implements TokenStore
var _ interfaces.TokenStore = (*FileTokenStore)(nil)
