// Package identity resolves the traveler identifier attached to every service
// call. The chain is: explicit value, then a locally persisted one, then a
// fixed placeholder. No authentication token exists beyond this identifier.
package identity

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Placeholder is the identifier used when nothing has been stored locally.
const Placeholder = "user_123"

// FileProvider persists the traveler identifier in a plain text file.
type FileProvider struct {
	path string
}

// NewFileProvider builds a provider around the given file path. An empty path
// falls back to "user_id" under the user config directory.
func NewFileProvider(path string) *FileProvider {
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			path = filepath.Join(dir, "wanderplan", "user_id")
		} else {
			path = ".wanderplan_user_id"
		}
	}
	return &FileProvider{path: path}
}

// UserID returns the stored identifier, or Placeholder when none is stored.
func (p *FileProvider) UserID() string {
	b, err := os.ReadFile(p.path)
	if err != nil {
		return Placeholder
	}
	id := strings.TrimSpace(string(b))
	if id == "" {
		return Placeholder
	}
	return id
}

// Set stores the identifier, creating parent directories as needed.
func (p *FileProvider) Set(id string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, []byte(id+"\n"), 0o600)
}

// Resolve picks the identity for a call: explicit wins, otherwise whatever
// the provider holds.
func (p *FileProvider) Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return p.UserID()
}

// NewUserID mints a fresh traveler identifier.
func NewUserID() string {
	return uuid.NewString()
}
