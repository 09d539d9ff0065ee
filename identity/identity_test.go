package identity

import (
	"path/filepath"
	"testing"
)

func TestUserIDFallsBackToPlaceholder(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "user_id"))
	if got := p.UserID(); got != Placeholder {
		t.Fatalf("got %q, want %q", got, Placeholder)
	}
}

func TestSetAndResolve(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "nested", "user_id"))
	if err := p.Set("traveler_42"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := p.UserID(); got != "traveler_42" {
		t.Fatalf("stored identity not read back: %q", got)
	}
	if got := p.Resolve(""); got != "traveler_42" {
		t.Fatalf("resolve should use stored identity: %q", got)
	}
	if got := p.Resolve("explicit"); got != "explicit" {
		t.Fatalf("explicit identity must win: %q", got)
	}
}

func TestNewUserID(t *testing.T) {
	a, b := NewUserID(), NewUserID()
	if a == "" || a == b {
		t.Fatalf("ids not unique: %q %q", a, b)
	}
}
