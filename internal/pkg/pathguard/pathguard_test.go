package pathguard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	mount := t.TempDir()
	session := filepath.Join(mount, "session1")
	if err := os.Mkdir(session, 0o755); err != nil {
		t.Fatal(err)
	}

	t.Run("path inside mount", func(t *testing.T) {
		got, err := Resolve(session, []string{mount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, _ := filepath.EvalSymlinks(session)
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("mount point itself", func(t *testing.T) {
		if _, err := Resolve(mount, []string{mount}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("traversal escapes mount", func(t *testing.T) {
		candidate := filepath.Join(session, "..", "..", "etc", "passwd")
		_, err := Resolve(candidate, []string{mount})
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds, got %v", err)
		}
	})

	t.Run("relative traversal", func(t *testing.T) {
		_, err := Resolve("../../etc/passwd", []string{mount})
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds, got %v", err)
		}
	})

	t.Run("sibling with common prefix rejected", func(t *testing.T) {
		_, err := Resolve(mount+"-other", []string{mount})
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds, got %v", err)
		}
	})

	t.Run("nonexistent child still resolves", func(t *testing.T) {
		candidate := filepath.Join(session, "para-revision")
		got, err := Resolve(candidate, []string{mount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filepath.Base(got) != "para-revision" {
			t.Fatalf("unexpected resolved path %q", got)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := Resolve("", []string{mount}); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds, got %v", err)
		}
	})

	t.Run("no mount points configured", func(t *testing.T) {
		if _, err := Resolve(session, nil); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds, got %v", err)
		}
	})

	t.Run("symlink out of mount rejected", func(t *testing.T) {
		outside := t.TempDir()
		link := filepath.Join(mount, "escape")
		if err := os.Symlink(outside, link); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}
		_, err := Resolve(link, []string{mount})
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds, got %v", err)
		}
	})
}
