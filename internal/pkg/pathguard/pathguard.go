package pathguard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrOutOfBounds is returned when a client-supplied path resolves
// outside every configured mount point.
var ErrOutOfBounds = errors.New("path is outside allowed mount points")

// Resolve normalizes candidate (absolute, cleaned, symlinks resolved)
// and verifies it is equal to or a descendant of one of the configured
// mount points. Every component touching the filesystem with a
// client-supplied path must go through this first.
func Resolve(candidate string, mountPoints []string) (string, error) {
	if candidate == "" || len(mountPoints) == 0 {
		return "", ErrOutOfBounds
	}

	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", ErrOutOfBounds
	}

	resolved, err := resolveSymlinks(abs)
	if err != nil {
		return "", ErrOutOfBounds
	}

	for _, mp := range mountPoints {
		mount, err := filepath.Abs(mp)
		if err != nil {
			continue
		}
		if real, err := filepath.EvalSymlinks(mount); err == nil {
			mount = real
		}
		if resolved == mount || strings.HasPrefix(resolved, mount+string(filepath.Separator)) {
			return resolved, nil
		}
	}

	return "", ErrOutOfBounds
}

// resolveSymlinks resolves symlinks in path. The trailing components
// may not exist yet (a destination folder about to be created), so the
// deepest existing ancestor is resolved and the remainder re-joined.
func resolveSymlinks(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	dir := filepath.Clean(path)
	var tail []string
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Hit the root without finding an existing ancestor.
			return filepath.Clean(path), nil
		}
		tail = append([]string{filepath.Base(dir)}, tail...)
		dir = parent

		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			return filepath.Join(append([]string{resolved}, tail...)...), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
	}
}
