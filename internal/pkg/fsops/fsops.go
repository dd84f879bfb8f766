package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// Move renames src into dstDir keeping the base name. Same-filesystem
// rename is preferred; across filesystems it falls back to copy+delete.
func Move(src, dstDir string) (string, error) {
	dst := filepath.Join(dstDir, filepath.Base(src))

	err := os.Rename(src, dst)
	if err == nil {
		return dst, nil
	}
	if !isCrossDevice(err) {
		return "", fmt.Errorf("move %s: %w", filepath.Base(src), err)
	}

	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}
	if err := os.Remove(src); err != nil {
		// The copy landed; losing the source removal leaves a duplicate,
		// not data loss.
		return "", fmt.Errorf("remove source %s: %w", filepath.Base(src), err)
	}
	return dst, nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, syscall.EXDEV)
	}
	return errors.Is(err, syscall.EXDEV)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}

// RemoveIfEmpty deletes dir when it contains no entries at all.
// Returns true only when the directory was actually removed.
func RemoveIfEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false
	}
	return os.Remove(dir) == nil
}
