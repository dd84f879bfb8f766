package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/sgphoto/photoreview-api/internal/domain/settings"
	"github.com/sgphoto/photoreview-api/internal/pkg/pathguard"
)

// Service scans folders and classifies their contents
type Service struct {
	settings *settings.Store
}

// NewService creates catalog service
func NewService(store *settings.Store) *Service {
	return &Service{settings: store}
}

// FolderItem is one subfolder in a browse listing
type FolderItem struct {
	Name string
	Path string
}

// Permissions describes filesystem access for a path
type Permissions struct {
	Exists   bool
	Readable bool
	Writable bool
}

// Scan lists the immediate children of path and groups them into photo
// records. Subdirectories and unrecognized extensions are skipped. A
// stat failure on one constituent downgrades that record's size rather
// than failing the whole scan.
func (s *Service) Scan(ctx context.Context, path string) ([]PhotoRecord, error) {
	cfg := s.settings.Get()

	resolved, err := pathguard.Resolve(path, cfg.MountPoints)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, mapFSError(err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	records := Classify(names, cfg.VideoExtensions)

	for i := range records {
		rec := &records[i]
		if rec.JPGPath != "" {
			rec.JPGPath = filepath.Join(resolved, rec.JPGPath)
		}
		if rec.RAWPath != "" {
			rec.RAWPath = filepath.Join(resolved, rec.RAWPath)
		}
		if rec.VideoPath != "" {
			rec.VideoPath = filepath.Join(resolved, rec.VideoPath)
		}
		rec.DisplayPath = filepath.Join(resolved, rec.DisplayPath)
		rec.Size = sumSizes(rec.Constituents())
	}

	return records, nil
}

// Browse lists immediate subfolders of path, or the configured mount
// points when path is empty. Unreadable entries are skipped.
func (s *Service) Browse(ctx context.Context, path string) ([]FolderItem, error) {
	cfg := s.settings.Get()

	if path == "" {
		var items []FolderItem
		for _, mp := range cfg.MountPoints {
			info, err := os.Stat(mp)
			if err != nil || !info.IsDir() {
				continue
			}
			name := filepath.Base(mp)
			if name == string(filepath.Separator) {
				name = mp
			}
			items = append(items, FolderItem{Name: name, Path: mp})
		}
		return items, nil
	}

	resolved, err := pathguard.Resolve(path, cfg.MountPoints)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, mapFSError(err)
	}
	if !info.IsDir() {
		return nil, ErrNotDirectory
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, mapFSError(err)
	}

	var items []FolderItem
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		items = append(items, FolderItem{
			Name: entry.Name(),
			Path: filepath.Join(resolved, entry.Name()),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return lessFold(items[i].Name, items[j].Name)
	})

	return items, nil
}

// CheckPermissions reports existence and read/write access for path.
func (s *Service) CheckPermissions(path string) (Permissions, error) {
	cfg := s.settings.Get()

	resolved, err := pathguard.Resolve(path, cfg.MountPoints)
	if err != nil {
		return Permissions{}, err
	}

	var perms Permissions
	if _, err := os.Stat(resolved); err == nil {
		perms.Exists = true
		perms.Readable = unix.Access(resolved, unix.R_OK) == nil
		perms.Writable = unix.Access(resolved, unix.W_OK) == nil
	}
	return perms, nil
}

func sumSizes(paths []string) int64 {
	var total int64
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			log.Warn().Err(err).Str("file", filepath.Base(path)).Msg("Skipping size of unreadable constituent")
			continue
		}
		total += info.Size()
	}
	return total
}

func mapFSError(err error) error {
	switch {
	case os.IsNotExist(err):
		return ErrNotFound
	case os.IsPermission(err):
		return ErrPermissionDenied
	case errors.Is(err, unix.ENOTDIR):
		return ErrNotDirectory
	default:
		return err
	}
}
