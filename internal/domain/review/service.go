package review

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sgphoto/photoreview-api/internal/domain/catalog"
	"github.com/sgphoto/photoreview-api/internal/domain/settings"
	"github.com/sgphoto/photoreview-api/internal/pkg/fsops"
	"github.com/sgphoto/photoreview-api/internal/pkg/pathguard"
)

// Service performs the move/restore/delete of paired files. Batches
// never abort on a single record: per-record errors are accumulated
// and aggregate counts returned. Pair moves are best-effort, not
// atomic; a constituent that fails after its sibling moved is reported
// and the sibling stays moved.
type Service struct {
	settings *settings.Store
}

// NewService creates review service
func NewService(store *settings.Store) *Service {
	return &Service{settings: store}
}

// MoveResult aggregates one move batch
type MoveResult struct {
	Moved  int
	Errors []string
}

// RestoreResult aggregates one restore batch
type RestoreResult struct {
	Restored      int
	FolderDeleted bool
	Errors        []string
}

// DeleteResult aggregates one delete batch
type DeleteResult struct {
	Deleted       int
	FolderDeleted bool
	Errors        []string
}

// DeleteJPGsResult aggregates one delete-jpgs batch
type DeleteJPGsResult struct {
	Deleted int
	Skipped int
	Errors  []string
}

// Move relocates every constituent of every record from folder into
// the folder/destinationName subfolder, creating it if absent. A
// record counts as moved when at least one constituent made it.
func (s *Service) Move(ctx context.Context, folder string, files []FileRef, destinationName string) (*MoveResult, error) {
	cfg := s.settings.Get()

	srcDir, err := pathguard.Resolve(folder, cfg.MountPoints)
	if err != nil {
		return nil, err
	}
	destDir, err := pathguard.Resolve(filepath.Join(srcDir, destinationName), cfg.MountPoints)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create destination folder: %w", err)
	}

	result := &MoveResult{Errors: []string{}}
	for i := range files {
		if s.moveRecord(&files[i], destDir, cfg.MountPoints, &result.Errors) {
			result.Moved++
		}
	}

	log.Info().
		Str("folder", filepath.Base(srcDir)).
		Int("moved", result.Moved).
		Int("errors", len(result.Errors)).
		Msg("Move batch finished")

	return result, nil
}

// Restore moves constituents from folder back to its parent. When the
// folder was the configured review folder and ends up empty, it is
// removed and FolderDeleted set so the caller can navigate up.
func (s *Service) Restore(ctx context.Context, folder string, files []FileRef) (*RestoreResult, error) {
	cfg := s.settings.Get()

	srcDir, err := pathguard.Resolve(folder, cfg.MountPoints)
	if err != nil {
		return nil, err
	}
	parentDir, err := pathguard.Resolve(filepath.Dir(srcDir), cfg.MountPoints)
	if err != nil {
		return nil, err
	}

	result := &RestoreResult{Errors: []string{}}
	for i := range files {
		if s.moveRecord(&files[i], parentDir, cfg.MountPoints, &result.Errors) {
			result.Restored++
		}
	}

	if IsReviewFolder(srcDir, cfg.DestinationFolder) {
		result.FolderDeleted = s.cleanupReviewFolder(srcDir, cfg.VideoExtensions)
	}

	log.Info().
		Str("folder", filepath.Base(srcDir)).
		Int("restored", result.Restored).
		Bool("folder_deleted", result.FolderDeleted).
		Int("errors", len(result.Errors)).
		Msg("Restore batch finished")

	return result, nil
}

// Delete permanently removes every constituent of every record. Only
// legal inside the review folder, and only when the configuration
// enables permanent deletion; the caller's gating is never trusted.
func (s *Service) Delete(ctx context.Context, folder string, files []FileRef) (*DeleteResult, error) {
	cfg := s.settings.Get()

	if !cfg.EnableDeleteButton {
		return nil, ErrDeleteDisabled
	}

	dir, err := pathguard.Resolve(folder, cfg.MountPoints)
	if err != nil {
		return nil, err
	}
	if !IsReviewFolder(dir, cfg.DestinationFolder) {
		return nil, ErrNotReviewFolder
	}

	result := &DeleteResult{Errors: []string{}}
	for i := range files {
		file := &files[i]
		deletedAny := false
		for _, constituent := range file.Constituents() {
			resolved, err := pathguard.Resolve(constituent, cfg.MountPoints)
			if err != nil {
				result.Errors = append(result.Errors, recordError(file.Name, constituent, "path not allowed"))
				continue
			}
			if err := os.Remove(resolved); err != nil {
				result.Errors = append(result.Errors, recordError(file.Name, constituent, removeReason(err)))
				continue
			}
			deletedAny = true
		}
		if deletedAny {
			result.Deleted++
		}
	}

	result.FolderDeleted = s.cleanupReviewFolder(dir, cfg.VideoExtensions)

	log.Info().
		Str("folder", filepath.Base(dir)).
		Int("deleted", result.Deleted).
		Bool("folder_deleted", result.FolderDeleted).
		Int("errors", len(result.Errors)).
		Msg("Delete batch finished")

	return result, nil
}

// DeleteJPGsOnly removes the JPEG constituent of jpg+raw records,
// keeping the RAW. Records of any other type are skipped, not errors.
func (s *Service) DeleteJPGsOnly(ctx context.Context, files []FileRef) (*DeleteJPGsResult, error) {
	cfg := s.settings.Get()

	result := &DeleteJPGsResult{Errors: []string{}}
	for i := range files {
		file := &files[i]

		if file.JPG == "" || file.RAW == "" {
			result.Skipped++
			continue
		}

		jpg, err := pathguard.Resolve(file.JPG, cfg.MountPoints)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, recordError(file.Name, file.JPG, "path not allowed"))
			continue
		}

		// The RAW must still be there before the JPEG goes.
		raw, err := pathguard.Resolve(file.RAW, cfg.MountPoints)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, recordError(file.Name, file.RAW, "path not allowed"))
			continue
		}
		if _, err := os.Stat(raw); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, recordError(file.Name, file.RAW, "RAW not found, keeping JPG"))
			continue
		}

		if err := os.Remove(jpg); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, recordError(file.Name, file.JPG, removeReason(err)))
			continue
		}
		result.Deleted++
	}

	return result, nil
}

// moveRecord moves every constituent of one record into destDir,
// appending one error per failed constituent. Returns true when at
// least one constituent moved.
func (s *Service) moveRecord(file *FileRef, destDir string, mountPoints []string, errs *[]string) bool {
	movedAny := false
	for _, constituent := range file.Constituents() {
		resolved, err := pathguard.Resolve(constituent, mountPoints)
		if err != nil {
			*errs = append(*errs, recordError(file.Name, constituent, "path not allowed"))
			continue
		}
		if _, err := fsops.Move(resolved, destDir); err != nil {
			*errs = append(*errs, recordError(file.Name, constituent, moveReason(err)))
			continue
		}
		movedAny = true
	}
	return movedAny
}

// cleanupReviewFolder removes the review folder once no recognized
// media files remain in it. Stray foreign files keep it alive.
func (s *Service) cleanupReviewFolder(dir string, videoExtensions []string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	videoExts := make(map[string]bool, len(videoExtensions))
	for _, ext := range videoExtensions {
		videoExts[strings.ToLower(ext)] = true
	}
	for _, entry := range entries {
		if entry.IsDir() {
			return false
		}
		name := entry.Name()
		if catalog.IsJPEG(name) || catalog.IsRAW(name) || videoExts[strings.ToLower(filepath.Ext(name))] {
			return false
		}
	}

	return fsops.RemoveIfEmpty(dir)
}

func recordError(name, constituent, reason string) string {
	return fmt.Sprintf("%s: %s: %s", name, filepath.Base(constituent), reason)
}

func moveReason(err error) string {
	if errors.Is(err, os.ErrNotExist) {
		return "file not found"
	}
	if errors.Is(err, os.ErrPermission) {
		return "permission denied"
	}
	return "move failed"
}

func removeReason(err error) string {
	if errors.Is(err, os.ErrNotExist) {
		return "file not found"
	}
	if errors.Is(err, os.ErrPermission) {
		return "permission denied"
	}
	return "delete failed"
}
