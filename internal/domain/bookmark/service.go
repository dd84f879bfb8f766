package bookmark

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sgphoto/photoreview-api/internal/domain/settings"
	"github.com/sgphoto/photoreview-api/internal/pkg/pathguard"
)

// Service implements bookmark business logic
type Service struct {
	repo     *Repository
	settings *settings.Store
}

// NewService creates bookmark service
func NewService(repo *Repository, store *settings.Store) *Service {
	return &Service{repo: repo, settings: store}
}

// List returns all saved bookmarks
func (s *Service) List(ctx context.Context) ([]Bookmark, error) {
	return s.repo.List(ctx)
}

// Create bookmarks a folder. The folder must exist under a configured
// mount point.
func (s *Service) Create(ctx context.Context, name, path string) (*Bookmark, error) {
	cfg := s.settings.Get()

	resolved, err := pathguard.Resolve(path, cfg.MountPoints)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return nil, ErrNotFound
	}

	if name == "" {
		name = filepath.Base(resolved)
	}

	b := Bookmark{
		ID:        uuid.New().String(),
		Name:      name,
		Path:      resolved,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes a bookmark
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
