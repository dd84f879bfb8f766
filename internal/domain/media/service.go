package media

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/sgphoto/photoreview-api/internal/domain/catalog"
	"github.com/sgphoto/photoreview-api/internal/domain/settings"
	"github.com/sgphoto/photoreview-api/internal/pkg/pathguard"
)

const (
	thumbnailSize    = 300
	thumbnailQuality = 85
)

// Kind is the coarse media classification used for dispatch
type Kind int

const (
	KindJPEG Kind = iota
	KindRAW
	KindVideo
	KindOther
)

// Service serves thumbnails, full images, video files and EXIF data.
// Thumbnails are generated once and cached on disk keyed by a hash of
// the source path, like every other cache in this system: colocated,
// no eviction, safe to wipe.
type Service struct {
	settings *settings.Store
	thumbDir string
}

// NewService creates media service and ensures the thumbnail cache
// directory exists.
func NewService(store *settings.Store, thumbDir string) (*Service, error) {
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return nil, fmt.Errorf("create thumbnail directory: %w", err)
	}
	return &Service{settings: store, thumbDir: thumbDir}, nil
}

// Resolve guards a client path and classifies it.
func (s *Service) Resolve(path string) (string, Kind, error) {
	cfg := s.settings.Get()

	resolved, err := pathguard.Resolve(path, cfg.MountPoints)
	if err != nil {
		return "", KindOther, err
	}
	if _, err := os.Stat(resolved); err != nil {
		return "", KindOther, ErrNotFound
	}

	return resolved, s.kindOf(resolved, cfg.VideoExtensions), nil
}

func (s *Service) kindOf(path string, videoExtensions []string) Kind {
	switch {
	case catalog.IsJPEG(path):
		return KindJPEG
	case catalog.IsRAW(path):
		return KindRAW
	default:
		ext := strings.ToLower(filepath.Ext(path))
		for _, v := range videoExtensions {
			if strings.ToLower(v) == ext {
				return KindVideo
			}
		}
		return KindOther
	}
}

// Thumbnail returns the path of a cached 300px thumbnail for a JPEG,
// generating it on first request. RAW files and videos have no pure-Go
// decoder and report ErrUnsupportedMedia.
func (s *Service) Thumbnail(path string) (string, error) {
	resolved, kind, err := s.Resolve(path)
	if err != nil {
		return "", err
	}
	if kind != KindJPEG {
		return "", ErrUnsupportedMedia
	}

	cached := filepath.Join(s.thumbDir, pathHash(resolved)+".jpg")
	if _, err := os.Stat(cached); err == nil {
		return cached, nil
	}

	img, err := imaging.Open(resolved, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", filepath.Base(resolved), err)
	}

	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	if err := imaging.Save(thumb, cached, imaging.JPEGQuality(thumbnailQuality)); err != nil {
		os.Remove(cached)
		return "", fmt.Errorf("save thumbnail: %w", err)
	}

	return cached, nil
}

// Image resolves a full-size image for display.
func (s *Service) Image(path string) (string, error) {
	resolved, kind, err := s.Resolve(path)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindVideo:
		return "", ErrIsVideo
	case KindJPEG:
		return resolved, nil
	default:
		return "", ErrUnsupportedMedia
	}
}

// Video resolves a video file for streaming.
func (s *Service) Video(path string) (string, string, error) {
	resolved, kind, err := s.Resolve(path)
	if err != nil {
		return "", "", err
	}
	if kind != KindVideo {
		return "", "", ErrNotVideo
	}
	return resolved, videoContentType(resolved), nil
}

// ExifInfo is the camera metadata read from a JPEG
type ExifInfo struct {
	CameraMake  string
	CameraModel string
	TakenAt     string
	Width       int
	Height      int
}

// Exif reads camera metadata from a JPEG file.
func (s *Service) Exif(path string) (*ExifInfo, error) {
	resolved, kind, err := s.Resolve(path)
	if err != nil {
		return nil, err
	}
	if kind != KindJPEG {
		return nil, ErrUnsupportedMedia
	}

	f, err := os.Open(resolved)
	if err != nil {
		return nil, ErrNotFound
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, ErrNoExif
	}

	info := &ExifInfo{}
	if tm, err := x.DateTime(); err == nil {
		info.TakenAt = tm.Format("2006-01-02 15:04:05")
	}
	if mk, err := x.Get(exif.Make); err == nil {
		if v, err := mk.StringVal(); err == nil {
			info.CameraMake = strings.TrimSpace(v)
		}
	}
	if model, err := x.Get(exif.Model); err == nil {
		if v, err := model.StringVal(); err == nil {
			info.CameraModel = strings.TrimSpace(v)
		}
	}
	if width, err := x.Get(exif.PixelXDimension); err == nil {
		if v, err := width.Int(0); err == nil {
			info.Width = v
		}
	}
	if height, err := x.Get(exif.PixelYDimension); err == nil {
		if v, err := height.Int(0); err == nil {
			info.Height = v
		}
	}

	return info, nil
}

func pathHash(path string) string {
	sum := md5.Sum([]byte(path))
	return hex.EncodeToString(sum[:])
}

func videoContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".mkv":
		return "video/x-matroska"
	case ".avi":
		return "video/x-msvideo"
	default:
		return "video/mp4"
	}
}
