package catalog

import (
	"path/filepath"
	"strings"
)

// RecordType classifies a logical photo by which constituents exist.
type RecordType string

const (
	TypeJPGRaw  RecordType = "jpg+raw"
	TypeJPGOnly RecordType = "jpg_only"
	TypeRAWOnly RecordType = "raw_only"
	TypeVideo   RecordType = "video"
)

// MediaType distinguishes stills from footage for the UI.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// PhotoRecord is one logical photo as shown to the user. Type is fully
// determined by which constituent paths are set.
type PhotoRecord struct {
	Name        string
	Type        RecordType
	MediaType   MediaType
	JPGPath     string
	RAWPath     string
	VideoPath   string
	Size        int64
	CameraBrand string
	DisplayPath string
}

// Constituents returns the physical files making up the record.
func (p *PhotoRecord) Constituents() []string {
	var out []string
	for _, path := range []string{p.JPGPath, p.RAWPath, p.VideoPath} {
		if path != "" {
			out = append(out, path)
		}
	}
	return out
}

var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

var rawExtensions = map[string]bool{
	".cr2": true,
	".cr3": true,
	".arw": true,
	".nef": true,
	".pef": true,
	".dng": true,
	".raf": true,
	".orf": true,
}

var cameraBrands = map[string]string{
	".cr2": "Canon",
	".cr3": "Canon",
	".arw": "Sony",
	".nef": "Nikon",
	".pef": "Pentax",
	".dng": "DJI",
	".raf": "Fuji",
	".orf": "Olympus",
}

// IsJPEG reports whether filename has a JPEG extension.
func IsJPEG(filename string) bool {
	return jpegExtensions[strings.ToLower(filepath.Ext(filename))]
}

// IsRAW reports whether filename has a recognized RAW extension.
func IsRAW(filename string) bool {
	return rawExtensions[strings.ToLower(filepath.Ext(filename))]
}

// CameraBrand maps a RAW extension to the camera vendor, or "".
func CameraBrand(filename string) string {
	return cameraBrands[strings.ToLower(filepath.Ext(filename))]
}

// pairingKey associates a JPEG with its RAW sibling: the filename with
// extension stripped, compared case-insensitively.
func pairingKey(filename string) string {
	return strings.ToLower(strings.TrimSuffix(filename, filepath.Ext(filename)))
}

func baseName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
