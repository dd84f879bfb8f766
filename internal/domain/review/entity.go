package review

import "path/filepath"

// Role tags a folder as a normal working folder or the designated
// review folder. It is computed once per navigation from the folder's
// basename, never cached across navigations.
type Role string

const (
	RoleNormal Role = "normal"
	RoleReview Role = "review"
)

// RoleFor classifies a folder by basename equality with the configured
// destination folder name. Case-sensitive.
func RoleFor(path, destinationName string) Role {
	if IsReviewFolder(path, destinationName) {
		return RoleReview
	}
	return RoleNormal
}

// IsReviewFolder reports whether path is a review folder.
func IsReviewFolder(path, destinationName string) bool {
	return destinationName != "" && filepath.Base(path) == destinationName
}

// FileRef identifies one logical photo's constituents in a mutation
// request. Paths are the absolute constituent paths a prior scan
// returned.
type FileRef struct {
	Name  string
	JPG   string
	RAW   string
	Video string
}

// Constituents returns the non-empty constituent paths.
func (f *FileRef) Constituents() []string {
	var out []string
	for _, path := range []string{f.JPG, f.RAW, f.Video} {
		if path != "" {
			out = append(out, path)
		}
	}
	return out
}
