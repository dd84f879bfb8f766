package catalog

import "errors"

var (
	ErrNotFound         = errors.New("path does not exist")
	ErrNotDirectory     = errors.New("path is not a directory")
	ErrPermissionDenied = errors.New("permission denied")
)
