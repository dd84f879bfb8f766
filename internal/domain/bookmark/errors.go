package bookmark

import "errors"

var (
	ErrNotFound  = errors.New("bookmark not found")
	ErrDuplicate = errors.New("folder is already bookmarked")
)
