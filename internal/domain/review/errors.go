package review

import "errors"

var (
	ErrNotReviewFolder = errors.New("folder is not the review folder")
	ErrDeleteDisabled  = errors.New("permanent deletion is disabled in configuration")
)
