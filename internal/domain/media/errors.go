package media

import "errors"

var (
	ErrNotFound         = errors.New("file does not exist")
	ErrUnsupportedMedia = errors.New("no decoder available for this file type")
	ErrNotVideo         = errors.New("not a video file")
	ErrIsVideo          = errors.New("use the video endpoint for videos")
	ErrNoExif           = errors.New("no EXIF data")
)
