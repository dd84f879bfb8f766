package media

// ExifResponse is camera metadata for GET /api/exif
type ExifResponse struct {
	CameraMake  string `json:"camera_make,omitempty"`
	CameraModel string `json:"camera_model,omitempty"`
	TakenAt     string `json:"taken_at,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}
