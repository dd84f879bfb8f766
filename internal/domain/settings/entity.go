package settings

// Settings is the persisted application configuration. It is loaded
// once at startup and rewritten wholesale on every save.
type Settings struct {
	MountPoints        []string `json:"mount_points"`
	DestinationFolder  string   `json:"destination_folder"`
	EnableDeleteButton bool     `json:"enable_delete_button"`
	VideoExtensions    []string `json:"video_extensions"`
}

// Defaults returns the out-of-the-box configuration.
func Defaults() Settings {
	return Settings{
		MountPoints:        []string{"/mnt/nvme", "/data1"},
		DestinationFolder:  "para-revision",
		EnableDeleteButton: false,
		VideoExtensions:    []string{".mp4", ".mov", ".mkv", ".avi", ".m4v"},
	}
}

// clone returns a deep copy so callers can never mutate store state.
func (s Settings) clone() Settings {
	out := s
	out.MountPoints = append([]string(nil), s.MountPoints...)
	out.VideoExtensions = append([]string(nil), s.VideoExtensions...)
	return out
}
