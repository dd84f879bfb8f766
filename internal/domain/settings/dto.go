package settings

// UpdateRequest for POST /api/config
type UpdateRequest struct {
	MountPoints        []string `json:"mount_points" validate:"required,min=1,dive,required,abspath"`
	DestinationFolder  string   `json:"destination_folder" validate:"required,max=255,foldername"`
	EnableDeleteButton bool     `json:"enable_delete_button"`
	VideoExtensions    []string `json:"video_extensions" validate:"omitempty,dive,required,startswith=."`
}

// SettingsResponse mirrors the persisted configuration on the wire
type SettingsResponse struct {
	MountPoints        []string `json:"mount_points"`
	DestinationFolder  string   `json:"destination_folder"`
	EnableDeleteButton bool     `json:"enable_delete_button"`
	VideoExtensions    []string `json:"video_extensions"`
}

// SaveResponse for POST /api/config
type SaveResponse struct {
	Success bool `json:"success"`
}
