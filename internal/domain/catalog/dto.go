package catalog

// PhotoRecordResponse is the wire shape of one logical photo. The
// constituent paths come back in move/restore/delete requests to
// identify files server-side.
type PhotoRecordResponse struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	MediaType   string `json:"media_type"`
	CameraBrand string `json:"camera_brand"`
	Size        int64  `json:"size"`
	DisplayPath string `json:"display_path"`
	JPG         string `json:"jpg,omitempty"`
	RAW         string `json:"raw,omitempty"`
	Video       string `json:"video,omitempty"`
}

// PhotoRecordResponseFromEntity converts entity to response DTO
func PhotoRecordResponseFromEntity(p *PhotoRecord) *PhotoRecordResponse {
	return &PhotoRecordResponse{
		Name:        p.Name,
		Type:        string(p.Type),
		MediaType:   string(p.MediaType),
		CameraBrand: p.CameraBrand,
		Size:        p.Size,
		DisplayPath: p.DisplayPath,
		JPG:         p.JPGPath,
		RAW:         p.RAWPath,
		Video:       p.VideoPath,
	}
}

// ScanResponse for GET /api/scan
type ScanResponse struct {
	Photos []*PhotoRecordResponse `json:"photos"`
	Count  int                    `json:"count"`
}

// BrowseItem is one folder in a browse listing
type BrowseItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// BrowseResponse for GET /api/browse
type BrowseResponse struct {
	Items       []BrowseItem `json:"items"`
	CurrentPath string       `json:"current_path"`
}

// PermissionsResponse for GET /api/check-permissions
type PermissionsResponse struct {
	Exists   bool `json:"exists"`
	Readable bool `json:"readable"`
	Writable bool `json:"writable"`
}
