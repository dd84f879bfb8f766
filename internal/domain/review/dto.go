package review

// FileRefDTO mirrors the constituent paths a scan response carried
type FileRefDTO struct {
	Name  string `json:"name"`
	JPG   string `json:"jpg,omitempty"`
	RAW   string `json:"raw,omitempty"`
	Video string `json:"video,omitempty"`
}

func (d *FileRefDTO) toEntity() FileRef {
	return FileRef{Name: d.Name, JPG: d.JPG, RAW: d.RAW, Video: d.Video}
}

func toEntities(dtos []FileRefDTO) []FileRef {
	files := make([]FileRef, len(dtos))
	for i := range dtos {
		files[i] = dtos[i].toEntity()
	}
	return files
}

// MoveRequest for POST /api/move
type MoveRequest struct {
	Folder          string       `json:"folder" validate:"required,abspath"`
	Files           []FileRefDTO `json:"files" validate:"required,min=1"`
	DestinationName string       `json:"destination_name" validate:"required,max=255,foldername"`
}

// RestoreRequest for POST /api/restore. An empty selection is a valid
// no-op, so files carries no minimum.
type RestoreRequest struct {
	Folder string       `json:"folder" validate:"required,abspath"`
	Files  []FileRefDTO `json:"files"`
}

// DeleteRequest for POST /api/delete
type DeleteRequest struct {
	Folder string       `json:"folder" validate:"required,abspath"`
	Files  []FileRefDTO `json:"files" validate:"required,min=1"`
}

// DeleteJPGsRequest for POST /api/delete-jpgs
type DeleteJPGsRequest struct {
	Files []FileRefDTO `json:"files" validate:"required,min=1"`
}

// MoveResponse for POST /api/move
type MoveResponse struct {
	Success bool     `json:"success"`
	Moved   int      `json:"moved"`
	Errors  []string `json:"errors"`
}

// RestoreResponse for POST /api/restore
type RestoreResponse struct {
	Success       bool     `json:"success"`
	Restored      int      `json:"restored"`
	FolderDeleted bool     `json:"folder_deleted"`
	Errors        []string `json:"errors"`
}

// DeleteResponse for POST /api/delete
type DeleteResponse struct {
	Success       bool     `json:"success"`
	Deleted       int      `json:"deleted"`
	FolderDeleted bool     `json:"folder_deleted"`
	Errors        []string `json:"errors"`
}

// DeleteJPGsResponse for POST /api/delete-jpgs
type DeleteJPGsResponse struct {
	Success bool     `json:"success"`
	Deleted int      `json:"deleted"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}
