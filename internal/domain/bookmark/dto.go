package bookmark

// CreateRequest is the body of POST /api/bookmarks
type CreateRequest struct {
	Name string `json:"name" validate:"max=128"`
	Path string `json:"path" validate:"required,abspath"`
}

// ListResponse wraps the bookmark collection
type ListResponse struct {
	Bookmarks []Bookmark `json:"bookmarks"`
	Count     int        `json:"count"`
}
