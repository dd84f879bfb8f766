package session

// NavigateRequest is the body of POST /api/session/{id}/navigate
type NavigateRequest struct {
	Folder     string `json:"folder" validate:"required,abspath"`
	PhotoCount int    `json:"photo_count" validate:"min=0"`
}

// MarkRequest addresses a single photo by scan index
type MarkRequest struct {
	Index int `json:"index" validate:"min=0"`
}

// RangeRequest marks every photo between two anchors inclusive
type RangeRequest struct {
	From int `json:"from" validate:"min=0"`
	To   int `json:"to" validate:"min=0"`
}

// StateResponse is the full session state returned by every endpoint
type StateResponse struct {
	ID             string   `json:"id"`
	Folder         string   `json:"folder"`
	Role           string   `json:"role"`
	PhotoCount     int      `json:"photo_count"`
	Marked         []int    `json:"marked"`
	AllowedActions []string `json:"allowed_actions"`
}
