package settings

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sgphoto/photoreview-api/internal/pkg/response"
	"github.com/sgphoto/photoreview-api/internal/pkg/validator"
)

// Handler handles configuration HTTP requests
type Handler struct {
	store *Store
}

// NewHandler creates settings handler
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Get handles GET /api/config
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.store.Get()
	response.OK(w, SettingsResponse{
		MountPoints:        s.MountPoints,
		DestinationFolder:  s.DestinationFolder,
		EnableDeleteButton: s.EnableDeleteButton,
		VideoExtensions:    s.VideoExtensions,
	})
}

// Update handles POST /api/config
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	next := Settings{
		MountPoints:        req.MountPoints,
		DestinationFolder:  req.DestinationFolder,
		EnableDeleteButton: req.EnableDeleteButton,
		VideoExtensions:    req.VideoExtensions,
	}

	if err := h.store.Save(next); err != nil {
		log.Error().Err(err).Msg("Failed to save settings")
		response.Error(w, http.StatusInternalServerError, "Failed to save config")
		return
	}

	response.OK(w, SaveResponse{Success: true})
}
