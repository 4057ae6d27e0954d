package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/memoirhq/memoir-backend/internal/api/respond"
	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/services"
)

// ShareHandler provides HTTP transport for share snapshots.
type ShareHandler struct {
	shares   *services.ShareService
	stories  *services.AutobiographyService
	verifier auth.Verifier
}

func NewShareHandler(shares *services.ShareService, stories *services.AutobiographyService, verifier auth.Verifier) *ShareHandler {
	return &ShareHandler{shares: shares, stories: stories, verifier: verifier}
}

// CreateShare handles POST /api/me/shares. The snapshot freezes the posted
// aggregate when one is supplied, otherwise the saved one.
func (h *ShareHandler) CreateShare(w http.ResponseWriter, r *http.Request) {
	who, err := identify(h.verifier, r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}

	var req struct {
		Data *model.AutobiographyData `json:"data,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	data := req.Data
	if data == nil {
		data, err = h.stories.Load(r.Context(), who.UserID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
	}

	sh, err := h.shares.CreateShare(r.Context(), who.UserID, data)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]string{
		"shareId": sh.ShareID,
		"link":    h.shares.ShareLink(sh.ShareID),
	})
}

// GetShare handles GET /api/shares/{shareId}, the public read-only surface.
// No authentication is required; unknown identifiers render as not found.
func (h *ShareHandler) GetShare(w http.ResponseWriter, r *http.Request) {
	shareID := mux.Vars(r)["shareId"]
	sh, err := h.shares.FetchShare(r.Context(), shareID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, sh)
}
