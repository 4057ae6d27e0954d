package http

import (
	"net/http"
	"time"

	"github.com/memoirhq/memoir-backend/internal/api/respond"
	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/services"
)

// AdminHandler serves the allow-list gated operational listing.
type AdminHandler struct {
	admin    *services.AdminService
	verifier auth.Verifier
}

func NewAdminHandler(admin *services.AdminService, verifier auth.Verifier) *AdminHandler {
	return &AdminHandler{admin: admin, verifier: verifier}
}

type adminRow struct {
	UserID      string     `json:"userId"`
	FullName    string     `json:"fullName"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	StoryStatus string     `json:"storyStatus"`
}

// ListAutobiographies handles GET /api/admin/autobiographies
func (h *AdminHandler) ListAutobiographies(w http.ResponseWriter, r *http.Request) {
	who, err := identify(h.verifier, r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	records, err := h.admin.ListAll(r.Context(), who)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	rows := make([]adminRow, 0, len(records))
	for _, rec := range records {
		status := "draft pending"
		if rec.Data.GeneratedStory != "" {
			status = "story generated"
		}
		rows = append(rows, adminRow{
			UserID:      rec.UserID,
			FullName:    rec.Data.PersonalInfo.FullName,
			UpdatedAt:   rec.Data.UpdatedAt,
			StoryStatus: status,
		})
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"records": rows, "count": len(rows)})
}
