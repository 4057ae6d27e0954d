package http

import (
	"net/http"

	"github.com/memoirhq/memoir-backend/internal/api/respond"
	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/export"
	"github.com/memoirhq/memoir-backend/internal/services"
)

// ExportHandler serves the two local document projections as downloads.
type ExportHandler struct {
	stories  *services.AutobiographyService
	verifier auth.Verifier
}

func NewExportHandler(stories *services.AutobiographyService, verifier auth.Verifier) *ExportHandler {
	return &ExportHandler{stories: stories, verifier: verifier}
}

// ExportPDF handles GET /api/me/export/pdf
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	who, err := identify(h.verifier, r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	data, err := h.stories.Load(r.Context(), who.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	artifact, err := export.RenderPDF(data)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="autobiography.pdf"`)
	_, _ = w.Write(artifact)
}

// ExportDOCX handles GET /api/me/export/docx
func (h *ExportHandler) ExportDOCX(w http.ResponseWriter, r *http.Request) {
	who, err := identify(h.verifier, r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	data, err := h.stories.Load(r.Context(), who.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	artifact, err := export.RenderDOCX(data)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="autobiography.docx"`)
	_, _ = w.Write(artifact)
}
