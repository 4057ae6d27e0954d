package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/memoirhq/memoir-backend/internal/api/respond"
	"github.com/memoirhq/memoir-backend/internal/api/validate"
	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/services"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// AutobiographyHandler handles aggregate load/save and the generation
// pipeline (thin transport layer).
type AutobiographyHandler struct {
	svc      *services.AutobiographyService
	verifier auth.Verifier
}

func NewAutobiographyHandler(svc *services.AutobiographyService, verifier auth.Verifier) *AutobiographyHandler {
	return &AutobiographyHandler{svc: svc, verifier: verifier}
}

// stepStatus is the per-step completion signal derived from the aggregate.
type stepStatus struct {
	story.Step
	Completed bool `json:"completed"`
}

// styleOption is the style-picker metadata served alongside the aggregate.
type styleOption struct {
	Value model.WritingStyle `json:"value"`
	Label string             `json:"label"`
}

type autobiographyResponse struct {
	Data          *model.AutobiographyData `json:"data"`
	Progress      int                      `json:"progress"`
	Steps         []stepStatus             `json:"steps"`
	WritingStyles []styleOption            `json:"writingStyles"`
}

func buildResponse(data *model.AutobiographyData) autobiographyResponse {
	steps := make([]stepStatus, 0, len(story.Steps))
	for _, s := range story.Steps {
		steps = append(steps, stepStatus{Step: s, Completed: story.StepComplete(data, s.Key)})
	}
	styles := make([]styleOption, 0, len(model.WritingStyles))
	for _, s := range model.WritingStyles {
		styles = append(styles, styleOption{Value: s, Label: model.WritingStyleLabels[s]})
	}
	return autobiographyResponse{
		Data:          data,
		Progress:      story.Progress(data),
		Steps:         steps,
		WritingStyles: styles,
	}
}

// GetAutobiography handles GET /api/me/autobiography
func (h *AutobiographyHandler) GetAutobiography(w http.ResponseWriter, r *http.Request) {
	who, err := identify(h.verifier, r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	data, err := h.svc.Load(r.Context(), who.UserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, buildResponse(data))
}

// SaveAutobiography handles PUT /api/me/autobiography
func (h *AutobiographyHandler) SaveAutobiography(w http.ResponseWriter, r *http.Request) {
	who, err := identify(h.verifier, r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}

	var data model.AutobiographyData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if data.Timeline == nil {
		data.Timeline = []model.LifeEvent{}
	}
	for _, ev := range data.Timeline {
		if err := validate.TimelineEvent(ev.Title, ev.Year, ev.Description); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}

	saved, err := h.svc.Save(r.Context(), who.UserID, &data)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, buildResponse(saved))
}

// GenerateStory handles POST /api/me/autobiography/generate.
// The draft is returned to the caller, never persisted here: writing it into
// generatedStory is the caller's explicit decision, made with its own save.
func (h *AutobiographyHandler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	who, err := identify(h.verifier, r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}

	// Generate against the posted snapshot when one is supplied, otherwise
	// against the saved aggregate.
	var req struct {
		Data *model.AutobiographyData `json:"data,omitempty"`
	}
	// An empty body is fine; only malformed JSON is rejected.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	data := req.Data
	if data == nil {
		data, err = h.svc.Load(r.Context(), who.UserID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
	}

	text, err := h.svc.Generate(r.Context(), data)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"story": text})
}
