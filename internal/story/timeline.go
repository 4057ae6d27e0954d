package story

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/memoirhq/memoir-backend/internal/model"
)

// EventFields carries the mutable fields of a timeline event for add and
// update operations. The identifier is never caller-supplied.
type EventFields struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// AddEvent validates the required fields, assigns a fresh identifier and
// appends the event to the aggregate in insertion order.
func AddEvent(d *model.AutobiographyData, f EventFields) (*model.LifeEvent, error) {
	if strings.TrimSpace(f.Title) == "" {
		return nil, NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(f.Year) == "" {
		return nil, NewValidationError("year", "year is required")
	}
	ev := model.LifeEvent{
		ID:          uuid.New().String(),
		Title:       f.Title,
		Year:        f.Year,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Notes:       f.Notes,
	}
	d.Timeline = append(d.Timeline, ev)
	return &ev, nil
}

// UpdateEvent replaces all mutable fields of the event with the given id.
// An unknown id leaves the timeline unchanged; the returned bool tells the
// caller whether a match was found.
func UpdateEvent(d *model.AutobiographyData, id string, f EventFields) (bool, error) {
	if strings.TrimSpace(f.Title) == "" {
		return false, NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(f.Year) == "" {
		return false, NewValidationError("year", "year is required")
	}
	for i := range d.Timeline {
		if d.Timeline[i].ID == id {
			d.Timeline[i] = model.LifeEvent{
				ID:          id,
				Title:       f.Title,
				Year:        f.Year,
				Description: f.Description,
				ImageURL:    f.ImageURL,
				Notes:       f.Notes,
			}
			return true, nil
		}
	}
	return false, nil
}

// RemoveEvent deletes the event with the given id. Removing an absent id is
// an idempotent no-op; the bool reports whether anything was deleted.
func RemoveEvent(d *model.AutobiographyData, id string) bool {
	for i := range d.Timeline {
		if d.Timeline[i].ID == id {
			d.Timeline = append(d.Timeline[:i], d.Timeline[i+1:]...)
			return true
		}
	}
	return false
}

// SortedTimeline returns the events ordered by ascending year using
// lexicographic string comparison, ties broken by insertion order. Years are
// free text, so "10" sorts before "9".
func SortedTimeline(d *model.AutobiographyData) []model.LifeEvent {
	out := make([]model.LifeEvent, len(d.Timeline))
	copy(out, d.Timeline)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}
