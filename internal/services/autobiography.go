package services

import (
	"context"
	"time"

	"github.com/memoirhq/memoir-backend/internal/generator"
	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// AutobiographyService orchestrates load/save and the generation pipeline
// for one user's aggregate.
type AutobiographyService struct {
	store store.Store
	gen   generator.Generator
}

func NewAutobiographyService(s store.Store, g generator.Generator) *AutobiographyService {
	return &AutobiographyService{store: s, gen: g}
}

// Load returns the user's aggregate, default-initialized when no record
// exists yet.
func (s *AutobiographyService) Load(ctx context.Context, userID string) (*model.AutobiographyData, error) {
	data, err := s.store.Autobiographies().Load(ctx, userID)
	if err != nil {
		return nil, story.NewExternalServiceError("record store", err)
	}
	return data, nil
}

// Save persists the whole aggregate, stamping UpdatedAt. The timestamp is
// set only here, at explicit save time, never implicitly.
func (s *AutobiographyService) Save(ctx context.Context, userID string, data *model.AutobiographyData) (*model.AutobiographyData, error) {
	if err := validateAggregate(data); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	data.UpdatedAt = &now
	if err := s.store.Autobiographies().Save(ctx, userID, data); err != nil {
		return nil, story.NewExternalServiceError("record store", err)
	}
	return data, nil
}

// Generate assembles the prompt from a snapshot of the aggregate and issues
// exactly one generation call. The returned draft is advisory: this method
// never writes it into the aggregate, and on failure the caller's prior
// generatedStory is untouched by construction.
func (s *AutobiographyService) Generate(ctx context.Context, data *model.AutobiographyData) (string, error) {
	prompt := story.BuildPrompt(data)
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", story.NewExternalServiceError("generation service", err)
	}
	if text == "" {
		return story.FallbackStory, nil
	}
	return text, nil
}

func validateAggregate(data *model.AutobiographyData) error {
	if data == nil {
		return story.NewValidationError("data", "missing autobiography data")
	}
	if !model.ValidWritingStyle(data.WritingStyle) {
		return story.NewValidationError("writingStyle", "unknown writing style: "+string(data.WritingStyle))
	}
	seen := make(map[string]struct{}, len(data.Timeline))
	for _, ev := range data.Timeline {
		if ev.ID == "" {
			return story.NewValidationError("timeline", "event id is required")
		}
		if _, dup := seen[ev.ID]; dup {
			return story.NewValidationError("timeline", "duplicate event id: "+ev.ID)
		}
		seen[ev.ID] = struct{}{}
	}
	return nil
}
