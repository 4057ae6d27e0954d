package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// ShareService creates and resolves immutable share snapshots.
type ShareService struct {
	store   store.Store
	baseURL string
}

func NewShareService(s store.Store, baseURL string) *ShareService {
	return &ShareService{store: s, baseURL: strings.TrimRight(baseURL, "/")}
}

// CreateShare freezes the aggregate into a new SharedStory. Validation runs
// before any persistence call: an empty story fails without touching the
// store, and a missing owner identity is an authorization failure.
func (s *ShareService) CreateShare(ctx context.Context, ownerID string, data *model.AutobiographyData) (*model.SharedStory, error) {
	if ownerID == "" {
		return nil, story.NewAuthorizationError("sign in to create a share link")
	}
	if data == nil || strings.TrimSpace(data.GeneratedStory) == "" {
		return nil, story.NewValidationError("generatedStory", "generate or write a story before sharing")
	}
	sh, err := s.store.Shares().Create(ctx, ownerID, data)
	if err != nil {
		return nil, story.NewExternalServiceError("record store", err)
	}
	return sh, nil
}

// ShareLink builds the fully-qualified read-only link for a share.
func (s *ShareService) ShareLink(shareID string) string {
	return fmt.Sprintf("%s/share/%s", s.baseURL, shareID)
}

// FetchShare resolves a share snapshot. Unknown or empty identifiers map to
// NotFound, which callers render as a distinct "unavailable" state.
func (s *ShareService) FetchShare(ctx context.Context, shareID string) (*model.SharedStory, error) {
	if shareID == "" {
		return nil, story.NewNotFoundError("share", "missing share id")
	}
	sh, err := s.store.Shares().Get(ctx, shareID)
	if err != nil {
		if story.IsNotFoundError(err) {
			return nil, err
		}
		return nil, story.NewExternalServiceError("record store", err)
	}
	return sh, nil
}
