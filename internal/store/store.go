package store

import (
	"context"

	"github.com/memoirhq/memoir-backend/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Autobiographies() Autobiographies
	Shares() Shares
}

// Autobiographies persists one aggregate per user identity as a whole
// document. Saves are last-writer-wins at aggregate granularity.
type Autobiographies interface {
	// Load returns the user's aggregate, or a default-initialized empty
	// aggregate when none has been saved yet. "Not found" is never an error.
	Load(ctx context.Context, userID string) (*model.AutobiographyData, error)
	// Save overwrites the whole persisted record for the user.
	Save(ctx context.Context, userID string, data *model.AutobiographyData) error
	// ListAll is an administrative bulk read across all users.
	ListAll(ctx context.Context) ([]*model.UserRecord, error)
}

// Shares persists immutable share snapshots keyed by an opaque identifier.
// Snapshots are created once and never mutated.
type Shares interface {
	Create(ctx context.Context, ownerID string, data *model.AutobiographyData) (*model.SharedStory, error)
	// Get returns the snapshot or a story.NotFoundError for unknown ids.
	Get(ctx context.Context, shareID string) (*model.SharedStory, error)
}
