package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// Run exercises a minimal compliance suite against a store.Store
// implementation. makeStore should provide a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	userID := "u-" + uuid.New().String()

	// Load before any save returns a default-initialized aggregate, not an error.
	empty, err := s.Autobiographies().Load(ctx, userID)
	if err != nil {
		t.Fatalf("Load (missing): %v", err)
	}
	if empty == nil || empty.WritingStyle != model.DefaultWritingStyle || len(empty.Timeline) != 0 {
		t.Fatalf("Load (missing): expected default aggregate, got %+v", empty)
	}

	// Save then reload the whole document.
	now := time.Now().UTC().Truncate(time.Second)
	data := model.NewAutobiography()
	data.PersonalInfo.FullName = "Ada"
	data.ChildhoodMemories = "Grew up near the sea."
	data.Timeline = []model.LifeEvent{
		{ID: uuid.New().String(), Title: "Started university", Year: "1994"},
	}
	data.GeneratedStory = "Chapter one."
	data.UpdatedAt = &now
	if err := s.Autobiographies().Save(ctx, userID, data); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Autobiographies().Load(ctx, userID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.PersonalInfo.FullName != "Ada" || got.GeneratedStory != "Chapter one." {
		t.Fatalf("Load: round-trip mismatch, got %+v", got)
	}
	if len(got.Timeline) != 1 || got.Timeline[0].Year != "1994" {
		t.Fatalf("Load: timeline mismatch, got %+v", got.Timeline)
	}

	// Second save fully overwrites (last-writer-wins).
	data.GeneratedStory = "Chapter two."
	if err := s.Autobiographies().Save(ctx, userID, data); err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}
	got, err = s.Autobiographies().Load(ctx, userID)
	if err != nil || got.GeneratedStory != "Chapter two." {
		t.Fatalf("Load after overwrite: got=%+v err=%v", got, err)
	}

	// ListAll includes the saved record.
	records, err := s.Autobiographies().ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	found := false
	for _, r := range records {
		if r.UserID == userID {
			found = true
		}
	}
	if !found {
		t.Fatalf("ListAll: record for %s missing", userID)
	}

	// Shares: create freezes a copy, get round-trips, unknown id is NotFound.
	sh, err := s.Shares().Create(ctx, userID, data)
	if err != nil {
		t.Fatalf("Shares.Create: %v", err)
	}
	if sh.ShareID == "" || sh.ShareID == userID {
		t.Fatalf("Shares.Create: bad shareId %q", sh.ShareID)
	}
	// Mutating the aggregate after sharing must not leak into the snapshot.
	data.GeneratedStory = "Rewritten."
	fetched, err := s.Shares().Get(ctx, sh.ShareID)
	if err != nil {
		t.Fatalf("Shares.Get: %v", err)
	}
	if fetched.OwnerID != userID || fetched.Data.GeneratedStory != "Chapter two." {
		t.Fatalf("Shares.Get: snapshot mismatch, got %+v", fetched.Data.GeneratedStory)
	}

	if _, err := s.Shares().Get(ctx, "no-such-share"); !story.IsNotFoundError(err) {
		t.Fatalf("Shares.Get unknown: expected NotFoundError, got %v", err)
	}
}
