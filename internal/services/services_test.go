package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// fakeStore is an in-memory store.Store that records every write it receives.
type fakeStore struct {
	records map[string]*model.AutobiographyData
	shares  map[string]*model.SharedStory

	saveCalls  int
	shareCalls int

	loadErr error
	saveErr error
	listErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[string]*model.AutobiographyData),
		shares:  make(map[string]*model.SharedStory),
	}
}

func (f *fakeStore) Autobiographies() store.Autobiographies { return (*fakeAutobiographies)(f) }
func (f *fakeStore) Shares() store.Shares                   { return (*fakeShares)(f) }

type fakeAutobiographies fakeStore

func (f *fakeAutobiographies) Load(ctx context.Context, userID string) (*model.AutobiographyData, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if d, ok := f.records[userID]; ok {
		return d.Clone(), nil
	}
	return model.NewAutobiography(), nil
}

func (f *fakeAutobiographies) Save(ctx context.Context, userID string, data *model.AutobiographyData) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[userID] = data.Clone()
	return nil
}

func (f *fakeAutobiographies) ListAll(ctx context.Context) ([]*model.UserRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*model.UserRecord, 0, len(f.records))
	for id, d := range f.records {
		out = append(out, &model.UserRecord{UserID: id, Data: d.Clone()})
	}
	return out, nil
}

type fakeShares fakeStore

func (f *fakeShares) Create(ctx context.Context, ownerID string, data *model.AutobiographyData) (*model.SharedStory, error) {
	f.shareCalls++
	sh := &model.SharedStory{ShareID: uuid.New().String(), OwnerID: ownerID, Data: data.Clone()}
	f.shares[sh.ShareID] = sh
	return sh, nil
}

func (f *fakeShares) Get(ctx context.Context, shareID string) (*model.SharedStory, error) {
	if sh, ok := f.shares[shareID]; ok {
		return sh, nil
	}
	return nil, story.NewNotFoundError("share", shareID)
}

// fakeGenerator returns a canned completion or error and counts calls.
type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func savedFixture(t *testing.T, st *fakeStore, userID string) *model.AutobiographyData {
	t.Helper()
	d := model.NewAutobiography()
	d.PersonalInfo.FullName = "Ada Lovelace"
	_, err := story.AddEvent(d, story.EventFields{Title: "Born", Year: "1815"})
	require.NoError(t, err)
	st.records[userID] = d
	return d
}
