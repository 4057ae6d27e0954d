package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// TestAuthoringScenario walks the full authoring flow: fill the form step by
// step, generate a draft, accept it with an explicit save, then share.
func TestAuthoringScenario(t *testing.T) {
	ctx := context.Background()
	st := newFakeStore()
	gen := &fakeGenerator{text: "The finished narrative."}
	stories := NewAutobiographyService(st, gen)
	shares := NewShareService(st, "https://memoir.example.com")

	d, err := stories.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, story.Progress(d))

	story.SetPersonalInfo(d, model.PersonalInfo{FullName: "Ada Lovelace", Birthplace: "London"})
	m := story.NewMachine()
	for m.Current() < len(story.Steps)-1 {
		m.Advance()
		require.NoError(t, story.SetSection(d, m.Step().Key, "text for "+string(m.Step().Key)))
	}
	_, err = story.AddEvent(d, story.EventFields{Title: "First program", Year: "1843"})
	require.NoError(t, err)
	assert.Equal(t, 100, story.Progress(d))

	// Sharing before any story exists is rejected.
	_, err = shares.CreateShare(ctx, "u1", d)
	require.Error(t, err)
	assert.True(t, story.IsValidationError(err))

	draft, err := stories.Generate(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, "The finished narrative.", draft)

	// Accepting the draft is an explicit write followed by a save.
	story.SetGeneratedStory(d, draft)
	saved, err := stories.Save(ctx, "u1", d)
	require.NoError(t, err)
	require.NotNil(t, saved.UpdatedAt)

	sh, err := shares.CreateShare(ctx, "u1", saved)
	require.NoError(t, err)
	got, err := shares.FetchShare(ctx, sh.ShareID)
	require.NoError(t, err)
	assert.Equal(t, "The finished narrative.", got.Data.GeneratedStory)
	assert.Equal(t, "https://memoir.example.com/share/"+sh.ShareID, shares.ShareLink(sh.ShareID))
}
