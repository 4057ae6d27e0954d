package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoirhq/memoir-backend/internal/model"
)

func TestMachineNavigationClamps(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, 0, m.Current())

	m.Retreat()
	assert.Equal(t, 0, m.Current(), "retreat at first step stays put")

	for i := 0; i < len(Steps)+3; i++ {
		m.Advance()
	}
	assert.Equal(t, len(Steps)-1, m.Current(), "advance at last step stays put")

	require.NoError(t, m.JumpTo(2))
	assert.Equal(t, StepEducationJourney, m.Step().Key)

	err := m.JumpTo(len(Steps))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 2, m.Current(), "failed jump leaves position unchanged")

	err = m.JumpTo(-1)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestStepCompletePersonalInfoAnyField(t *testing.T) {
	d := model.NewAutobiography()
	assert.False(t, StepComplete(d, StepPersonalInfo))

	d.PersonalInfo.FullName = "   "
	assert.False(t, StepComplete(d, StepPersonalInfo), "whitespace only does not complete")

	d.PersonalInfo.FullName = ""
	d.PersonalInfo.Birthplace = "Lisbon"
	assert.True(t, StepComplete(d, StepPersonalInfo), "any single field completes the group")
}

func TestStepCompleteSections(t *testing.T) {
	d := model.NewAutobiography()
	for _, key := range []StepKey{
		StepChildhoodMemories, StepEducationJourney, StepCareerAchievements,
		StepFamilyRelationships, StepLifeChallenges, StepDreamsBeliefs,
	} {
		assert.False(t, StepComplete(d, key), string(key))
		require.NoError(t, SetSection(d, key, "some text"))
		assert.True(t, StepComplete(d, key), string(key))
	}
}

func TestProgressRounding(t *testing.T) {
	d := model.NewAutobiography()
	assert.Equal(t, 0, Progress(d))

	// One of seven steps rounds to 14, not 14.28 truncated weirdly.
	d.PersonalInfo.FullName = "Ada"
	assert.Equal(t, 14, Progress(d))

	require.NoError(t, SetSection(d, StepChildhoodMemories, "summer by the sea"))
	assert.Equal(t, 29, Progress(d), "2/7 rounds up to 29")

	require.NoError(t, SetSection(d, StepEducationJourney, "a"))
	require.NoError(t, SetSection(d, StepCareerAchievements, "b"))
	require.NoError(t, SetSection(d, StepFamilyRelationships, "c"))
	require.NoError(t, SetSection(d, StepLifeChallenges, "d"))
	require.NoError(t, SetSection(d, StepDreamsBeliefs, "e"))
	assert.Equal(t, 100, Progress(d))
}

func TestProgressMonotonicUnderFills(t *testing.T) {
	d := model.NewAutobiography()
	prev := Progress(d)
	fills := []func(){
		func() { d.PersonalInfo.Background = "immigrant family" },
		func() { d.ChildhoodMemories = "x" },
		func() { d.EducationJourney = "x" },
		func() { d.CareerAchievements = "x" },
		func() { d.FamilyRelationships = "x" },
		func() { d.LifeChallenges = "x" },
		func() { d.DreamsBeliefs = "x" },
	}
	for i, fill := range fills {
		fill()
		cur := Progress(d)
		assert.GreaterOrEqual(t, cur, prev, "fill %d decreased progress", i)
		prev = cur
	}
	assert.Equal(t, 100, prev)
}

func TestSetSectionUnknownKey(t *testing.T) {
	d := model.NewAutobiography()
	err := SetSection(d, StepKey("lifeStory"), "x")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSetWritingStyleValidates(t *testing.T) {
	d := model.NewAutobiography()
	require.NoError(t, SetWritingStyle(d, model.StylePoetic))
	assert.Equal(t, model.StylePoetic, d.WritingStyle)

	err := SetWritingStyle(d, model.WritingStyle("gothic"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, model.StylePoetic, d.WritingStyle, "invalid style leaves previous value")
}
