package story

import (
	"github.com/memoirhq/memoir-backend/internal/model"
)

// Named aggregate update operations, one per logical field group. Each takes
// the full replacement value for its group. The aggregate is always passed
// explicitly; there is no ambient shared store.

// SetPersonalInfo replaces the personal information group.
func SetPersonalInfo(d *model.AutobiographyData, p model.PersonalInfo) {
	d.PersonalInfo = p
}

// SetSection replaces the narrative section bound to the given step key.
// PersonalInfo is a structured group and has its own setter.
func SetSection(d *model.AutobiographyData, key StepKey, text string) error {
	switch key {
	case StepChildhoodMemories:
		d.ChildhoodMemories = text
	case StepEducationJourney:
		d.EducationJourney = text
	case StepCareerAchievements:
		d.CareerAchievements = text
	case StepFamilyRelationships:
		d.FamilyRelationships = text
	case StepLifeChallenges:
		d.LifeChallenges = text
	case StepDreamsBeliefs:
		d.DreamsBeliefs = text
	default:
		return NewValidationError("section", "unknown section key: "+string(key))
	}
	return nil
}

// SetCustomizations replaces the presentation metadata group.
func SetCustomizations(d *model.AutobiographyData, c model.Customizations) {
	d.Customizations = c
}

// SetWritingStyle selects the generation tone.
func SetWritingStyle(d *model.AutobiographyData, s model.WritingStyle) error {
	if !model.ValidWritingStyle(s) {
		return NewValidationError("writingStyle", "unknown writing style: "+string(s))
	}
	d.WritingStyle = s
	return nil
}

// SetGeneratedStory writes the narrative text. This is the only way the
// story field changes: an explicit regenerate or an explicit manual edit.
// Narrative sections and the story are fully decoupled once set.
func SetGeneratedStory(d *model.AutobiographyData, text string) {
	d.GeneratedStory = text
}
