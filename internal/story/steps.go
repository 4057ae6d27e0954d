package story

import (
	"math"
	"strings"

	"github.com/memoirhq/memoir-backend/internal/model"
)

// StepKey identifies one stage of the guided authoring sequence.
type StepKey string

const (
	StepPersonalInfo        StepKey = "personalInfo"
	StepChildhoodMemories   StepKey = "childhoodMemories"
	StepEducationJourney    StepKey = "educationJourney"
	StepCareerAchievements  StepKey = "careerAchievements"
	StepFamilyRelationships StepKey = "familyRelationships"
	StepLifeChallenges      StepKey = "lifeChallenges"
	StepDreamsBeliefs       StepKey = "dreamsBeliefs"
)

// Step describes one authoring stage and the aggregate field it is bound to.
type Step struct {
	Key         StepKey `json:"key"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// Steps is the fixed ordered authoring sequence. Random access between steps
// is allowed; completion never gates navigation.
var Steps = []Step{
	{StepPersonalInfo, "Personal Information", "Lay the foundation with your origins and background."},
	{StepChildhoodMemories, "Childhood Memories", "Capture the stories that shaped your early years."},
	{StepEducationJourney, "Education Journey", "Document the lessons, mentors, and discoveries."},
	{StepCareerAchievements, "Career & Achievements", "Highlight milestones, accolades, and moments of pride."},
	{StepFamilyRelationships, "Family & Relationships", "Celebrate the people who define your inner circle."},
	{StepLifeChallenges, "Life Challenges & Lessons", "Reflect on hurdles, resilience, and hard-won insights."},
	{StepDreamsBeliefs, "Dreams, Beliefs & Future Goals", "Describe the legacy you are building and what comes next."},
}

// Machine tracks the current position in the step sequence. It carries no
// data of its own; completion and progress are derived from the aggregate on
// demand.
type Machine struct {
	idx int
}

// NewMachine returns a machine positioned at the first step.
func NewMachine() *Machine { return &Machine{} }

// Current returns the active step index.
func (m *Machine) Current() int { return m.idx }

// Step returns the active step definition.
func (m *Machine) Step() Step { return Steps[m.idx] }

// Advance moves one step forward, clamping at the last step.
func (m *Machine) Advance() {
	if m.idx < len(Steps)-1 {
		m.idx++
	}
}

// Retreat moves one step back, clamping at the first step.
func (m *Machine) Retreat() {
	if m.idx > 0 {
		m.idx--
	}
}

// JumpTo moves directly to step k. Out-of-range indexes are rejected.
func (m *Machine) JumpTo(k int) error {
	if k < 0 || k >= len(Steps) {
		return NewValidationError("step", "step index out of range")
	}
	m.idx = k
	return nil
}

// StepComplete reports whether the step's bound field(s) hold non-empty
// trimmed text. PersonalInfo counts as complete when any of its fields is
// filled.
func StepComplete(d *model.AutobiographyData, key StepKey) bool {
	switch key {
	case StepPersonalInfo:
		p := d.PersonalInfo
		for _, v := range []string{p.FullName, p.DateOfBirth, p.Birthplace, p.Background} {
			if strings.TrimSpace(v) != "" {
				return true
			}
		}
		return false
	case StepChildhoodMemories:
		return strings.TrimSpace(d.ChildhoodMemories) != ""
	case StepEducationJourney:
		return strings.TrimSpace(d.EducationJourney) != ""
	case StepCareerAchievements:
		return strings.TrimSpace(d.CareerAchievements) != ""
	case StepFamilyRelationships:
		return strings.TrimSpace(d.FamilyRelationships) != ""
	case StepLifeChallenges:
		return strings.TrimSpace(d.LifeChallenges) != ""
	case StepDreamsBeliefs:
		return strings.TrimSpace(d.DreamsBeliefs) != ""
	default:
		return false
	}
}

// Progress returns the completion percentage, a pure function of the
// aggregate: round(100 * completed / total). It is recomputed on every call
// and never cached.
func Progress(d *model.AutobiographyData) int {
	completed := 0
	for _, s := range Steps {
		if StepComplete(d, s.Key) {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(Steps))))
}
