package model

import "time"

// WritingStyle selects the tone of the generated narrative.
type WritingStyle string

const (
	StyleEmotional    WritingStyle = "emotional"
	StyleProfessional WritingStyle = "professional"
	StyleSimple       WritingStyle = "simple"
	StylePoetic       WritingStyle = "poetic"
)

// DefaultWritingStyle is used for fresh aggregates.
const DefaultWritingStyle = StyleEmotional

// WritingStyleLabels maps each style to its user-facing label.
var WritingStyleLabels = map[WritingStyle]string{
	StyleEmotional:    "Emotional & Heartfelt",
	StyleProfessional: "Professional & Formal",
	StyleSimple:       "Simple & Clear",
	StylePoetic:       "Poetic & Lyrical",
}

// WritingStyles lists the supported styles in display order.
var WritingStyles = []WritingStyle{StyleEmotional, StyleProfessional, StyleSimple, StylePoetic}

// ValidWritingStyle reports whether s is one of the supported styles.
func ValidWritingStyle(s WritingStyle) bool {
	_, ok := WritingStyleLabels[s]
	return ok
}

// FontFamily selects one of three fixed presentation fonts.
type FontFamily string

const (
	FontSerif FontFamily = "serif"
	FontSans  FontFamily = "sans"
	FontMono  FontFamily = "mono"
)

// PersonalInfo holds the foundational facts about the author.
// All fields are plain text and independently optional.
type PersonalInfo struct {
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Birthplace  string `json:"birthplace"`
	Background  string `json:"background"`
}

// LifeEvent is one discrete milestone on the timeline.
// Display order is always derived by sorting on Year; storage order is
// insertion order.
type LifeEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Customizations carries presentation metadata. It has no effect on
// generation beyond the title/subtitle/quote lines in the prompt.
type Customizations struct {
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Quote       string     `json:"quote"`
	FontFamily  FontFamily `json:"fontFamily"`
	AccentColor string     `json:"accentColor"`
	CoverImage  string     `json:"coverImage,omitempty"`
}

// AutobiographyData is the root aggregate for one user's story.
// Single-writer: the owning user edits through one session at a time and
// the latest explicit save wins at whole-aggregate granularity.
type AutobiographyData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`

	ChildhoodMemories   string `json:"childhoodMemories"`
	EducationJourney    string `json:"educationJourney"`
	CareerAchievements  string `json:"careerAchievements"`
	FamilyRelationships string `json:"familyRelationships"`
	LifeChallenges      string `json:"lifeChallenges"`
	DreamsBeliefs       string `json:"dreamsBeliefs"`

	Timeline       []LifeEvent    `json:"timeline"`
	Customizations Customizations `json:"customizations"`
	WritingStyle   WritingStyle   `json:"writingStyle"`
	GeneratedStory string         `json:"generatedStory"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

// NewAutobiography returns a default-initialized empty aggregate. Load paths
// return this for users with no saved record; "not found" is never an error.
func NewAutobiography() *AutobiographyData {
	return &AutobiographyData{
		Timeline: []LifeEvent{},
		Customizations: Customizations{
			Title:       "My Autobiography",
			Subtitle:    "A life in chapters",
			FontFamily:  FontSerif,
			AccentColor: "#38bdf8",
		},
		WritingStyle: DefaultWritingStyle,
	}
}

// Clone returns a deep copy of the aggregate. Share snapshots freeze a clone
// so later edits never leak into an existing share.
func (d *AutobiographyData) Clone() *AutobiographyData {
	out := *d
	out.Timeline = make([]LifeEvent, len(d.Timeline))
	copy(out.Timeline, d.Timeline)
	if d.UpdatedAt != nil {
		ts := *d.UpdatedAt
		out.UpdatedAt = &ts
	}
	return &out
}

// SharedStory is an immutable public projection of an aggregate at share
// time. A new share action always creates a new ShareID; shares are never
// updated in place.
type SharedStory struct {
	ShareID      string             `json:"shareId"`
	OwnerID      string             `json:"ownerId"`
	Data         *AutobiographyData `json:"data"`
	CreationTime time.Time          `json:"creationTime"`
}

// UserRecord is one row of the administrative bulk listing.
type UserRecord struct {
	UserID string             `json:"userId"`
	Data   *AutobiographyData `json:"data"`
}
