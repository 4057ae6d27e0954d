package story

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/memoirhq/memoir-backend/internal/model"
)

// FallbackStory substitutes for an empty or missing completion from the
// generation service.
const FallbackStory = "We couldn't generate a story at this time. Please try again later."

// BuildPrompt deterministically renders the aggregate into the single text
// block sent to the generation service. Identical input yields byte-identical
// output. Timeline events render in storage order; the sorted display order
// is a presentation concern only.
func BuildPrompt(d *model.AutobiographyData) string {
	var b strings.Builder

	b.WriteString("You are a gifted biographical writer. Craft a compelling autobiography chapter for the following individual.\n\n")
	fmt.Fprintf(&b, "Tone preference: %s.\n\n", d.WritingStyle)

	b.WriteString("Customization preferences:\n")
	fmt.Fprintf(&b, "- Title: %s\n", d.Customizations.Title)
	fmt.Fprintf(&b, "- Subtitle: %s\n", d.Customizations.Subtitle)
	fmt.Fprintf(&b, "- Favorite quote: %s\n\n", d.Customizations.Quote)

	b.WriteString("Personal Information:\n")
	// Field-labeled JSON, two-space indented. Struct field order is fixed,
	// so the rendering is stable.
	info, _ := json.MarshalIndent(d.PersonalInfo, "", "  ")
	b.Write(info)
	b.WriteString("\n\n")

	sections := []struct {
		heading string
		text    string
	}{
		{"Childhood Memories", d.ChildhoodMemories},
		{"Education Journey", d.EducationJourney},
		{"Career & Achievements", d.CareerAchievements},
		{"Family & Relationships", d.FamilyRelationships},
		{"Life Challenges & Lessons", d.LifeChallenges},
		{"Dreams, Beliefs & Future Goals", d.DreamsBeliefs},
	}
	for _, s := range sections {
		fmt.Fprintf(&b, "%s:\n%s\n\n", s.heading, s.text)
	}

	b.WriteString("Timeline Events:\n")
	for i, ev := range d.Timeline {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s - %s: %s. Notes: %s. Image: %s",
			ev.Year, ev.Title, ev.Description, orElse(ev.Notes, "none"), orElse(ev.ImageURL, "n/a"))
	}
	b.WriteString("\n\n")

	b.WriteString("Write in a way that feels cohesive, immersive, and faithful to the provided details. Include section headings that align with each stage of life, and close with an inspiring outlook toward the future. Keep the entire narrative under 1500 words.\n")

	return b.String()
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
