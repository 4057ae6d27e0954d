package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Year accepts free text such as "Summer 1987". It must be present and
// reasonably short; the timeline compares it lexicographically.
func Year(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("year is required")
	}
	if len(v) > 32 {
		return fmt.Errorf("year exceeds 32 characters")
	}
	return nil
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// -------- Request specific helpers ----------

// TimelineEvent validates input for adding or updating a life event.
func TimelineEvent(title, year, description string) error {
	if err := NonEmpty("title", title); err != nil {
		return err
	}
	if err := MaxLen("title", title, 200); err != nil {
		return err
	}
	if err := Year(year); err != nil {
		return err
	}
	return MaxLen("description", description, 2000)
}

// SignIn validates credentials before forwarding them to the identity
// provider.
func SignIn(email, password string) error {
	if err := Email(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
