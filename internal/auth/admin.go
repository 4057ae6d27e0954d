package auth

import "strings"

// Admins is a flat allow-list of email addresses granted the administrative
// surface. It is a capability check, not a role graph.
type Admins map[string]struct{}

// NewAdmins builds the allow-list from configured emails. Entries are
// trimmed and compared case-insensitively; blanks are dropped.
func NewAdmins(emails []string) Admins {
	a := make(Admins, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			a[e] = struct{}{}
		}
	}
	return a
}

// Allowed reports whether the email is on the allow-list.
func (a Admins) Allowed(email string) bool {
	_, ok := a[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
