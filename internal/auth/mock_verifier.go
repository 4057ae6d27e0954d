package auth

import (
	"context"
	"strings"
)

const (
	// LocalDevToken is the hardcoded identity token for local development only
	LocalDevToken = "tok_local_memoir_dev"
)

// MockVerifier provides a simple verifier for local development. It accepts
// the hardcoded LocalDevToken plus tokens of the form "tok:<userId>:<email>"
// so local sessions can impersonate arbitrary users.
type MockVerifier struct{}

// NewMockVerifier creates a new MockVerifier for local development
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{}
}

// Verify resolves a local development token to an identity.
func (m *MockVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == LocalDevToken {
		return &Identity{UserID: "memoir-dev", Email: "dev@memoir.local"}, nil
	}
	if parts := strings.SplitN(idToken, ":", 3); len(parts) == 3 && parts[0] == "tok" && parts[1] != "" {
		return &Identity{UserID: parts[1], Email: parts[2]}, nil
	}
	return nil, ErrInvalidToken
}
