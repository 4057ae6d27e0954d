package auth

import (
	"context"
)

// Identity describes the authenticated user for the current request, as
// established by the external identity provider.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Verifier validates a bearer token and resolves it to an identity.
// Sign-in, sign-up and password reset happen against the identity provider;
// the backend only ever verifies tokens it is handed.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}
