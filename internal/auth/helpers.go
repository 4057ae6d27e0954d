package auth

import (
	"net/http"
	"strings"
)

// ExtractBearerToken extracts the identity token from the Authorization
// header. Returns the token or an error if missing/invalid format.
func ExtractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	// Expect "Bearer <token>" format
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}
