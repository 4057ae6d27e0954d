package http

import (
	"net/http"

	"github.com/memoirhq/memoir-backend/internal/api/respond"
	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// identify resolves the request's bearer token to an identity. A nil
// verifier means authentication is not wired, which is a setup error.
func identify(v auth.Verifier, r *http.Request) (*auth.Identity, error) {
	token, err := auth.ExtractBearerToken(r)
	if err != nil {
		return nil, err
	}
	return v.Verify(r.Context(), token)
}

// writeDomainError maps the domain error taxonomy to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case story.IsValidationError(err):
		respond.WriteBadRequest(w, err.Error())
	case story.IsAuthorizationError(err):
		respond.WriteForbidden(w, err.Error())
	case story.IsNotFoundError(err):
		respond.WriteNotFound(w, err.Error())
	case story.IsExternalServiceError(err):
		respond.WriteBadGateway(w, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
