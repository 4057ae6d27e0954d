package http

import (
	"encoding/json"
	"net/http"

	"github.com/memoirhq/memoir-backend/internal/api/respond"
	"github.com/memoirhq/memoir-backend/internal/api/validate"
	"github.com/memoirhq/memoir-backend/internal/auth"
)

// AuthHandler forwards account actions to the external identity provider.
// Federated sign-in never touches this surface; clients hand the resulting
// token straight to the authenticated endpoints.
type AuthHandler struct {
	provider auth.Provider
}

func NewAuthHandler(provider auth.Provider) *AuthHandler {
	return &AuthHandler{provider: provider}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn handles POST /api/auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.SignIn(req.Email, req.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	sess, err := h.provider.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, sess)
}

// SignUp handles POST /api/auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.SignIn(req.Email, req.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	sess, err := h.provider.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, sess)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Email(req.Email); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := h.provider.SendPasswordReset(r.Context(), req.Email); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "reset email sent"})
}
