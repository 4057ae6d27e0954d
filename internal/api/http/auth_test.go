package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/services"
)

// stubProvider satisfies auth.Provider with canned responses.
type stubProvider struct {
	auth.MockVerifier
	resets []string
}

func (s *stubProvider) SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error) {
	return &auth.Session{UserID: "u1", Email: email, IDToken: "id-tok"}, nil
}

func (s *stubProvider) SignUp(ctx context.Context, email, password string) (*auth.Session, error) {
	return &auth.Session{UserID: "u2", Email: email, IDToken: "id-tok-2"}, nil
}

func (s *stubProvider) SendPasswordReset(ctx context.Context, email string) error {
	s.resets = append(s.resets, email)
	return nil
}

func newAuthEnv(t *testing.T) (*testEnv, *stubProvider) {
	t.Helper()
	st := newMemStore()
	provider := &stubProvider{}
	router := NewRouter(RouterDeps{
		Store:        st,
		Stories:      services.NewAutobiographyService(st, &stubGenerator{}),
		Shares:       services.NewShareService(st, "http://localhost:3000"),
		Admin:        services.NewAdminService(st, auth.NewAdmins(nil)),
		Verifier:     provider,
		AuthProvider: provider,
	})
	return &testEnv{store: st, router: router}, provider
}

func TestSignInEndpoint(t *testing.T) {
	env, _ := newAuthEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email": "ada@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "id-tok")

	rec = env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email": "not-an-email", "password": "hunter22",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpEndpoint(t *testing.T) {
	env, _ := newAuthEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email": "new@example.com", "password": "longenough",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResetPasswordEndpoint(t *testing.T) {
	env, provider := newAuthEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/reset-password", "", map[string]string{
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"ada@example.com"}, provider.resets)
}

func TestAuthRoutesAbsentWithoutProvider(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{
		"email": "ada@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
