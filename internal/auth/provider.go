package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Session is the result of a successful sign-in or sign-up with the
// identity provider.
type Session struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

// Provider exposes the account actions the identity provider offers.
// Federated (Google) sign-in stays entirely in the client; the backend only
// consumes the resulting token through Verify.
type Provider interface {
	Verifier
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SendPasswordReset(ctx context.Context, email string) error
}

// RestProvider talks to a Firebase-compatible identity toolkit REST API.
type RestProvider struct {
	client *resty.Client
	apiKey string
}

// NewRestProvider constructs a provider against the given base URL
// (e.g. https://identitytoolkit.googleapis.com).
func NewRestProvider(baseURL, apiKey string) *RestProvider {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &RestProvider{client: c, apiKey: apiKey}
}

type providerError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type sessionResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

func (p *RestProvider) post(ctx context.Context, action string, body, result interface{}) error {
	var perr providerError
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetBody(body).
		SetResult(result).
		SetError(&perr).
		Post("/v1/accounts:" + action)
	if err != nil {
		return err
	}
	if resp.IsError() {
		if perr.Error.Message != "" {
			return fmt.Errorf("identity provider: %s", perr.Error.Message)
		}
		return fmt.Errorf("identity provider status %d", resp.StatusCode())
	}
	return nil
}

// Verify resolves an ID token via accounts:lookup.
func (p *RestProvider) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, ErrMissingToken
	}
	var out struct {
		Users []struct {
			LocalID string `json:"localId"`
			Email   string `json:"email"`
		} `json:"users"`
	}
	if err := p.post(ctx, "lookup", map[string]string{"idToken": idToken}, &out); err != nil {
		return nil, err
	}
	if len(out.Users) == 0 {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: out.Users[0].LocalID, Email: out.Users[0].Email}, nil
}

// SignInWithPassword authenticates with email and password.
func (p *RestProvider) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var out sessionResponse
	body := map[string]interface{}{"email": email, "password": password, "returnSecureToken": true}
	if err := p.post(ctx, "signInWithPassword", body, &out); err != nil {
		return nil, err
	}
	return &Session{UserID: out.LocalID, Email: out.Email, IDToken: out.IDToken, RefreshToken: out.RefreshToken}, nil
}

// SignUp creates a new account.
func (p *RestProvider) SignUp(ctx context.Context, email, password string) (*Session, error) {
	var out sessionResponse
	body := map[string]interface{}{"email": email, "password": password, "returnSecureToken": true}
	if err := p.post(ctx, "signUp", body, &out); err != nil {
		return nil, err
	}
	return &Session{UserID: out.LocalID, Email: out.Email, IDToken: out.IDToken, RefreshToken: out.RefreshToken}, nil
}

// SendPasswordReset triggers a password-reset email.
func (p *RestProvider) SendPasswordReset(ctx context.Context, email string) error {
	var out struct {
		Email string `json:"email"`
	}
	body := map[string]string{"requestType": "PASSWORD_RESET", "email": email}
	return p.post(ctx, "sendOobCode", body, &out)
}
