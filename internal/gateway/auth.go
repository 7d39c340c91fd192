package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/core/ports"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	if !resp.Success || resp.Token == "" {
		return "", nil, &domain.UpstreamError{Status: http.StatusUnauthorized, Message: resp.Message}
	}
	return resp.Token, resp.User, nil
}

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type signupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (c *Client) Signup(ctx context.Context, in ports.SignupInput) error {
	var resp signupResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", signupRequest{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return &domain.UpstreamError{Status: http.StatusBadRequest, Message: resp.Message}
	}
	return nil
}

type meResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var resp meResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.User == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return resp.User, nil
}

// GoogleAuthURL returns the upstream endpoint that starts third-party
// sign-in. The upstream redirects back to the given callback URL with
// ?token=... on success or ?error=...&message=... on failure.
func (c *Client) GoogleAuthURL(redirect string) string {
	return c.ActiveBase() + "/api/auth/google?redirect=" + url.QueryEscape(redirect)
}
