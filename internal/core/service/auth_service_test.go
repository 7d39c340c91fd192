package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub gateway
// ---------------------------------------------------------------------------

type stubAuthGateway struct {
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
	signupFn func(ctx context.Context, in ports.SignupInput) error
	meFn     func(ctx context.Context, token string) (*domain.User, error)
}

func (g *stubAuthGateway) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return g.loginFn(ctx, email, password)
}

func (g *stubAuthGateway) Signup(ctx context.Context, in ports.SignupInput) error {
	return g.signupFn(ctx, in)
}

func (g *stubAuthGateway) Me(ctx context.Context, token string) (*domain.User, error) {
	return g.meFn(ctx, token)
}

func (g *stubAuthGateway) GoogleAuthURL(redirect string) string {
	return "https://upstream.example/api/auth/google?redirect=" + redirect
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// ---------------------------------------------------------------------------
// Login / Signup / CompleteOAuth
// ---------------------------------------------------------------------------

func TestAuthService_Login_EmptyCredentialsRejectedLocally(t *testing.T) {
	called := false
	gw := &stubAuthGateway{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			called = true
			return "", nil, nil
		},
	}
	svc := NewAuthService(gw, discardLogger)

	_, _, err := svc.Login(context.Background(), "", "secret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if called {
		t.Fatal("gateway must not be called with empty credentials")
	}
}

func TestAuthService_Login_RelaysTokenAndUser(t *testing.T) {
	gw := &stubAuthGateway{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "a@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "tok-1", &domain.User{Email: email, FirstName: "Ada"}, nil
		},
	}
	svc := NewAuthService(gw, discardLogger)

	token, user, err := svc.Login(context.Background(), "a@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok-1" || user.FirstName != "Ada" {
		t.Fatalf("unexpected result: %s %+v", token, user)
	}
}

func TestAuthService_Signup_RequiresAllFields(t *testing.T) {
	gw := &stubAuthGateway{
		signupFn: func(context.Context, ports.SignupInput) error {
			t.Fatal("gateway must not be called")
			return nil
		},
	}
	svc := NewAuthService(gw, discardLogger)

	err := svc.Signup(context.Background(), ports.SignupInput{Email: "a@example.com", Password: "secret"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_CompleteOAuth_FetchesUser(t *testing.T) {
	gw := &stubAuthGateway{
		meFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "tok-oauth" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.User{Email: "a@example.com", Provider: "google"}, nil
		},
	}
	svc := NewAuthService(gw, discardLogger)

	user, err := svc.CompleteOAuth(context.Background(), "tok-oauth")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Provider != "google" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_CompleteOAuth_EmptyToken(t *testing.T) {
	svc := NewAuthService(&stubAuthGateway{}, discardLogger)

	_, err := svc.CompleteOAuth(context.Background(), "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// TokenExpired
// ---------------------------------------------------------------------------

func TestAuthService_TokenExpired(t *testing.T) {
	svc := NewAuthService(&stubAuthGateway{}, discardLogger)

	if svc.TokenExpired(signedToken(t, time.Now().Add(time.Hour))) {
		t.Error("token expiring in an hour must not count as expired")
	}
	if !svc.TokenExpired(signedToken(t, time.Now().Add(-time.Hour))) {
		t.Error("token that expired an hour ago must count as expired")
	}
}

func TestAuthService_TokenExpired_KeepsUnparseableTokens(t *testing.T) {
	svc := NewAuthService(&stubAuthGateway{}, discardLogger)

	if svc.TokenExpired("not-a-jwt") {
		t.Error("unparseable tokens are kept optimistically")
	}

	// Valid JWT without an exp claim.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"})
	s, err := tok.SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if svc.TokenExpired(s) {
		t.Error("tokens without an exp claim are kept optimistically")
	}
}
