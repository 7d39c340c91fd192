package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/primelabel/labelview/internal/core/domain"
	"github.com/primelabel/labelview/internal/core/ports"
)

type authService struct {
	gateway ports.AuthGateway
	log     zerolog.Logger
	now     func() time.Time
}

// NewAuthService returns an AuthService that relays sign-in operations to
// the upstream auth API.
func NewAuthService(gateway ports.AuthGateway, log zerolog.Logger) ports.AuthService {
	return &authService{gateway: gateway, log: log, now: time.Now}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, user, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) Signup(ctx context.Context, in ports.SignupInput) error {
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return domain.ErrInvalidCredentials
	}
	return s.gateway.Signup(ctx, in)
}

func (s *authService) CompleteOAuth(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.gateway.Me(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("oauth callback: could not fetch user record")
		return nil, err
	}
	return user, nil
}

// TokenExpired inspects the exp claim without verifying the signature; the
// signing key lives upstream. A token that cannot be parsed, or that carries
// no exp claim, is kept optimistically and settled by the first
// authenticated request.
func (s *authService) TokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.now())
}
