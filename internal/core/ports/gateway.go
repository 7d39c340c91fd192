package ports

import (
	"context"

	"github.com/primelabel/labelview/internal/core/domain"
)

// LabelGateway is the outbound port to the upstream label API. Implementations
// are expected to handle host failover internally; callers treat the result
// as final.
type LabelGateway interface {
	LabelByIdentifier(ctx context.Context, code string) (*domain.Label, error)
	LabelByBatch(ctx context.Context, sponsor, trial, batch string) (*domain.Label, error)
	LabelByKit(ctx context.Context, sponsor, trial, kit string) (*domain.Label, error)
}

// SignupInput carries the fields for a new account registration.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthGateway is the outbound port to the upstream auth API.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	Signup(ctx context.Context, in SignupInput) error
	Me(ctx context.Context, token string) (*domain.User, error)
	// GoogleAuthURL returns the upstream URL that starts third-party
	// sign-in, redirecting back to the given callback URL.
	GoogleAuthURL(redirect string) string
}
