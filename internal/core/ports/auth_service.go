package ports

import (
	"context"

	"github.com/primelabel/labelview/internal/core/domain"
)

// AuthService defines the sign-in use cases. All credential verification
// happens upstream; this service validates inputs, relays to the gateway,
// and inspects token lifetimes locally.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	Signup(ctx context.Context, in SignupInput) error
	// CompleteOAuth finishes a third-party sign-in: given the token handed
	// back on the callback URL it fetches the user record it belongs to.
	CompleteOAuth(ctx context.Context, token string) (*domain.User, error)
	// TokenExpired reports whether a stored bearer token is already past
	// its exp claim. Tokens without a parseable exp are kept optimistically.
	TokenExpired(token string) bool
}
