package auth

import (
	"context"
	"errors"

	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
)

// Authorization decision errors. The gate only decides; translating a
// decision into a redirect or an HTTP status is the transport layer's job.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient role")
)

// Identity is the authenticated caller, with the password hash stripped.
type Identity struct {
	ID       string
	Username string
	Role     domain.Role
}

// UserLookup is the directory capability the gate needs.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
}

// Gate resolves who the caller is and whether they are allowed here.
type Gate struct {
	tokens *TokenManager
	users  UserLookup
}

// NewGate constructs the gate.
func NewGate(tokens *TokenManager, users UserLookup) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// CurrentUser verifies the token and re-fetches the live user record, so
// the role used for authorization reflects the directory rather than the
// claims frozen at issuance. Returns ErrUnauthenticated when the token is
// missing, invalid, or the user no longer exists.
func (g *Gate) CurrentUser(ctx context.Context, token string) (*Identity, error) {
	claims, err := g.verify(token)
	if err != nil {
		return nil, err
	}

	user, err := g.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return &Identity{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// TokenUser trusts the verified token's embedded claims without a directory
// lookup. Cheaper, but the role can be stale until the token expires.
func (g *Gate) TokenUser(token string) (*Identity, error) {
	claims, err := g.verify(token)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: claims.Subject, Username: claims.Username, Role: claims.Role}, nil
}

// Authorize resolves the caller via CurrentUser and checks the required
// role. required == "" means any authenticated caller.
func (g *Gate) Authorize(ctx context.Context, token string, required domain.Role) (*Identity, error) {
	identity, err := g.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := checkRole(identity.Role, required); err != nil {
		return identity, err
	}
	return identity, nil
}

// AuthorizeToken is the claims-only counterpart of Authorize, for API
// callers.
func (g *Gate) AuthorizeToken(token string, required domain.Role) (*Identity, error) {
	identity, err := g.TokenUser(token)
	if err != nil {
		return nil, err
	}
	if err := checkRole(identity.Role, required); err != nil {
		return identity, err
	}
	return identity, nil
}

func (g *Gate) verify(token string) (*SessionClaims, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}

// checkRole matches the caller's role against the requirement. Admin
// satisfies every requirement; staff satisfies staff or none.
func checkRole(have, required domain.Role) error {
	if required == "" {
		return nil
	}
	switch have {
	case domain.RoleAdmin:
		return nil
	case domain.RoleStaff:
		if required == domain.RoleStaff {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
