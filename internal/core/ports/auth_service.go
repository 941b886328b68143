package ports

import (
	"context"

	"github.com/leadcrm/crm-system/internal/core/domain"
)

// AuthService authenticates accounts and manages session lifecycle.
type AuthService interface {
	// Login verifies email+password and returns a signed session token plus
	// the authenticated identity. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
	// Logout revokes a session id. Revoking an unknown id is not an error.
	Logout(ctx context.Context, sessionID string) error
}
