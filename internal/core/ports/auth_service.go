package ports

import (
	"context"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

// AuthService covers registration, administrative account creation, and
// login.
type AuthService interface {
	// Register creates a self-service account. The role is derived from
	// the email domain: gbox addresses become students, staff addresses
	// become instructors; anything else is rejected before any write.
	Register(ctx context.Context, firstName, lastName, email, password string) (*domain.Account, error)

	// CreateAccount provisions an admin or curriculum manager account.
	// Any other role is rejected, and the email must match the staff
	// domain.
	CreateAccount(ctx context.Context, firstName, lastName, email, password string, role domain.Role) (*domain.Account, error)

	// Login verifies credentials and mints a signed token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
