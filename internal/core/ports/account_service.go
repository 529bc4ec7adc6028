package ports

import (
	"context"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

// AccountService covers self-service profile operations and the
// administrative user-management surface.
type AccountService interface {
	Profile(ctx context.Context, id string) (*domain.Account, error)
	// UpdateProfile changes the name and email fields only; the new email
	// is re-validated against the caller's role's domain. Role and ID
	// never change here.
	UpdateProfile(ctx context.Context, id string, role domain.Role, firstName, lastName, email string) (*domain.Account, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error

	// Administrative operations.
	ListUsers(ctx context.Context) ([]domain.Account, error)
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.Account, error)
	GetUser(ctx context.Context, id string) (*domain.Account, error)
	UpdateUser(ctx context.Context, id, firstName, lastName, email, password string) (*domain.Account, error)
	DeleteUser(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
