package ports

import (
	"context"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

// UserRepository is the persistence contract for accounts. Create must
// fail with domain.ErrAccountExists when the email is already taken —
// uniqueness is enforced by the store, and a losing racer surfaces the
// conflict rather than overwriting.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName, email string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id, newHash string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Account, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Account, error)
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}
