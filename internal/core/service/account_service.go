package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/ports"
)

// StatsCache caches the dashboard aggregate. Implementations may fail;
// the service treats cache errors as misses.
type StatsCache interface {
	Get(ctx context.Context) (*domain.DashboardStats, error)
	Set(ctx context.Context, stats *domain.DashboardStats) error
}

// AccountService implements profile self-service and the administrative
// user-management operations.
type AccountService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	cache  StatsCache
	log    zerolog.Logger
}

// NewAccountService builds an AccountService. cache may be nil, in which
// case dashboard stats always hit the store.
func NewAccountService(repo ports.UserRepository, hasher *PasswordHasher, cache StatsCache, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, cache: cache, log: log}
}

func (s *AccountService) Profile(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile changes name and email only. The new email must match the
// domain policy for the caller's role; the role itself never changes here.
func (s *AccountService) UpdateProfile(ctx context.Context, id string, role domain.Role, firstName, lastName, email string) (*domain.Account, error) {
	if firstName == "" || email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	email = normalizeEmail(email)
	if !role.AllowsEmail(email) {
		return nil, domain.ErrEmailDomainNotAllowed
	}

	return s.repo.UpdateProfile(ctx, id, firstName, lastName, email)
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AccountService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(currentPassword, account.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, hash)
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx)
}

func (s *AccountService) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.Account, error) {
	if !role.Valid() {
		return nil, domain.ErrUnknownRole
	}
	return s.repo.ListByRole(ctx, role)
}

func (s *AccountService) GetUser(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser is the administrative edit: name and email freely, password
// optionally rehashed when non-empty. The target's role stays fixed and
// the new email must still satisfy that role's domain policy.
func (s *AccountService) UpdateUser(ctx context.Context, id, firstName, lastName, email, password string) (*domain.Account, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if firstName == "" {
		firstName = current.FirstName
	}
	if lastName == "" {
		lastName = current.LastName
	}
	if email == "" {
		email = current.Email
	}
	email = normalizeEmail(email)
	if !current.Role.AllowsEmail(email) {
		return nil, domain.ErrEmailDomainNotAllowed
	}

	if password != "" {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
			return nil, err
		}
	}

	return s.repo.UpdateProfile(ctx, id, firstName, lastName, email)
}

func (s *AccountService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DashboardStats aggregates account counts per role. Results are cached
// briefly; cache failures degrade to a direct count, never an error.
func (s *AccountService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache != nil {
		if stats, err := s.cache.Get(ctx); err == nil && stats != nil {
			return stats, nil
		}
	}

	counts, err := s.repo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalStudents:           counts[domain.RoleStudent],
		TotalInstructors:        counts[domain.RoleInstructor],
		TotalCurriculumManagers: counts[domain.RoleCurriculumManager],
		TotalAdmins:             counts[domain.RoleAdmin],
	}
	stats.TotalUsers = stats.TotalStudents + stats.TotalInstructors +
		stats.TotalCurriculumManagers + stats.TotalAdmins

	if s.cache != nil {
		cacheCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := s.cache.Set(cacheCtx, stats); err != nil {
			s.log.Warn().Err(err).Msg("dashboard stats cache write failed")
		}
	}
	return stats, nil
}
