package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/ports"
	"github.com/ellaquest/platform-api/internal/core/token"
)

// AuthService implements registration, administrative account creation,
// and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	issuer *token.Issuer
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, issuer *token.Issuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, issuer: issuer}
}

// Register creates a self-service account. The role is derived strictly
// from the email domain and validated before any persistence write.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.Account, error) {
	if firstName == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	email = normalizeEmail(email)
	role, err := domain.RoleForEmail(email)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, firstName, lastName, email, password, role)
}

// CreateAccount provisions an admin or curriculum manager. The explicit
// role must be one of those two and the email must match the staff
// domain; nothing is written otherwise.
func (s *AuthService) CreateAccount(ctx context.Context, firstName, lastName, email, password string, role domain.Role) (*domain.Account, error) {
	if firstName == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role != domain.RoleAdmin && role != domain.RoleCurriculumManager {
		return nil, domain.ErrRoleNotPermitted
	}

	email = normalizeEmail(email)
	if !role.AllowsEmail(email) {
		return nil, domain.ErrEmailDomainNotAllowed
	}

	return s.create(ctx, firstName, lastName, email, password, role)
}

// Login verifies the credentials and mints a bearer token. An unknown
// email and a wrong password both return domain.ErrInvalidCredentials so
// account existence never leaks.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(account)
	if err != nil {
		return "", nil, err
	}
	return signed, account, nil
}

func (s *AuthService) create(ctx context.Context, firstName, lastName, email, password string, role domain.Role) (*domain.Account, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, account)
}

// normalizeEmail lowercases the address so the store's unique index gives
// case-insensitive uniqueness.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
