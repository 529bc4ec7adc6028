package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/token"
)

// memStatsCache is an in-memory StatsCache for tests.
type memStatsCache struct {
	stats   *domain.DashboardStats
	failGet bool
	sets    int
}

func (c *memStatsCache) Get(context.Context) (*domain.DashboardStats, error) {
	if c.failGet {
		return nil, errors.New("cache down")
	}
	return c.stats, nil
}

func (c *memStatsCache) Set(_ context.Context, stats *domain.DashboardStats) error {
	c.stats = stats
	c.sets++
	return nil
}

func seedAccounts(t *testing.T, repo *stubUserRepo) map[domain.Role]string {
	t.Helper()
	auth := NewAuthService(repo, NewPasswordHasher(testCost), token.NewIssuer("secret", time.Hour))

	ids := make(map[domain.Role]string)
	student, err := auth.Register(context.Background(), "Juan", "Dela Cruz", "juan@gbox.ncf.edu.ph", "pass123")
	if err != nil {
		t.Fatalf("seed student: %v", err)
	}
	ids[domain.RoleStudent] = student.ID

	instructor, err := auth.Register(context.Background(), "Ana", "Reyes", "ana@ncf.edu.ph", "pass123")
	if err != nil {
		t.Fatalf("seed instructor: %v", err)
	}
	ids[domain.RoleInstructor] = instructor.ID

	admin, err := auth.CreateAccount(context.Background(), "Root", "Admin", "root@ncf.edu.ph", "pass123", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	ids[domain.RoleAdmin] = admin.ID
	return ids
}

func newAccountService(repo *stubUserRepo, cache StatsCache) *AccountService {
	return NewAccountService(repo, NewPasswordHasher(testCost), cache, zerolog.Nop())
}

func TestAccountService_UpdateProfile_DomainRevalidated(t *testing.T) {
	repo := newStubUserRepo()
	ids := seedAccounts(t, repo)
	svc := newAccountService(repo, nil)

	// Students change to another gbox address: fine.
	updated, err := svc.UpdateProfile(context.Background(), ids[domain.RoleStudent], domain.RoleStudent, "Juan", "Dela Cruz", "juan.new@gbox.ncf.edu.ph")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Email != "juan.new@gbox.ncf.edu.ph" {
		t.Fatalf("email not updated: %s", updated.Email)
	}

	// A student may not move onto the staff host.
	if _, err := svc.UpdateProfile(context.Background(), ids[domain.RoleStudent], domain.RoleStudent, "Juan", "Dela Cruz", "juan@ncf.edu.ph"); err != domain.ErrEmailDomainNotAllowed {
		t.Fatalf("expected ErrEmailDomainNotAllowed, got %v", err)
	}
}

func TestAccountService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	ids := seedAccounts(t, repo)
	svc := newAccountService(repo, nil)
	id := ids[domain.RoleStudent]

	if err := svc.ChangePassword(context.Background(), id, "wrong", "newpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), id, "pass123", "newpass"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	account, err := repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	hasher := NewPasswordHasher(testCost)
	if !hasher.Verify("newpass", account.PasswordHash) {
		t.Fatalf("new password not stored")
	}
	if hasher.Verify("pass123", account.PasswordHash) {
		t.Fatalf("old password still valid")
	}
	// Role and ID untouched by the credential update.
	if account.Role != domain.RoleStudent || account.ID != id {
		t.Fatalf("password change mutated identity: %+v", account)
	}
}

func TestAccountService_UpdateUser_KeepsRole(t *testing.T) {
	repo := newStubUserRepo()
	ids := seedAccounts(t, repo)
	svc := newAccountService(repo, nil)
	id := ids[domain.RoleInstructor]

	updated, err := svc.UpdateUser(context.Background(), id, "Anna", "", "anna@ncf.edu.ph", "freshpass")
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Role != domain.RoleInstructor {
		t.Fatalf("role changed to %s", updated.Role)
	}
	if updated.FirstName != "Anna" || updated.LastName != "Reyes" {
		t.Fatalf("partial update wrong: %s %s", updated.FirstName, updated.LastName)
	}

	// The instructor may not be moved onto the student host.
	if _, err := svc.UpdateUser(context.Background(), id, "", "", "anna@gbox.ncf.edu.ph", ""); err != domain.ErrEmailDomainNotAllowed {
		t.Fatalf("expected ErrEmailDomainNotAllowed, got %v", err)
	}
}

func TestAccountService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	ids := seedAccounts(t, repo)
	svc := newAccountService(repo, nil)

	if err := svc.DeleteUser(context.Background(), ids[domain.RoleStudent]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetUser(context.Background(), ids[domain.RoleStudent]); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound after delete, got %v", err)
	}
	if err := svc.DeleteUser(context.Background(), "acc_missing"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_ListUsersByRole(t *testing.T) {
	repo := newStubUserRepo()
	seedAccounts(t, repo)
	svc := newAccountService(repo, nil)

	students, err := svc.ListUsersByRole(context.Background(), domain.RoleStudent)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("expected 1 student, got %d", len(students))
	}

	if _, err := svc.ListUsersByRole(context.Background(), domain.Role("ghost")); err != domain.ErrUnknownRole {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAccountService_DashboardStats(t *testing.T) {
	repo := newStubUserRepo()
	seedAccounts(t, repo)
	cache := &memStatsCache{}
	svc := newAccountService(repo, cache)

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 3 || stats.TotalStudents != 1 || stats.TotalInstructors != 1 || stats.TotalAdmins != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// Second call served from cache.
	repo.failWith = errors.New("store down")
	cached, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("cached stats: %v", err)
	}
	if cached.TotalUsers != 3 {
		t.Fatalf("unexpected cached stats: %+v", cached)
	}
}

func TestAccountService_DashboardStats_CacheFailureDegrades(t *testing.T) {
	repo := newStubUserRepo()
	seedAccounts(t, repo)
	svc := newAccountService(repo, &memStatsCache{failGet: true})

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("stats with failing cache: %v", err)
	}
	if stats.TotalUsers != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
