package service

import (
	"context"
	"strconv"
	"time"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

// stubUserRepo is an in-memory ports.UserRepository for service tests.
type stubUserRepo struct {
	accounts map[string]*domain.Account
	nextID   int
	failWith error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{accounts: make(map[string]*domain.Account), nextID: 1}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubUserRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrAccountExists
		}
	}
	copy := cloneAccount(account)
	copy.ID = "acc_" + strconv.Itoa(r.nextID)
	r.nextID++
	r.accounts[copy.ID] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id, firstName, lastName, email string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.FirstName = firstName
	a.LastName = lastName
	a.Email = email
	a.UpdatedAt = time.Now().UTC()
	return cloneAccount(a), nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, newHash string) error {
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.PasswordHash = newHash
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *cloneAccount(a))
	}
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.Account, error) {
	var out []domain.Account
	for _, a := range r.accounts {
		if a.Role == role {
			out = append(out, *cloneAccount(a))
		}
	}
	return out, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context) (map[domain.Role]int64, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	counts := make(map[domain.Role]int64)
	for _, a := range r.accounts {
		counts[a.Role]++
	}
	return counts, nil
}

// stubMaterialRepo is an in-memory ports.MaterialRepository.
type stubMaterialRepo struct {
	materials map[string]*domain.Material
	nextID    int
}

func newStubMaterialRepo() *stubMaterialRepo {
	return &stubMaterialRepo{materials: make(map[string]*domain.Material), nextID: 1}
}

func (r *stubMaterialRepo) Create(_ context.Context, m *domain.Material) (*domain.Material, error) {
	copy := *m
	copy.ID = "mat_" + strconv.Itoa(r.nextID)
	r.nextID++
	r.materials[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubMaterialRepo) FindByID(_ context.Context, id string) (*domain.Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, domain.ErrMaterialNotFound
	}
	copy := *m
	return &copy, nil
}

func (r *stubMaterialRepo) List(_ context.Context) ([]domain.Material, error) {
	out := make([]domain.Material, 0, len(r.materials))
	for _, m := range r.materials {
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *domain.Material) (*domain.Material, error) {
	if _, ok := r.materials[m.ID]; !ok {
		return nil, domain.ErrMaterialNotFound
	}
	copy := *m
	r.materials[m.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubMaterialRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.materials[id]; !ok {
		return domain.ErrMaterialNotFound
	}
	delete(r.materials, id)
	return nil
}

// stubQuestRepo is an in-memory ports.QuestRepository.
type stubQuestRepo struct {
	quests map[string]*domain.Quest
	nextID int
}

func newStubQuestRepo() *stubQuestRepo {
	return &stubQuestRepo{quests: make(map[string]*domain.Quest), nextID: 1}
}

func (r *stubQuestRepo) Create(_ context.Context, q *domain.Quest) (*domain.Quest, error) {
	copy := *q
	copy.ID = "qst_" + strconv.Itoa(r.nextID)
	r.nextID++
	r.quests[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubQuestRepo) FindByID(_ context.Context, id string) (*domain.Quest, error) {
	q, ok := r.quests[id]
	if !ok {
		return nil, domain.ErrQuestNotFound
	}
	copy := *q
	return &copy, nil
}

func (r *stubQuestRepo) List(_ context.Context) ([]domain.Quest, error) {
	out := make([]domain.Quest, 0, len(r.quests))
	for _, q := range r.quests {
		out = append(out, *q)
	}
	return out, nil
}

func (r *stubQuestRepo) Update(_ context.Context, q *domain.Quest) (*domain.Quest, error) {
	if _, ok := r.quests[q.ID]; !ok {
		return nil, domain.ErrQuestNotFound
	}
	copy := *q
	r.quests[q.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubQuestRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.quests[id]; !ok {
		return domain.ErrQuestNotFound
	}
	delete(r.quests, id)
	return nil
}
