package ports

import (
	"context"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

// MaterialRepository persists instructional materials.
type MaterialRepository interface {
	Create(ctx context.Context, material *domain.Material) (*domain.Material, error)
	FindByID(ctx context.Context, id string) (*domain.Material, error)
	List(ctx context.Context) ([]domain.Material, error)
	Update(ctx context.Context, material *domain.Material) (*domain.Material, error)
	Delete(ctx context.Context, id string) error
}

// QuestRepository persists quests.
type QuestRepository interface {
	Create(ctx context.Context, quest *domain.Quest) (*domain.Quest, error)
	FindByID(ctx context.Context, id string) (*domain.Quest, error)
	List(ctx context.Context) ([]domain.Quest, error)
	Update(ctx context.Context, quest *domain.Quest) (*domain.Quest, error)
	Delete(ctx context.Context, id string) error
}
