package ports

import (
	"context"

	"github.com/ellaquest/platform-api/internal/core/domain"
)

// MaterialInput carries the caller-editable material fields.
type MaterialInput struct {
	Title        string
	Description  string
	MaterialType string
	Status       domain.ContentStatus
}

// QuestInput carries the caller-editable quest fields.
type QuestInput struct {
	MaterialID string
	QuizID     string
	ActivityID string
	SkillType  string
	LevelOrder int
	Status     domain.ContentStatus
}

type MaterialService interface {
	Create(ctx context.Context, managerID string, in MaterialInput) (*domain.Material, error)
	Get(ctx context.Context, id string) (*domain.Material, error)
	List(ctx context.Context) ([]domain.Material, error)
	Update(ctx context.Context, id string, in MaterialInput) (*domain.Material, error)
	Delete(ctx context.Context, id string) error
}

type QuestService interface {
	Create(ctx context.Context, in QuestInput) (*domain.Quest, error)
	Get(ctx context.Context, id string) (*domain.Quest, error)
	List(ctx context.Context) ([]domain.Quest, error)
	Update(ctx context.Context, id string, in QuestInput) (*domain.Quest, error)
	Delete(ctx context.Context, id string) error
}
