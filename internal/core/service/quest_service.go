package service

import (
	"context"
	"time"

	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/ports"
)

// QuestService implements CRUD over quests. Creation requires the owning
// material to exist.
type QuestService struct {
	repo      ports.QuestRepository
	materials ports.MaterialRepository
}

func NewQuestService(repo ports.QuestRepository, materials ports.MaterialRepository) *QuestService {
	return &QuestService{repo: repo, materials: materials}
}

func (s *QuestService) Create(ctx context.Context, in ports.QuestInput) (*domain.Quest, error) {
	if _, err := s.materials.FindByID(ctx, in.MaterialID); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	quest := &domain.Quest{
		MaterialID: in.MaterialID,
		QuizID:     in.QuizID,
		ActivityID: in.ActivityID,
		SkillType:  in.SkillType,
		LevelOrder: in.LevelOrder,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.repo.Create(ctx, quest)
}

func (s *QuestService) Get(ctx context.Context, id string) (*domain.Quest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *QuestService) List(ctx context.Context) ([]domain.Quest, error) {
	return s.repo.List(ctx)
}

func (s *QuestService) Update(ctx context.Context, id string, in ports.QuestInput) (*domain.Quest, error) {
	quest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quest.SkillType = in.SkillType
	quest.LevelOrder = in.LevelOrder
	if in.Status != "" {
		quest.Status = in.Status
	}
	quest.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, quest)
}

func (s *QuestService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
