package service

import (
	"context"
	"time"

	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/ports"
)

// MaterialService implements CRUD over instructional materials.
type MaterialService struct {
	repo ports.MaterialRepository
}

func NewMaterialService(repo ports.MaterialRepository) *MaterialService {
	return &MaterialService{repo: repo}
}

func (s *MaterialService) Create(ctx context.Context, managerID string, in ports.MaterialInput) (*domain.Material, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	material := &domain.Material{
		ManagerID:    managerID,
		Title:        in.Title,
		Description:  in.Description,
		MaterialType: in.MaterialType,
		UploadedBy:   managerID,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, material)
}

func (s *MaterialService) Get(ctx context.Context, id string) (*domain.Material, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MaterialService) List(ctx context.Context) ([]domain.Material, error) {
	return s.repo.List(ctx)
}

func (s *MaterialService) Update(ctx context.Context, id string, in ports.MaterialInput) (*domain.Material, error) {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	material.Title = in.Title
	material.Description = in.Description
	material.MaterialType = in.MaterialType
	if in.Status != "" {
		material.Status = in.Status
	}
	material.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, material)
}

func (s *MaterialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
