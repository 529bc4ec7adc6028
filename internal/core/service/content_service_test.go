package service

import (
	"context"
	"testing"

	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/ports"
)

func TestMaterialService_CreateDefaultsStatus(t *testing.T) {
	svc := NewMaterialService(newStubMaterialRepo())

	material, err := svc.Create(context.Background(), "cm_1", ports.MaterialInput{
		Title:        "Phonics Basics",
		Description:  "Intro to phonics",
		MaterialType: "lesson",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if material.Status != domain.StatusActive {
		t.Fatalf("expected active status, got %s", material.Status)
	}
	if material.ManagerID != "cm_1" || material.UploadedBy != "cm_1" {
		t.Fatalf("ownership not recorded: %+v", material)
	}
}

func TestMaterialService_UpdateAndDelete(t *testing.T) {
	repo := newStubMaterialRepo()
	svc := NewMaterialService(repo)

	material, err := svc.Create(context.Background(), "cm_1", ports.MaterialInput{Title: "Old", MaterialType: "lesson"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), material.ID, ports.MaterialInput{
		Title:        "New",
		MaterialType: "quiz",
		Status:       domain.StatusArchived,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "New" || updated.Status != domain.StatusArchived {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(context.Background(), material.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), material.ID); err != domain.ErrMaterialNotFound {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), material.ID); err != domain.ErrMaterialNotFound {
		t.Fatalf("expected ErrMaterialNotFound on repeat delete, got %v", err)
	}
}

func TestQuestService_RequiresMaterial(t *testing.T) {
	materials := newStubMaterialRepo()
	svc := NewQuestService(newStubQuestRepo(), materials)

	if _, err := svc.Create(context.Background(), ports.QuestInput{MaterialID: "mat_missing", SkillType: "reading"}); err != domain.ErrMaterialNotFound {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}

	material, err := NewMaterialService(materials).Create(context.Background(), "cm_1", ports.MaterialInput{Title: "M", MaterialType: "lesson"})
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	quest, err := svc.Create(context.Background(), ports.QuestInput{
		MaterialID: material.ID,
		SkillType:  "reading",
		LevelOrder: 1,
	})
	if err != nil {
		t.Fatalf("create quest: %v", err)
	}
	if quest.Status != domain.StatusActive {
		t.Fatalf("expected active status, got %s", quest.Status)
	}
}

func TestQuestService_Update(t *testing.T) {
	materials := newStubMaterialRepo()
	material, err := NewMaterialService(materials).Create(context.Background(), "cm_1", ports.MaterialInput{Title: "M", MaterialType: "lesson"})
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	svc := NewQuestService(newStubQuestRepo(), materials)
	quest, err := svc.Create(context.Background(), ports.QuestInput{MaterialID: material.ID, SkillType: "reading", LevelOrder: 1})
	if err != nil {
		t.Fatalf("create quest: %v", err)
	}

	updated, err := svc.Update(context.Background(), quest.ID, ports.QuestInput{SkillType: "writing", LevelOrder: 2})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.SkillType != "writing" || updated.LevelOrder != 2 {
		t.Fatalf("update not applied: %+v", updated)
	}
	// The owning material never changes on update.
	if updated.MaterialID != material.ID {
		t.Fatalf("material id changed: %s", updated.MaterialID)
	}
}
