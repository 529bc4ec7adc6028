package domain

import (
	"errors"
	"time"
)

var ErrQuestNotFound = errors.New("quest not found")

// Quest is a learning activity attached to a material, ordered into a
// skill progression by LevelOrder.
type Quest struct {
	ID         string        `json:"id"`
	MaterialID string        `json:"material_id"`
	QuizID     string        `json:"quiz_id,omitempty"`
	ActivityID string        `json:"activity_id,omitempty"`
	SkillType  string        `json:"skill_type"`
	LevelOrder int           `json:"level_order"`
	Status     ContentStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
