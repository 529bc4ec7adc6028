package domain

import (
	"errors"
	"time"
)

var ErrMaterialNotFound = errors.New("material not found")

// ContentStatus marks whether a material or quest is live.
type ContentStatus string

const (
	StatusActive   ContentStatus = "active"
	StatusArchived ContentStatus = "archived"
)

// Material is an instructional resource owned by a curriculum manager.
type Material struct {
	ID           string        `json:"id"`
	ManagerID    string        `json:"manager_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	MaterialType string        `json:"material_type"`
	UploadedBy   string        `json:"uploaded_by"`
	Status       ContentStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
