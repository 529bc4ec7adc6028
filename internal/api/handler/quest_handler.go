package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/ports"
)

// QuestHandler serves the curriculum-manager quest CRUD.
type QuestHandler struct {
	quests ports.QuestService
}

func NewQuestHandler(quests ports.QuestService) *QuestHandler {
	return &QuestHandler{quests: quests}
}

type questRequest struct {
	MaterialID string `json:"material_id" validate:"required"`
	QuizID     string `json:"quiz_id"`
	ActivityID string `json:"activity_id"`
	SkillType  string `json:"skill_type" validate:"required"`
	LevelOrder int    `json:"level_order" validate:"gte=0"`
	Status     string `json:"status" validate:"omitempty,oneof=active archived"`
}

type questUpdateRequest struct {
	SkillType  string `json:"skill_type" validate:"required"`
	LevelOrder int    `json:"level_order" validate:"gte=0"`
	Status     string `json:"status" validate:"omitempty,oneof=active archived"`
}

// Create adds a quest to an existing material.
//
// @Summary      Create a quest
// @Tags         quests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      questRequest  true  "Quest fields"
// @Success      201   {object}  domain.Quest
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /curriculum-manager/quests [post]
func (h *QuestHandler) Create(c echo.Context) error {
	var req questRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quest, err := h.quests.Create(c.Request().Context(), ports.QuestInput{
		MaterialID: req.MaterialID,
		QuizID:     req.QuizID,
		ActivityID: req.ActivityID,
		SkillType:  req.SkillType,
		LevelOrder: req.LevelOrder,
		Status:     domain.ContentStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, quest)
}

// List returns all quests.
//
// @Summary      List quests
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Quest
// @Router       /curriculum-manager/quests [get]
func (h *QuestHandler) List(c echo.Context) error {
	quests, err := h.quests.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quests)
}

// Get returns one quest by id.
//
// @Summary      Get a quest
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        quest_id  path      string  true  "Quest ID"
// @Success      200       {object}  domain.Quest
// @Failure      404       {object}  map[string]string
// @Router       /curriculum-manager/quests/{quest_id} [get]
func (h *QuestHandler) Get(c echo.Context) error {
	quest, err := h.quests.Get(c.Request().Context(), c.Param("quest_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quest)
}

// Update edits a quest's skill type, ordering, and status.
//
// @Summary      Update a quest
// @Tags         quests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        quest_id  path      string              true  "Quest ID"
// @Param        body      body      questUpdateRequest  true  "Quest fields"
// @Success      200       {object}  domain.Quest
// @Failure      404       {object}  map[string]string
// @Router       /curriculum-manager/quests/{quest_id} [put]
func (h *QuestHandler) Update(c echo.Context) error {
	var req questUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quest, err := h.quests.Update(c.Request().Context(), c.Param("quest_id"), ports.QuestInput{
		SkillType:  req.SkillType,
		LevelOrder: req.LevelOrder,
		Status:     domain.ContentStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quest)
}

// Delete removes a quest.
//
// @Summary      Delete a quest
// @Tags         quests
// @Produce      json
// @Security     BearerAuth
// @Param        quest_id  path      string  true  "Quest ID"
// @Success      200       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /curriculum-manager/quests/{quest_id} [delete]
func (h *QuestHandler) Delete(c echo.Context) error {
	if err := h.quests.Delete(c.Request().Context(), c.Param("quest_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "quest deleted successfully"})
}
