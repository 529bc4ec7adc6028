package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellaquest/platform-api/internal/api/middleware"
	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/ports"
)

// MaterialHandler serves the curriculum-manager material CRUD.
type MaterialHandler struct {
	materials ports.MaterialService
}

func NewMaterialHandler(materials ports.MaterialService) *MaterialHandler {
	return &MaterialHandler{materials: materials}
}

type materialRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	MaterialType string `json:"material_type" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=active archived"`
}

func (r *materialRequest) input() ports.MaterialInput {
	return ports.MaterialInput{
		Title:        r.Title,
		Description:  r.Description,
		MaterialType: r.MaterialType,
		Status:       domain.ContentStatus(r.Status),
	}
}

// Create adds a new material owned by the calling curriculum manager.
//
// @Summary      Create a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      materialRequest  true  "Material fields"
// @Success      201   {object}  domain.Material
// @Failure      400   {object}  map[string]string
// @Router       /curriculum-manager/materials [post]
func (h *MaterialHandler) Create(c echo.Context) error {
	ident := middleware.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	var req materialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	material, err := h.materials.Create(c.Request().Context(), ident.AccountID, req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, material)
}

// List returns all materials.
//
// @Summary      List materials
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Material
// @Router       /curriculum-manager/materials [get]
func (h *MaterialHandler) List(c echo.Context) error {
	materials, err := h.materials.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, materials)
}

// Get returns one material by id.
//
// @Summary      Get a material
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        material_id  path      string  true  "Material ID"
// @Success      200          {object}  domain.Material
// @Failure      404          {object}  map[string]string
// @Router       /curriculum-manager/materials/{material_id} [get]
func (h *MaterialHandler) Get(c echo.Context) error {
	material, err := h.materials.Get(c.Request().Context(), c.Param("material_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, material)
}

// Update edits a material.
//
// @Summary      Update a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        material_id  path      string           true  "Material ID"
// @Param        body         body      materialRequest  true  "Material fields"
// @Success      200          {object}  domain.Material
// @Failure      404          {object}  map[string]string
// @Router       /curriculum-manager/materials/{material_id} [put]
func (h *MaterialHandler) Update(c echo.Context) error {
	var req materialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	material, err := h.materials.Update(c.Request().Context(), c.Param("material_id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, material)
}

// Delete removes a material.
//
// @Summary      Delete a material
// @Tags         materials
// @Produce      json
// @Security     BearerAuth
// @Param        material_id  path      string  true  "Material ID"
// @Success      200          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /curriculum-manager/materials/{material_id} [delete]
func (h *MaterialHandler) Delete(c echo.Context) error {
	if err := h.materials.Delete(c.Request().Context(), c.Param("material_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "material deleted successfully"})
}
