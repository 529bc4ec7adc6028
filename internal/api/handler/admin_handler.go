package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellaquest/platform-api/internal/core/domain"
	"github.com/ellaquest/platform-api/internal/core/ports"
)

// AdminHandler serves the admin-only user-management surface.
type AdminHandler struct {
	accounts ports.AccountService
}

func NewAdminHandler(accounts ports.AccountService) *AdminHandler {
	return &AdminHandler{accounts: accounts}
}

type updateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
}

// Dashboard returns account counts per role.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.accounts.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers returns every account.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Account
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.accounts.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser returns a single account by id.
//
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	account, err := h.accounts.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// UpdateUser edits an account's name, email, and optionally password.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Account ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.UpdateUser(c.Request().Context(), c.Param("id"), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// DeleteUser removes an account. Terminal; there is no soft delete.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.accounts.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted successfully"})
}

// ListStudents returns all student accounts.
//
// @Summary      List students
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Account
// @Router       /admin/students [get]
func (h *AdminHandler) ListStudents(c echo.Context) error {
	return h.listByRole(c, domain.RoleStudent)
}

// ListInstructors returns all instructor accounts.
//
// @Summary      List instructors
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Account
// @Router       /admin/instructors [get]
func (h *AdminHandler) ListInstructors(c echo.Context) error {
	return h.listByRole(c, domain.RoleInstructor)
}

// ListCurriculumManagers returns all curriculum manager accounts.
//
// @Summary      List curriculum managers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Account
// @Router       /admin/curriculum-managers [get]
func (h *AdminHandler) ListCurriculumManagers(c echo.Context) error {
	return h.listByRole(c, domain.RoleCurriculumManager)
}

func (h *AdminHandler) listByRole(c echo.Context, role domain.Role) error {
	users, err := h.accounts.ListUsersByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
