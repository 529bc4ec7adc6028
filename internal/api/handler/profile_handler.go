package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ellaquest/platform-api/internal/api/middleware"
	"github.com/ellaquest/platform-api/internal/core/ports"
)

// ProfileHandler serves the self-service routes mounted under each role
// group: own profile, profile update, password change, and the course
// placeholders. The caller's identity comes from the auth middleware; the
// role gate has already run by the time these execute.
type ProfileHandler struct {
	accounts ports.AccountService
}

func NewProfileHandler(accounts ports.AccountService) *ProfileHandler {
	return &ProfileHandler{accounts: accounts}
}

type updateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// Profile returns the caller's own account.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /student/profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	ident := middleware.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	account, err := h.accounts.Profile(c.Request().Context(), ident.AccountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// UpdateProfile changes the caller's name and email. The new email is
// re-validated against the caller's role's domain.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /student/profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	ident := middleware.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.accounts.UpdateProfile(c.Request().Context(), ident.AccountID, ident.Role, req.FirstName, req.LastName, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// ChangePassword verifies the current password and stores a new hash.
//
// @Summary      Change own password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Passwords"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /student/change-password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	ident := middleware.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.accounts.ChangePassword(c.Request().Context(), ident.AccountID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password changed successfully"})
}

// Courses is a placeholder until the course catalogue ships; it still
// verifies the caller's account exists.
//
// @Summary      List own courses
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /student/courses [get]
func (h *ProfileHandler) Courses(c echo.Context) error {
	ident := middleware.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	if _, err := h.accounts.Profile(c.Request().Context(), ident.AccountID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "courses will be available once the course catalogue is set up",
	})
}

// CourseStudents is the instructor-facing placeholder for the roster of a
// course.
//
// @Summary      List students in a course
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        course_id  path  string  true  "Course ID"
// @Success      200  {object}  map[string]string
// @Router       /instructor/courses/{course_id}/students [get]
func (h *ProfileHandler) CourseStudents(c echo.Context) error {
	ident := middleware.IdentityFrom(c)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	if _, err := h.accounts.Profile(c.Request().Context(), ident.AccountID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":   "course rosters will be available once the course catalogue is set up",
		"course_id": c.Param("course_id"),
	})
}
