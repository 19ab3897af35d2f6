package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eknows/eknows-api/internal/repository"
)

// AdminHandler serves the /api/admin management endpoints (everything
// except login, which lives in AuthHandler).
type AdminHandler struct {
	Subjects *repository.SubjectRepo
	Programs *repository.ProgramRepo
	Users    *repository.UserRepo
	Reports  *repository.ReportRepo
}

func NewAdminHandler(s *repository.SubjectRepo, p *repository.ProgramRepo, u *repository.UserRepo, r *repository.ReportRepo) *AdminHandler {
	return &AdminHandler{Subjects: s, Programs: p, Users: u, Reports: r}
}

// GetSubjects handles GET /api/admin/get-subjects and returns every
// subject including unassigned ones.
func (h *AdminHandler) GetSubjects(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Subjects.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"subjects": items})
}

// GetPrograms handles GET /api/admin/get-programs.
func (h *AdminHandler) GetPrograms(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Programs.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"programs": items})
}

// GetTeachers handles GET /api/admin/get-teachers.
func (h *AdminHandler) GetTeachers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Users.ListTeachers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"teachers": items})
}

// GetTrackingData handles GET /api/admin/get-tracking-data.
func (h *AdminHandler) GetTrackingData(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Reports.Tracking(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"tracking_data": t})
}

// AddProgram handles POST /api/admin/add-program.
func (h *AdminHandler) AddProgram(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid JSON"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing name"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Programs.Create(ctx, req.Name); err != nil {
		if err == repository.ErrNameExists {
			return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Program already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Program added"})
}

// DeleteProgram handles POST /api/admin/delete-program.
func (h *AdminHandler) DeleteProgram(c echo.Context) error {
	var req idReq
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Programs.Delete(ctx, req.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted"})
}

// AddTeacher handles POST /api/admin/add-teacher.
func (h *AdminHandler) AddTeacher(c echo.Context) error {
	var req struct {
		Name       string `json:"name"`
		Username   string `json:"username"`
		Password   string `json:"password"`
		AccessCode string `json:"access_code"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid JSON"})
	}
	if req.Name == "" || req.Username == "" || req.Password == "" || req.AccessCode == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.CreateTeacher(ctx, req.Name, req.Username, req.Password, req.AccessCode); err != nil {
		if err == repository.ErrUsernameExists {
			return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Teacher added"})
}

// DeleteTeacher handles POST /api/admin/delete-teacher.  Only accounts
// with role='teacher' can be removed.
func (h *AdminHandler) DeleteTeacher(c echo.Context) error {
	var req idReq
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.DeleteTeacher(ctx, req.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted"})
}
