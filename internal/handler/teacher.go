package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eknows/eknows-api/internal/repository"
)

// TeacherHandler serves the token-protected /api/teacher endpoints.
type TeacherHandler struct {
	Subjects *repository.SubjectRepo
	Reports  *repository.ReportRepo
}

func NewTeacherHandler(s *repository.SubjectRepo, r *repository.ReportRepo) *TeacherHandler {
	return &TeacherHandler{Subjects: s, Reports: r}
}

type subjectReq struct {
	ID         int64  `json:"id"`
	Program    string `json:"program"`
	GradeLevel string `json:"grade_level"`
	Semester   string `json:"semester"`
	Subject    string `json:"subject"`
	TeacherID  int64  `json:"teacher_id"`
}

type idReq struct {
	ID int64 `json:"id"`
}

type assignReq struct {
	SubjectID int64 `json:"subject_id"`
	TeacherID int64 `json:"teacher_id"`
}

// DashboardData handles POST /api/teacher/dashboard-data and returns the
// material totals for one teacher.
func (h *TeacherHandler) DashboardData(c echo.Context) error {
	var req struct {
		TeacherID int64 `json:"teacher_id"`
	}
	if err := c.Bind(&req); err != nil || req.TeacherID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing teacher_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Reports.Dashboard(ctx, req.TeacherID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, d)
}

// GetSubjects handles GET /api/teacher/get-subjects?teacher_id=N.
func (h *TeacherHandler) GetSubjects(c echo.Context) error {
	teacherID, err := strconv.ParseInt(c.QueryParam("teacher_id"), 10, 64)
	if err != nil || teacherID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing or invalid teacher_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Subjects.ListByTeacher(ctx, teacherID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"subjects": items})
}

// AddSubject handles POST /api/teacher/add-subject.
func (h *TeacherHandler) AddSubject(c echo.Context) error {
	var req subjectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid JSON"})
	}
	if req.Program == "" || req.GradeLevel == "" || req.Semester == "" || req.Subject == "" || req.TeacherID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &repository.Subject{
		Program:    req.Program,
		GradeLevel: req.GradeLevel,
		Semester:   req.Semester,
		Subject:    req.Subject,
		TeacherID:  req.TeacherID,
	}
	if err := h.Subjects.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Subject added"})
}

// DeleteSubject handles POST /api/teacher/delete-subject.
func (h *TeacherHandler) DeleteSubject(c echo.Context) error {
	var req idReq
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Subjects.Delete(ctx, req.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted"})
}

// AssignSubject handles POST /api/teacher/assign-subject.
func (h *TeacherHandler) AssignSubject(c echo.Context) error {
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid JSON"})
	}
	if req.SubjectID == 0 || req.TeacherID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing ids"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Subjects.AssignTeacher(ctx, req.SubjectID, req.TeacherID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Assigned"})
}
