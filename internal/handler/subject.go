package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eknows/eknows-api/internal/repository"
)

// SubjectHandler serves the legacy unauthenticated subject routes that the
// older frontend pages still call.
type SubjectHandler struct {
	Subjects *repository.SubjectRepo
}

func NewSubjectHandler(s *repository.SubjectRepo) *SubjectHandler {
	return &SubjectHandler{Subjects: s}
}

// GetByTeacher handles GET /get-subjects?teacher_id=N.
func (h *SubjectHandler) GetByTeacher(c echo.Context) error {
	teacherID, err := strconv.ParseInt(c.QueryParam("teacher_id"), 10, 64)
	if err != nil || teacherID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing teacher_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Subjects.ListByTeacher(ctx, teacherID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"subjects": items})
}

// Create handles POST /create-subject.
func (h *SubjectHandler) Create(c echo.Context) error {
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
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Subject created"})
}

// Update handles POST /update-subject.  Every field of the subject is
// required; the row is rewritten whole.
func (h *SubjectHandler) Update(c echo.Context) error {
	var req subjectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid JSON"})
	}
	if req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing id"})
	}
	if req.Program == "" || req.GradeLevel == "" || req.Semester == "" || req.Subject == "" || req.TeacherID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &repository.Subject{
		ID:         req.ID,
		Program:    req.Program,
		GradeLevel: req.GradeLevel,
		Semester:   req.Semester,
		Subject:    req.Subject,
		TeacherID:  req.TeacherID,
	}
	if err := h.Subjects.Update(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Subject updated"})
}

// Delete handles POST /delete-subject.
func (h *SubjectHandler) Delete(c echo.Context) error {
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

// Assign handles POST /assign-subject.
func (h *SubjectHandler) Assign(c echo.Context) error {
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
