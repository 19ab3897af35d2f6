package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eknows/eknows-api/internal/repository"
)

// MaterialHandler serves the material upload/download/list routes.
type MaterialHandler struct {
	Materials *repository.MaterialRepo
}

func NewMaterialHandler(m *repository.MaterialRepo) *MaterialHandler {
	return &MaterialHandler{Materials: m}
}

// List handles GET /get-materials?teacher_id=N and returns the materials
// joined with their subject and program names.
func (h *MaterialHandler) List(c echo.Context) error {
	teacherID, err := strconv.ParseInt(c.QueryParam("teacher_id"), 10, 64)
	if err != nil || teacherID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing or invalid teacher_id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Materials.ListByTeacher(ctx, teacherID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Upload handles POST /upload-material.  The file contents arrive base64
// encoded and are stored as-is.
func (h *MaterialHandler) Upload(c echo.Context) error {
	var req struct {
		SubjectID  int64  `json:"subject_id"`
		Category   string `json:"category"`
		FileName   string `json:"file_name"`
		FileBase64 string `json:"file_base64"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid JSON"})
	}
	if req.SubjectID == 0 || req.Category == "" || req.FileName == "" || req.FileBase64 == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := &repository.Material{
		SubjectID:        req.SubjectID,
		Category:         req.Category,
		OriginalFilename: req.FileName,
		FileData:         req.FileBase64,
	}
	if err := h.Materials.Create(ctx, m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Material uploaded"})
}

// Delete handles POST /delete-material.
func (h *MaterialHandler) Delete(c echo.Context) error {
	var req idReq
	if err := c.Bind(&req); err != nil || req.ID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Materials.Delete(ctx, req.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted"})
}

// Download handles GET /download?id=N and streams the stored (base64)
// contents back as an attachment under the original filename.
func (h *MaterialHandler) Download(c echo.Context) error {
	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.String(http.StatusBadRequest, "Missing id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Materials.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.String(http.StatusNotFound, "Not Found")
		}
		return c.String(http.StatusInternalServerError, "Database error")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", m.OriginalFilename))
	return c.Blob(http.StatusOK, "application/octet-stream", []byte(m.FileData))
}
