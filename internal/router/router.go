// Package router wires HTTP paths to their handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/eknows/eknows-api/internal/auth"
	"github.com/eknows/eknows-api/internal/config"
	"github.com/eknows/eknows-api/internal/handler"
	"github.com/eknows/eknows-api/internal/middleware"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Auth     *handler.AuthHandler
	Teacher  *handler.TeacherHandler
	Admin    *handler.AdminHandler
	Subject  *handler.SubjectHandler
	Material *handler.MaterialHandler
}

// RegisterRoutes registers the full route table on the provided Echo
// instance.  Login and the legacy routes are open; the /api/teacher
// group requires a bearer token issued at login.  Admin read endpoints
// go through the response cache when Redis is available.
func RegisterRoutes(e *echo.Echo, h Handlers, registry *auth.Registry, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/health", handler.Health)

	// Login endpoints issue tokens and never require one.
	e.POST("/login", h.Auth.LoginForm)
	e.POST("/api/admin/login", h.Auth.AdminLogin)
	e.POST("/api/teacher/login", h.Auth.TeacherLogin)

	// Teacher panel endpoints sit behind the token registry.
	t := e.Group("/api/teacher")
	t.Use(middleware.BearerAuth(registry))
	t.POST("/dashboard-data", h.Teacher.DashboardData)
	t.GET("/get-subjects", h.Teacher.GetSubjects)
	t.POST("/add-subject", h.Teacher.AddSubject)
	t.POST("/delete-subject", h.Teacher.DeleteSubject)
	t.POST("/assign-subject", h.Teacher.AssignSubject)

	// Admin panel endpoints.  Reads are cacheable.
	a := e.Group("/api/admin")
	cached := middleware.ResponseCache(cacheCfg, rdb)
	a.GET("/get-subjects", h.Admin.GetSubjects, cached)
	a.GET("/get-programs", h.Admin.GetPrograms, cached)
	a.GET("/get-teachers", h.Admin.GetTeachers, cached)
	a.GET("/get-tracking-data", h.Admin.GetTrackingData, cached)
	a.POST("/add-program", h.Admin.AddProgram)
	a.POST("/delete-program", h.Admin.DeleteProgram)
	a.POST("/add-teacher", h.Admin.AddTeacher)
	a.POST("/delete-teacher", h.Admin.DeleteTeacher)

	// Legacy flat routes kept for the original panel pages.
	e.GET("/get-materials", h.Material.List)
	e.POST("/upload-material", h.Material.Upload)
	e.POST("/delete-material", h.Material.Delete)
	e.GET("/download", h.Material.Download)
	e.GET("/get-subjects", h.Subject.GetByTeacher)
	e.POST("/create-subject", h.Subject.Create)
	e.POST("/update-subject", h.Subject.Update)
	e.POST("/delete-subject", h.Subject.Delete)
	e.POST("/assign-subject", h.Subject.Assign)
}
