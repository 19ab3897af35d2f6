package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eknows/eknows-api/internal/auth"
	"github.com/eknows/eknows-api/internal/queue"
	"github.com/eknows/eknows-api/internal/service"
)

// AuthHandler bundles dependencies for the login endpoints.
type AuthHandler struct {
	Auth     *auth.Authenticator
	Store    auth.Store
	Registry *auth.Registry
	Audit    *service.AuditPublisher // optional; nil disables the audit trail
}

func NewAuthHandler(a *auth.Authenticator, store auth.Store, registry *auth.Registry, audit *service.AuditPublisher) *AuthHandler {
	return &AuthHandler{Auth: a, Store: store, Registry: registry, Audit: audit}
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginForm handles POST /login with a URL-encoded form body.  This is the
// plain login used by the student-facing pages; no token is issued.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	username := c.FormValue("username")
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing username"})
	}
	password := c.FormValue("password")
	if password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Auth.Login(ctx, username, password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Database error"})
	}
	h.audit(c, username, res)

	if res == auth.ResultSuccess {
		return c.JSON(http.StatusOK, echo.Map{"message": "Login successful"})
	}
	// Locked accounts are not distinguished on this endpoint.
	return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
}

// AdminLogin handles POST /api/admin/login with a JSON body and issues a
// bearer token on success.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.apiLogin(c, "Admin", "./admin_panel.html")
}

// TeacherLogin handles POST /api/teacher/login.
func (h *AuthHandler) TeacherLogin(c echo.Context) error {
	return h.apiLogin(c, "Teacher", "./teacher_panel.html")
}

// apiLogin implements the shared JSON login flow.  Missing fields bind to
// empty strings (the parser never rejects a structurally valid body), so
// the required-field check lives here.  The response carries the account's
// stored display name; label is the fallback when none is recorded.
func (h *AuthHandler) apiLogin(c echo.Context, label, redirect string) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid JSON"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid JSON"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database error"})
	}
	h.audit(c, req.Username, res)

	switch res {
	case auth.ResultSuccess:
		userID, err := h.Store.GetUserID(ctx, req.Username)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Database error"})
		}
		name, err := h.Store.GetName(ctx, req.Username)
		if err != nil || name == "" {
			name = label
		}
		token := h.Registry.Issue(userID)
		return c.JSON(http.StatusOK, echo.Map{
			"success":  true,
			"id":       userID,
			"token":    token,
			"name":     name,
			"redirect": redirect,
		})
	case auth.ResultLocked:
		return c.JSON(http.StatusLocked, echo.Map{
			"success": false,
			"message": "Account locked due to too many failed attempts",
		})
	default:
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}
}

// audit publishes a login event, fire-and-forget.
func (h *AuthHandler) audit(c echo.Context, username string, res auth.Result) {
	if h.Audit == nil {
		return
	}
	_ = h.Audit.Publish(c.Request().Context(), queue.LoginEvent{
		Username: username,
		Outcome:  res.String(),
		RemoteIP: c.RealIP(),
		At:       time.Now().UTC(),
	})
}
