package handler

import (
	"net/http"

	"interest/internal/delivery/api/middleware"
	"interest/internal/delivery/api/response"
	domainerrors "interest/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SessionResponse describes the caller behind the access token
type SessionResponse struct {
	UserID  int64    `json:"user_id"`
	Roles   []string `json:"roles"`
	IsAdmin bool     `json:"is_admin"`
}

// SessionHandler reports the authenticated caller
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// GetSession returns the user ID and roles set by the auth middleware
func (h *SessionHandler) GetSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Fail(c, domainerrors.ErrUnauthorized)
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return response.Fail(c, domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		UserID:  userID,
		Roles:   roles,
		IsAdmin: middleware.IsAdmin(c),
	})
}

// HealthCheck reports that the server is accepting requests
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
