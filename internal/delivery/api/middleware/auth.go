package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"interest/internal/delivery/api/response"
	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/entity"
	domainerrors "interest/internal/domain/errors"
	"interest/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	// AccessTokenCookie carries the access token for browser sessions of the admin page
	AccessTokenCookie = "access_token"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token from the Authorization header or the access token cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Fail(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Fail(c, domainerrors.ErrTokenInvalid)
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, claims.Roles)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		ctx = deliverycontext.EnrichLogger(ctx, slog.Int64("user_id", claims.UserID))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !slices.Contains(roles, requiredRole) {
				return response.Fail(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// RequireAnyRole passes requests whose user holds at least one of roles.
func (m *AuthMiddleware) RequireAnyRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRoles, _ := GetRoles(c)
			for _, role := range roles {
				if slices.Contains(userRoles, role) {
					return next(c)
				}
			}

			return response.Fail(c, domainerrors.ErrForbidden)
		}
	}
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(contextKeyUserID).(int64)

	return userID, ok
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}

// IsAdmin reports whether the request runs in an administrative context.
func IsAdmin(c echo.Context) bool {
	roles, ok := GetRoles(c)

	return ok && slices.Contains(roles, entity.RoleAdmin.String())
}

// IsStaff reports whether the user may manage subscriptions of other customers.
func IsStaff(c echo.Context) bool {
	roles, ok := GetRoles(c)

	return ok && entity.RolesFromStrings(roles).CanManageSubscriptions()
}

func bearerToken(c echo.Context) (string, bool) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return "", false
		}

		return tokenString, true
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}
