package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/service"
	mockservice "interest/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(req *http.Request)
		mockSetup    func(tokenSvc *mockservice.MockTokenService)
		expectedCode int
		expectedBody string
	}{
		{
			name:         "no credentials",
			setup:        func(*http.Request) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "UNAUTHORIZED",
		},
		{
			name: "not a bearer header",
			setup: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Basic Ym9iOnB3")
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "UNAUTHORIZED",
		},
		{
			name: "invalid token",
			setup: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
			},
			mockSetup: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "TOKEN_INVALID",
		},
		{
			name: "valid header",
			setup: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer good")
			},
			mockSetup: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 7, Roles: []string{"admin"}}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "valid cookie",
			setup: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "good"})
			},
			mockSetup: func(tokenSvc *mockservice.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 7, Roles: []string{"admin"}}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.mockSetup != nil {
				tt.mockSetup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			require.NoError(t, m.Authenticate(okHandler)(c))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			if tt.expectedCode == http.StatusNoContent {
				userID, ok := GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, int64(7), userID)
				assert.True(t, IsAdmin(c))

				ctxUserID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
				assert.True(t, ok)
				assert.Equal(t, int64(7), ctxUserID)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	tests := []struct {
		name         string
		roles        []string
		middleware   echo.MiddlewareFunc
		expectedCode int
	}{
		{name: "admin passes", roles: []string{"admin"}, middleware: m.RequireRole("admin"), expectedCode: http.StatusNoContent},
		{name: "user rejected", roles: []string{"customer"}, middleware: m.RequireRole("admin"), expectedCode: http.StatusForbidden},
		{name: "no roles rejected", middleware: m.RequireRole("admin"), expectedCode: http.StatusForbidden},
		{name: "any role passes", roles: []string{"shop_manager"}, middleware: m.RequireAnyRole("admin", "shop_manager"), expectedCode: http.StatusNoContent},
		{name: "any role rejected", roles: []string{"customer"}, middleware: m.RequireAnyRole("admin", "shop_manager"), expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.roles != nil {
				c.Set(contextKeyRoles, tt.roles)
			}

			require.NoError(t, tt.middleware(okHandler)(c))

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestIsStaff(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.False(t, IsStaff(c))

	c.Set(contextKeyRoles, []string{"shop_manager"})
	assert.True(t, IsStaff(c))
	assert.False(t, IsAdmin(c))
}
