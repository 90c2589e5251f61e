// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"interest/config"
	"interest/internal/delivery/admin"
	"interest/internal/delivery/api/middleware"
	"interest/internal/delivery/api/router/handler"
	deliverycontext "interest/internal/delivery/context"
	"interest/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Cfg             *config.Config
	AdminHandler    *handler.AdminHandler
	InterestHandler *handler.InterestHandler
	SessionHandler  *handler.SessionHandler
	AuthMiddleware  *middleware.AuthMiddleware
	CSRF            *admin.CSRF
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	adminHandler    *handler.AdminHandler
	interestHandler *handler.InterestHandler
	sessionHandler  *handler.SessionHandler
	authMiddleware  *middleware.AuthMiddleware
	csrf            *admin.CSRF
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Cfg,
		adminHandler:    params.AdminHandler,
		interestHandler: params.InterestHandler,
		sessionHandler:  params.SessionHandler,
		authMiddleware:  params.AuthMiddleware,
		csrf:            params.CSRF,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Admin pages require an administrator session and the form token
	adminGroup := e.Group(admin.MountPath)
	adminGroup.Use(echomiddleware.Secure())
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	adminGroup.Use(r.csrf.Middleware)
	{
		adminGroup.GET(admin.ProductsPath, r.adminHandler.ListSubscriptions)
		adminGroup.POST(admin.ProductsPath, r.adminHandler.ProcessBulkAction)
		adminGroup.GET(admin.ExportPath, r.adminHandler.ExportSubscriptions)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: r.cfg.HTTP.AllowOrigins,
		AllowMethods: []string{echo.GET, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
	}))
	apiV1.Use(r.authMiddleware.Authenticate)
	{
		apiV1.GET("/session", r.sessionHandler.GetSession)
		apiV1.GET("/products/:id/interest", r.interestHandler.GetProductInterest)
		apiV1.GET("/customers/:id/products", r.interestHandler.GetCustomerProducts)
	}

	// Subscriber lists are visible to store staff only
	staffGroup := apiV1.Group("")
	staffGroup.Use(r.authMiddleware.RequireAnyRole(entity.RoleAdmin.String(), entity.RoleShopManager.String()))
	{
		staffGroup.GET("/products/:id/subscribers", r.interestHandler.GetProductSubscribers)
	}
}
