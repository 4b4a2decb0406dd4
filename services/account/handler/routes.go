package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/codeforher/backend/internal/pkg/middleware"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/services/account/handler/http"
)

// Handler coordinates the HTTP handlers for the account service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all account handlers
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the account routes
func (h *Handler) RegisterRoutes(api *echo.Group) {
	authGroup := api.Group("/auth")
	authGroup.POST("/signup", h.authHandler.Signup)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/refresh", h.authHandler.Refresh)

	protected := authGroup.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/users", h.userHandler.GetUsers)
	protected.GET("/users/:id", h.userHandler.GetUser)
	protected.PUT("/users/:id", h.userHandler.UpdateUser)
	protected.DELETE("/users/:id", h.userHandler.DeleteUser)
}
