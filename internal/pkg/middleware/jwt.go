package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/codeforher/backend/internal/pkg/jwt"
	"github.com/codeforher/backend/internal/pkg/models"
	"github.com/codeforher/backend/internal/utils"
)

// JWTAuthMiddleware authenticates requests with a Bearer access token and
// places the bound user id on the request context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			userID, err := jwtpkg.ValidateToken(parts[1], config.Secret, jwtpkg.TokenTypeAccess)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
