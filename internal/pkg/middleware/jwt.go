package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/festshare/internal/pkg/context"
	jwtpkg "github.com/piresc/festshare/internal/pkg/jwt"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/internal/utils"
)

// UserIDKey is the echo context key holding the authenticated user ID
const UserIDKey = "user_id"

// JWTAuthMiddleware creates a middleware for JWT authentication
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

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if claims.UserID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set(UserIDKey, claims.UserID)
			c.SetRequest(c.Request().WithContext(appctx.WithUserID(c.Request().Context(), claims.UserID)))

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user ID set by JWTAuthMiddleware
func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}
