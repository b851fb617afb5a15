package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/festshare/internal/pkg/context"
)

// ZapEchoMiddleware creates request logging middleware for Echo using Zap
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)
			if err != nil {
				// let echo's error handler write the response so the status is final
				c.Error(err)
			}

			latency := time.Since(start)
			if raw != "" {
				path = path + "?" + raw
			}

			userID := appctx.GetUserID(c.Request().Context())
			if userID == "" {
				userID = "anonymous"
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			logger.LogHTTPRequest(c.Request().Method, path, c.RealIP(), userID, requestID, c.Response().Status, latency, err)

			return nil
		}
	}
}
