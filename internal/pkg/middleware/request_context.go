package middleware

import (
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/festshare/internal/pkg/context"
)

// RequestIDMiddleware propagates or generates X-Request-ID and stores it on the request context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := appctx.WithRequestID(c.Request().Context(), c.Request().Header.Get(echo.HeaderXRequestID))
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, appctx.GetRequestID(ctx))

			return next(c)
		}
	}
}
