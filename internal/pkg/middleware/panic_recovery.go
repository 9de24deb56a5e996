package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs the stack trace and returns a 500 response
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zapLogger.Error("Panic recovered in HTTP handler",
						logger.Err(err),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())))

					_ = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "internal server error",
					})
				}
			}()

			return next(c)
		}
	}
}
