package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/towtrack/internal/pkg/logger"
)

// RequestLoggerMiddleware logs every HTTP request with latency and status
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("path", req.URL.Path),
				logger.Int("status", res.Status),
				logger.Duration("latency", time.Since(start)),
				logger.String("remote_ip", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, logger.Err(err))
				zapLogger.Error("HTTP request failed", fields...)
				return nil
			}

			zapLogger.Info("HTTP request", fields...)
			return nil
		}
	}
}
