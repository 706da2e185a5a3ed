package middleware

import (
	"time"

	"app/internal/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger は1リクエスト1行のアクセスログ。
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
			)

			return err
		}
	}
}
