package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger логирует каждый запрос: метод, путь, статус, длительность, client IP.
// На /payroll/calculate длительность — это почти целиком ожидание внешнего
// сервиса расчёта, поэтому latency здесь важнее, чем обычно.
func RequestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	path := c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		path += "?" + q
	}
	slog.Info("request",
		"method", c.Request.Method,
		"path", path,
		"status", c.Writer.Status(),
		"ip", c.ClientIP(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
}
