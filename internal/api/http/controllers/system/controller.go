package system

import (
	"log/slog"
	"net/http"

	"payrollCalc/internal/ports"

	"github.com/gin-gonic/gin"
)

// Controller — системные маршруты: liveness, readiness.
type Controller struct {
	kv  ports.IKeyValue
	log *slog.Logger
}

// New создаёт системный контроллер поверх активного key-value бэкенда.
func New(kv ports.IKeyValue, log *slog.Logger) *Controller {
	return &Controller{kv: kv, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	if err := c.kv.Ping(ctx.Request.Context()); err != nil {
		c.log.Warn("ready check failed", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
