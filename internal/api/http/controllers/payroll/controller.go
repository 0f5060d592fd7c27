package payroll

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/history"
	"payrollCalc/internal/ports"
)

// Controller — маршруты калькулятора: calculate, state, history и операции над историей.
type Controller struct {
	uc  ports.IPayrollUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.IPayrollUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/payroll")

	api.POST("/calculate", c.calculate)
	api.GET("/state", c.state)
	api.GET("/history", c.history)
	api.POST("/history/:id/rehydrate", c.rehydrate)
	api.DELETE("/history/:id", c.deleteEntry)
	api.DELETE("/history", c.clearHistory)
}

// @Summary Рассчитать чистую зарплату
// @Description Валидирует форму, вызывает внешний сервис расчёта INSS/IRRF и возвращает разбивку удержаний. Успешный расчёт попадает в историю.
// @Tags payroll
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Параметры расчёта"
// @Success 200 {object} domain.CalculationResult "Разбивка расчёта"
// @Failure 400 {object} ValidationResponse "Полевые ошибки валидации"
// @Failure 502 {object} ErrorResponse "Сбой обращения к сервису расчёта"
// @Router /api/v1/payroll/calculate [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request: " + err.Error()})
		return
	}

	result, err := c.uc.Submit(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			c.log.Warn("calculate validation failed", "error", err)
			ctx.JSON(http.StatusBadRequest, ValidationResponse{Errors: verrs})
			return
		}
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			ctx.JSON(remoteStatus(apiErr), ErrorResponse{Message: apiErr.Message})
			return
		}
		c.log.Error("calculate failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// remoteStatus выбирает HTTP-статус по виду ошибки удалённого сервиса:
// отказ сервера с клиентским статусом пробрасываем как есть, остальное — 502.
func remoteStatus(apiErr *domain.APIError) int {
	if apiErr.Kind == domain.KindRemoteCalculationFailed && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

// @Summary Текущее состояние сессии расчёта
// @Tags payroll
// @Produce json
// @Success 200 {object} domain.SessionState
// @Router /api/v1/payroll/state [get]
func (c *Controller) state(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.uc.State())
}

// @Summary Страница истории расчётов
// @Description Возвращает страницу истории (новые сначала), размер страницы 5.
// @Tags payroll
// @Produce json
// @Param page query int false "Номер страницы (с нуля)"
// @Success 200 {object} HistoryResponse
// @Router /api/v1/payroll/history [get]
func (c *Controller) history(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	items, total := c.uc.History(ctx.Request.Context(), page, history.DefaultPageSize)
	ctx.JSON(http.StatusOK, HistoryResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: (total + history.DefaultPageSize - 1) / history.DefaultPageSize,
	})
}

// @Summary Регидрация формы из записи истории
// @Description Возвращает сохранённый ввод для заполнения формы и сбрасывает сессию в Idle. Запись истории не изменяется.
// @Tags payroll
// @Produce json
// @Success 200 {object} RehydrateResponse
// @Failure 404 {object} ErrorResponse "Записи с таким id нет"
// @Router /api/v1/payroll/history/{id}/rehydrate [post]
func (c *Controller) rehydrate(ctx *gin.Context) {
	in, err := c.uc.Rehydrate(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
		c.log.Error("rehydrate failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, RehydrateResponse{FormData: *in, ScrollToTop: true})
}

// @Summary Удалить запись истории
// @Description Отсутствие записи — no-op, ответ всё равно 204.
// @Tags payroll
// @Success 204
// @Router /api/v1/payroll/history/{id} [delete]
func (c *Controller) deleteEntry(ctx *gin.Context) {
	c.uc.DeleteEntry(ctx.Request.Context(), ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}

// @Summary Очистить всю историю
// @Tags payroll
// @Success 204
// @Router /api/v1/payroll/history [delete]
func (c *Controller) clearHistory(ctx *gin.Context) {
	c.uc.ClearHistory(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}
