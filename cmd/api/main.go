// Обучающий пример: версионирование API на gin.
//
// v1 отдаёт только netPay; v2 добавляет разбивку удержаний. Версионирование
// позволяет развивать API без breaking changes: старые клиенты продолжают
// работать с v1, новые получают расширенный ответ в v2.
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// EstimateResponse — ответ v1: только итог.
type EstimateResponse struct {
	NetPay float64 `json:"netPay"`
}

// DiscountLine — одна строка разбивки удержаний (v2).
type DiscountLine struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// EstimateResponseV2 — расширенный ответ v2: итог плюс разбивка.
type EstimateResponseV2 struct {
	GrossPay      float64        `json:"grossPay"`
	NetPay        float64        `json:"netPay"`
	TotalDiscount float64        `json:"totalDiscount"`
	Discounts     []DiscountLine `json:"discounts"`
}

// parseQuery читает параметры оценки из query string.
// Имена совпадают с контрактом внешнего сервиса расчёта.
func parseQuery(c *gin.Context) (gross, fixed, pct float64, ok bool) {
	var err error
	if gross, err = strconv.ParseFloat(c.DefaultQuery("grossPay", "0"), 64); err != nil || gross <= 0 {
		return 0, 0, 0, false
	}
	if fixed, err = strconv.ParseFloat(c.DefaultQuery("fixedAmountDiscount", "0"), 64); err != nil || fixed < 0 {
		return 0, 0, 0, false
	}
	if pct, err = strconv.ParseFloat(c.DefaultQuery("percentangeDiscount", "0"), 64); err != nil || pct < 0 || pct > 100 {
		return 0, 0, 0, false
	}
	return gross, fixed, pct, true
}

// estimate грубо оценивает чистую зарплату по введённым скидкам.
// Настоящие INSS/IRRF считает внешний сервис; здесь упрощённая локальная версия.
func estimate(gross, fixed, pct float64) (net float64, lines []DiscountLine) {
	lines = []DiscountLine{}
	if fixed > 0 {
		lines = append(lines, DiscountLine{Name: "Desconto fixo", Value: fixed})
	}
	if pct > 0 {
		lines = append(lines, DiscountLine{Name: "Desconto percentual", Value: gross * pct / 100})
	}
	net = gross
	for _, l := range lines {
		net -= l.Value
	}
	if net < 0 {
		net = 0
	}
	return net, lines
}

// estimateHandler — v1: возвращает только netPay.
func estimateHandler(c *gin.Context) {
	gross, fixed, pct, ok := parseQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректные параметры оценки"})
		return
	}

	net, _ := estimate(gross, fixed, pct)
	c.JSON(http.StatusOK, EstimateResponse{NetPay: net})
}

// estimateHandlerV2 — v2: тот же расчёт, но с разбивкой удержаний.
// v1 остаётся стабильным, v2 добавляет поля — клиенты мигрируют по готовности.
func estimateHandlerV2(c *gin.Context) {
	gross, fixed, pct, ok := parseQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "некорректные параметры оценки"})
		return
	}

	net, lines := estimate(gross, fixed, pct)
	c.JSON(http.StatusOK, EstimateResponseV2{
		GrossPay:      gross,
		NetPay:        net,
		TotalDiscount: gross - net,
		Discounts:     lines,
	})
}

// setupRouter настраивает роутер и регистрирует версионированные маршруты.
func setupRouter() *gin.Engine {
	// Устанавливаем режим release для production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// v1 — базовая версия: только итог
	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/estimate", estimateHandler)
	}

	// v2 — расширенная версия: итог плюс разбивка удержаний
	apiV2 := r.Group("/api/v2")
	{
		apiV2.GET("/estimate", estimateHandlerV2)
	}

	// Корневой маршрут
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":  "payrollCalc estimate API",
			"versions": []string{"v1", "v2"},
		})
	})

	return r
}

func main() {
	// Хардкод конфигурации
	serverHost := "0.0.0.0"
	serverPort := "8080"

	router := setupRouter()

	// HTTP сервер с настройками для production
	server := &http.Server{
		Addr:           serverHost + ":" + serverPort,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}
