package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Request структура для входящего запроса формы
type Request struct {
	GrossPay            float64 `json:"grossPay"`
	NumberOfDependents  int     `json:"numberOfDependents"`
	FixedAmountDiscount float64 `json:"fixedAmountDiscount"`
	PercentageDiscount  float64 `json:"percentangeDiscount"`
	SimplifiedDeduction bool    `json:"simplifiedDeduction"`
}

// Entry структура для хранения истории расчётов
type Entry struct {
	ID        string    `json:"id"`
	Request   Request   `json:"formData"`
	NetPay    float64   `json:"netPay"`
	Timestamp time.Time `json:"timestamp"`
}

// Response структура для ответа
type Response struct {
	NetPay float64 `json:"netPay"`
	Error  string  `json:"error,omitempty"`
}

// entries - слайс для хранения истории расчётов (аналог БД)
var entries []Entry

// calculateUsecase грубо оценивает чистую зарплату и сохраняет запись в историю.
// Настоящие INSS/IRRF считает внешний сервис; это упрощённая локальная версия.
func calculateUsecase(req Request) (string, float64) {
	if req.GrossPay <= 0 {
		return "grossPay должен быть положительным", 0
	}

	net := req.GrossPay - req.FixedAmountDiscount - req.GrossPay*req.PercentageDiscount/100
	if net < 0 {
		net = 0
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Request:   req,
		NetPay:    net,
		Timestamp: time.Now(),
	}
	entries = append(entries, entry)

	return "", net
}

// calculateHandler обрабатывает запросы на расчёт
func calculateHandler(c *gin.Context) {
	var req Request

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Error: "Неверный формат JSON: " + err.Error()})
		return
	}

	msg, net := calculateUsecase(req)
	if msg != "" {
		c.JSON(http.StatusBadRequest, Response{Error: msg})
		return
	}

	c.JSON(http.StatusOK, Response{NetPay: net})
}

// historyHandler выводит историю всех расчётов
func historyHandler(c *gin.Context) {
	if len(entries) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "История расчётов пуста",
			"entries": []Entry{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

func main() {
	// Создаём роутер gin
	r := gin.Default()

	// Регистрируем хэндлеры
	r.POST("/calculate", calculateHandler)
	r.GET("/history", historyHandler)

	// Запускаем сервер на порту 8080
	r.Run(":8080")
}
