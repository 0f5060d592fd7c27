// Package payrollapi — клиент внешнего сервиса расчёта зарплаты (INSS/IRRF).
// Сама налоговая математика живёт на сервере; здесь только контракт запроса/ответа.
package payrollapi

import (
	"log/slog"
	"net/http"
	"time"

	"payrollCalc/internal/ports"
)

// Config — настройки клиента. Переменные: PAYROLL_API_URL, PAYROLL_API_TIMEOUT.
type Config struct {
	URL     string        `envconfig:"URL" default:"https://payroll.awesomeapps.cloud/payroll"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Client реализует ports.ICalculator поверх net/http.
type Client struct {
	http *http.Client
	url  string
	log  *slog.Logger
}

var _ ports.ICalculator = (*Client)(nil)

// New создаёт клиент по конфигу.
func New(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil {
		cfg = &Config{URL: "https://payroll.awesomeapps.cloud/payroll", Timeout: 30 * time.Second}
	}
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		url:  cfg.URL,
		log:  log,
	}
}
