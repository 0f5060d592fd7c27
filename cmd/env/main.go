// Обучающий пример: godotenv + envconfig в одном файле.
//
// godotenv — загружает переменные из файла .env в os.Environ (локальная разработка).
// envconfig — заполняет структуру из переменных окружения по тегам env.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ServerConfig — настройки HTTP-сервера (вложенная структура).
// При префиксе PAYROLL и теге SERVER переменные: PAYROLL_SERVER_HOST, PAYROLL_SERVER_PORT.
type ServerConfig struct {
	Host string `env:"HOST" default:"0.0.0.0"`
	Port string `env:"PORT" default:"8080"`
}

// APIConfig — настройки клиента внешнего сервиса расчёта (вложенная структура).
// При префиксе PAYROLL и теге API переменные: PAYROLL_API_URL, PAYROLL_API_TIMEOUT.
type APIConfig struct {
	URL     string `env:"URL" default:"https://payroll.awesomeapps.cloud/payroll"`
	Timeout string `env:"TIMEOUT" default:"30s"`
}

// Config — конфиг приложения. Префикс "PAYROLL" задаётся в Process("PAYROLL", &cfg).
// Все переменные: PAYROLL_LOG_LEVEL, PAYROLL_SERVER_HOST, PAYROLL_API_URL, ...
type Config struct {
	LogLevel string       `env:"LOG_LEVEL" default:"info"`
	Server   ServerConfig `env:"SERVER"`
	API      APIConfig    `env:"API"`
}

func main() {
	// --- godotenv: загрузка .env в окружение ---
	// Load читает файл .env и добавляет пары KEY=VALUE в os.Environ.
	// Если файла нет — ошибка. Игнорируем её: в прод обычно .env не используют.
	if err := godotenv.Load(); err != nil {
		log.Printf("файл .env не найден (игнорируем): %v", err)
	}
	// После Load() переменные из .env доступны через os.Getenv("PAYROLL_API_URL") и т.д.

	// --- envconfig: заполнение структуры из окружения ---
	// Process("PAYROLL", &cfg) — префикс PAYROLL, переменные: PAYROLL_SERVER_HOST и т.д.
	var cfg Config
	if err := envconfig.Process("PAYROLL", &cfg); err != nil {
		log.Fatalf("ошибка конфига: %v", err)
	}

	// Используем конфиг
	fmt.Println("Конфиг из env (префикс PAYROLL):")
	fmt.Printf("  LogLevel: %s\n", cfg.LogLevel)
	fmt.Printf("  Server:   %s:%s\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("  API:      url=%s timeout=%s\n", cfg.API.URL, cfg.API.Timeout)

	if v := os.Getenv("PAYROLL_SERVER_PORT"); v != "" {
		fmt.Printf("  os.Getenv(\"PAYROLL_SERVER_PORT\") = %q\n", v)
	}
}
