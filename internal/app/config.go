package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"payrollCalc/internal/api/http"
	"payrollCalc/internal/infrastructure/click"
	"payrollCalc/internal/infrastructure/file"
	"payrollCalc/internal/infrastructure/kafka"
	"payrollCalc/internal/infrastructure/mongo"
	"payrollCalc/internal/infrastructure/payrollapi"
	"payrollCalc/internal/infrastructure/pg"
	"payrollCalc/internal/infrastructure/redis"
)

const AppName = "PAYROLL"

// StorageConfig — выбор key-value бэкенда истории. Переменная: PAYROLL_STORAGE_BACKEND
// (file | memory | redis | pg | mongo).
type StorageConfig struct {
	Backend string `env:"BACKEND" default:"file"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом PAYROLL.
type Config struct {
	LogLevel   string            `env:"LOG_LEVEL" default:"info"`
	Server     http.ServerConfig `env:"SERVER"`
	API        payrollapi.Config `env:"API"`
	Storage    StorageConfig     `env:"STORAGE"`
	File       file.Config       `env:"FILE"`
	DB         pg.Config         `env:"DB"`
	Redis      redis.Config      `env:"REDIS"`
	Mongo      mongo.Config      `env:"MONGO"`
	Kafka      kafka.Config      `env:"KAFKA"`
	ClickHouse click.Config      `env:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
