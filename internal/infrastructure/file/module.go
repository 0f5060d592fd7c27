// Package file — key-value хранилище в файлах: один JSON-документ на ключ
// в каталоге профиля. Локальный аналог localStorage браузера, бэкенд по умолчанию.
package file

import (
	"fmt"
	"os"
)

// Config — настройки файлового хранилища. Переменные: PAYROLL_FILE_DIR.
type Config struct {
	Dir string `envconfig:"DIR" default:"./data"`
}

// New создаёт хранилище и каталог под него, если его ещё нет.
func New(cfg *Config) (*KV, error) {
	if cfg == nil {
		cfg = &Config{Dir: "./data"}
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("file storage dir: %w", err)
	}
	return &KV{dir: cfg.Dir}, nil
}
