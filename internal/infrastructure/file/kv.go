package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"payrollCalc/internal/ports"
)

// KV реализует ports.IKeyValue: значение ключа K лежит в файле <dir>/K.json.
// Запись атомарна с точки зрения читателя: пишем во временный файл и переименовываем.
type KV struct {
	dir string
	mu  sync.Mutex
}

var _ ports.IKeyValue = (*KV)(nil)

func (f *KV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get читает значение ключа; found == false, если файла нет.
func (f *KV) Get(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("file get %q: %w", key, err)
	}
	return string(raw), true, nil
}

// Set записывает значение через временный файл + rename.
func (f *KV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("file set %q: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("file set %q: %w", key, err)
	}
	return nil
}

// Remove удаляет файл ключа; отсутствие файла — не ошибка.
func (f *KV) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file remove %q: %w", key, err)
	}
	return nil
}

// Ping проверяет, что каталог хранилища доступен.
func (f *KV) Ping(_ context.Context) error {
	_, err := os.Stat(f.dir)
	return err
}
