// Package memory — key-value хранилище в памяти процесса. Используется
// в тестах вместо реального бэкенда и как бэкенд без персистентности.
package memory

import (
	"context"
	"sync"

	"payrollCalc/internal/ports"
)

// KV реализует ports.IKeyValue поверх map с мьютексом.
type KV struct {
	mu   sync.RWMutex
	data map[string]string
}

// New создаёт пустое хранилище.
func New() *KV {
	return &KV{data: make(map[string]string)}
}

var _ ports.IKeyValue = (*KV)(nil)

// Get возвращает значение по ключу; found == false, если ключа нет.
func (m *KV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set сохраняет значение по ключу (перезаписывает).
func (m *KV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Remove удаляет ключ; отсутствие ключа — не ошибка.
func (m *KV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping всегда успешен.
func (m *KV) Ping(_ context.Context) error {
	return nil
}
