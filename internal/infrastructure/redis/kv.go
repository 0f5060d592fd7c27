package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"payrollCalc/internal/ports"
)

var _ ports.IKeyValue = (*KV)(nil)

// KV реализует ports.IKeyValue через Redis. Значения — строки как есть
// (история хранится одним JSON-документом под своим ключом).
type KV struct {
	cli *Client
	log *slog.Logger
}

// NewKV возвращает key-value хранилище поверх подключённого клиента.
func NewKV(cli *Client, log *slog.Logger) *KV {
	return &KV{cli: cli, log: log}
}

// Get возвращает значение по ключу. Если ключа нет — found == false.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	s, err := k.cli.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return "", false, nil
		}
		k.log.Debug("kv get failed", "key", key, "error", err)
		return "", false, err
	}
	return s, true, nil
}

// Set сохраняет значение по ключу без TTL (история живёт до явного удаления).
func (k *KV) Set(ctx context.Context, key, value string) error {
	if err := k.cli.Client.Set(ctx, key, value, 0).Err(); err != nil {
		k.log.Debug("kv set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Remove удаляет ключ; отсутствие ключа — не ошибка (Del это допускает).
func (k *KV) Remove(ctx context.Context, key string) error {
	if err := k.cli.Client.Del(ctx, key).Err(); err != nil {
		k.log.Debug("kv remove failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение (для readiness).
func (k *KV) Ping(ctx context.Context) error {
	return k.cli.Ping(ctx)
}
