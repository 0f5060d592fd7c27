package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"payrollCalc/internal/ports"
)

var _ ports.IKeyValue = (*KV)(nil)

// KV реализует ports.IKeyValue поверх таблицы kv (k TEXT PRIMARY KEY, v TEXT).
type KV struct {
	db  *DB
	log *slog.Logger
}

// NewKV возвращает key-value хранилище поверх подключённого пула.
func NewKV(db *DB, log *slog.Logger) *KV {
	return &KV{db: db, log: log}
}

// Get возвращает значение по ключу; found == false, если строки нет.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := k.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		k.log.Debug("kv get failed", "key", key, "error", err)
		return "", false, err
	}
	return v, true, nil
}

// Set сохраняет значение по ключу (upsert).
func (k *KV) Set(ctx context.Context, key, value string) error {
	_, err := k.db.ExecContext(ctx,
		`INSERT INTO kv (k, v) VALUES ($1, $2)
		 ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v`,
		key, value)
	if err != nil {
		k.log.Debug("kv set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Remove удаляет ключ; отсутствие строки — не ошибка.
func (k *KV) Remove(ctx context.Context, key string) error {
	_, err := k.db.ExecContext(ctx, `DELETE FROM kv WHERE k = $1`, key)
	if err != nil {
		k.log.Debug("kv remove failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (k *KV) Ping(ctx context.Context) error {
	return k.db.Ping(ctx)
}
