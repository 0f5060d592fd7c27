package mongo

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"payrollCalc/internal/ports"
)

// kvDoc — документ коллекции kv: ключ как _id, значение — строка.
type kvDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

var _ ports.IKeyValue = (*KV)(nil)

// KV реализует ports.IKeyValue для MongoDB: один документ на ключ.
type KV struct {
	client *Client
	log    *slog.Logger
}

// NewKV возвращает key-value хранилище поверх подключённого клиента.
func NewKV(client *Client, log *slog.Logger) *KV {
	return &KV{client: client, log: log}
}

// Get возвращает значение по ключу; found == false, если документа нет.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDoc
	err := k.client.Coll().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		k.log.Debug("kv get failed", "key", key, "error", err)
		return "", false, err
	}
	return doc.Value, true, nil
}

// Set сохраняет значение по ключу (replace с upsert).
func (k *KV) Set(ctx context.Context, key, value string) error {
	opts := options.Replace().SetUpsert(true)
	_, err := k.client.Coll().ReplaceOne(ctx, bson.M{"_id": key}, kvDoc{Key: key, Value: value}, opts)
	if err != nil {
		k.log.Debug("kv set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Remove удаляет документ ключа; отсутствие — не ошибка.
func (k *KV) Remove(ctx context.Context, key string) error {
	_, err := k.client.Coll().DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		k.log.Debug("kv remove failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД.
func (k *KV) Ping(ctx context.Context) error {
	return k.client.Ping(ctx, nil)
}
