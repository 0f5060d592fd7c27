package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/history"
	"payrollCalc/internal/infrastructure/redis"
	"payrollCalc/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisKV подключается к тестовому Redis и очищает его.
func setupRedisKV(t *testing.T) *redis.KV {
	t.Helper()

	client, err := redis.New(&redis.Config{
		Host:     redisContainer.Host,
		Port:     redisContainer.Port,
		Password: "",
		DB:       0,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	// Очищаем Redis перед каждым тестом
	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewKV(client, newTestLogger())
}

// =============================================================================
// Тесты Redis key-value хранилища
// =============================================================================

func TestRedisKV_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupRedisKV(t)
	ctx := context.Background()

	err := kv.Set(ctx, "payrollHistory", `[{"id":"a"}]`)
	require.NoError(t, err, "Set должен успешно сохранить")

	value, found, err := kv.Get(ctx, "payrollHistory")
	require.NoError(t, err, "Get должен успешно получить")
	assert.True(t, found, "ключ должен быть найден")
	assert.Equal(t, `[{"id":"a"}]`, value, "значение должно совпадать")
}

func TestRedisKV_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupRedisKV(t)

	value, found, err := kv.Get(context.Background(), "несуществующий_ключ")

	require.NoError(t, err, "Get несуществующего ключа не должен возвращать ошибку")
	assert.False(t, found, "ключ не должен быть найден")
	assert.Empty(t, value, "значение должно быть пустым")
}

func TestRedisKV_Remove(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupRedisKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "key", "value"))
	require.NoError(t, kv.Remove(ctx, "key"))

	_, found, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found, "ключ должен быть удалён")

	// Повторное удаление — не ошибка.
	assert.NoError(t, kv.Remove(ctx, "key"))
}

// =============================================================================
// История поверх Redis: полный флоу append → load → remove → clear
// =============================================================================

func TestRedisHistory_FullFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupRedisKV(t)
	store := history.NewStore(kv, newTestLogger())
	ctx := context.Background()

	// Сохраняем три расчёта
	for i := 0; i < 3; i++ {
		rec := domain.HistoryRecord{
			ID:        fmt.Sprintf("rec-%d", i),
			CreatedAt: int64(1000 + i),
			Input:     domain.CalculationInput{GrossPay: 3000},
			Result:    domain.CalculationResult{GrossPay: 3000, NetPay: 2500, TotalDiscount: 500},
		}
		require.True(t, store.Append(ctx, rec), "Append должен успешно сохранить")
	}

	// Загружаем: новые сначала
	records := store.Load(ctx)
	require.Len(t, records, 3)
	assert.Equal(t, "rec-2", records[0].ID, "первая запись — самая новая")

	// Удаляем одну
	require.True(t, store.Remove(ctx, "rec-1"))
	assert.Len(t, store.Load(ctx), 2)

	// Очищаем всё
	require.True(t, store.Clear(ctx))
	assert.Empty(t, store.Load(ctx))
}

func TestRedisHistory_CapEnforced(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupRedisKV(t)
	store := history.NewStore(kv, newTestLogger())
	ctx := context.Background()

	for i := 0; i < history.MaxRecords+5; i++ {
		rec := domain.HistoryRecord{
			ID:        fmt.Sprintf("rec-%d", i),
			CreatedAt: int64(i),
			Input:     domain.CalculationInput{GrossPay: 1000},
		}
		require.True(t, store.Append(ctx, rec))
	}

	records := store.Load(ctx)
	assert.Len(t, records, history.MaxRecords, "лимит истории должен соблюдаться и в Redis")
}
