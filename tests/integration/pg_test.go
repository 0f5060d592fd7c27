package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/history"
	"payrollCalc/internal/infrastructure/pg"
	"payrollCalc/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupPgKV подключается к тестовой БД, прогоняет миграцию и очищает таблицу kv.
func setupPgKV(t *testing.T) *pg.KV {
	t.Helper()

	ctx := context.Background()

	db, err := pg.New(&pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")

	// Миграция создаёт таблицу kv, если её ещё нет
	require.NoError(t, pg.Migrate(ctx, db), "не удалось прогнать миграцию")

	// Очищаем таблицу перед каждым тестом
	_, err = db.ExecContext(ctx, "TRUNCATE TABLE kv")
	require.NoError(t, err, "не удалось очистить таблицу kv")

	t.Cleanup(func() {
		db.Close()
	})

	return pg.NewKV(db, newTestLogger())
}

// =============================================================================
// Тесты PostgreSQL key-value хранилища
// =============================================================================

func TestPgKV_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupPgKV(t)
	ctx := context.Background()

	err := kv.Set(ctx, "payrollHistory", `[{"id":"a"}]`)
	require.NoError(t, err, "Set должен успешно сохранить")

	value, found, err := kv.Get(ctx, "payrollHistory")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, value)
}

func TestPgKV_Upsert(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupPgKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "key", "first"))
	require.NoError(t, kv.Set(ctx, "key", "second"))

	value, found, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", value, "значение должно быть перезаписано")
}

func TestPgKV_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupPgKV(t)

	value, found, err := kv.Get(context.Background(), "ghost")
	require.NoError(t, err, "отсутствие строки — не ошибка")
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestPgKV_Remove(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupPgKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "key", "value"))
	require.NoError(t, kv.Remove(ctx, "key"))

	_, found, err := kv.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)

	// Удаление отсутствующего ключа — no-op
	assert.NoError(t, kv.Remove(ctx, "key"))
}

func TestPgKV_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupPgKV(t)

	assert.NoError(t, kv.Ping(context.Background()), "Ping должен успешно проверить соединение")
}

// =============================================================================
// История поверх PostgreSQL
// =============================================================================

func TestPgHistory_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	kv := setupPgKV(t)
	store := history.NewStore(kv, newTestLogger())
	ctx := context.Background()

	want := domain.HistoryRecord{
		ID:        "pg-rec",
		CreatedAt: 1700000000000,
		Input: domain.CalculationInput{
			GrossPay:            4500,
			NumberOfDependents:  2,
			FixedAmountDiscount: 100,
			PercentageDiscount:  5,
			SimplifiedDeduction: true,
		},
		Result: domain.CalculationResult{
			GrossPay:      4500,
			NetPay:        3800,
			TotalDiscount: 700,
			Discounts:     []domain.DiscountLine{{Name: "INSS", Value: 700}},
		},
	}

	require.True(t, store.Append(ctx, want))

	records := store.Load(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, want, records[0], "запись должна пережить сериализацию без потерь")
}
