package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/infrastructure/click"
	"payrollCalc/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupClickWriter(t *testing.T) (*click.CalculationWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewCalculationWriter(client)

	// Создаём таблицу
	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	// Очищаем таблицу перед тестом
	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.payroll_calculations")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

// =============================================================================
// Тест ClickHouse writer
// =============================================================================

func TestClickWriter_WriteCalculation(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	rec := domain.HistoryRecord{
		ID:        "click-rec",
		CreatedAt: time.Now().UnixMilli(),
		Input: domain.CalculationInput{
			GrossPay:            3000,
			NumberOfDependents:  2,
			FixedAmountDiscount: 100,
			PercentageDiscount:  10,
			SimplifiedDeduction: true,
		},
		Result: domain.CalculationResult{
			GrossPay:      3000,
			NetPay:        2450,
			TotalDiscount: 550,
		},
	}

	err := writer.WriteCalculation(ctx, rec)
	require.NoError(t, err, "WriteCalculation должен успешно записать")

	// Проверяем, что строка действительно легла в таблицу
	var count uint64
	err = client.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM default.payroll_calculations WHERE id = ?", rec.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count, "в таблице должна быть ровно одна строка")
}

func TestClickWriter_EnsureTableIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, _ := setupClickWriter(t)

	// Повторный вызов не должен падать: CREATE TABLE IF NOT EXISTS.
	assert.NoError(t, writer.EnsureTable(context.Background()))
}
