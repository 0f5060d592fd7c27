package click

import (
	"context"
	"fmt"
	"time"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/ports"
)

const calculationsTableFull = "default.payroll_calculations"

// CalculationWriter пишет завершённые расчёты в ClickHouse плоскими строками,
// удобными для агрегатов (средний totalDiscount по месяцам и т.п.).
type CalculationWriter struct {
	db *Client
}

var _ ports.ICalculationAnalytics = (*CalculationWriter)(nil)

// NewCalculationWriter создаёт писатель расчётов для аналитики.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db}
}

// EnsureTable создаёт таблицу расчётов, если её ещё нет. Вызови один раз при старте приложения.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id String,
			gross_pay Float64,
			net_pay Float64,
			total_discount Float64,
			dependents Int32,
			fixed_discount Float64,
			percentage_discount Float64,
			simplified_deduction UInt8,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, id)
		PARTITION BY toYYYYMM(created_at)`,
		calculationsTableFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.ICalculationAnalytics: пишет одну запись расчёта.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, rec domain.HistoryRecord) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, gross_pay, net_pay, total_discount, dependents, fixed_discount, percentage_discount, simplified_deduction, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		calculationsTableFull,
	)
	simplified := uint8(0)
	if rec.Input.SimplifiedDeduction {
		simplified = 1
	}
	_, err := w.db.DB().ExecContext(ctx, query,
		rec.ID,
		rec.Result.GrossPay,
		rec.Result.NetPay,
		rec.Result.TotalDiscount,
		int32(rec.Input.NumberOfDependents),
		rec.Input.FixedAmountDiscount,
		rec.Input.PercentageDiscount,
		simplified,
		time.UnixMilli(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}
