package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"payrollCalc/internal/domain"
)

// ICalculationAnalytics — запись завершённых расчётов в аналитическое
// хранилище (например, ClickHouse).
type ICalculationAnalytics interface {
	WriteCalculation(ctx context.Context, rec domain.HistoryRecord) error
}
