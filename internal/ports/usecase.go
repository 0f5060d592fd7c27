package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"payrollCalc/internal/domain"
)

// IPayrollUseCase — контракт сессии расчёта: отправка формы, текущее
// состояние, история с пагинацией, регидрация формы из записи, удаление.
type IPayrollUseCase interface {
	Submit(ctx context.Context, in domain.CalculationInput) (*domain.CalculationResult, error)
	State() domain.SessionState
	History(ctx context.Context, page, pageSize int) (items []domain.HistoryRecord, total int)
	Rehydrate(ctx context.Context, id string) (*domain.CalculationInput, error)
	DeleteEntry(ctx context.Context, id string)
	ClearHistory(ctx context.Context)
	HandleCalculationEvent(ctx context.Context, rec domain.HistoryRecord) error
}
