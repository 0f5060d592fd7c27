package ports

//go:generate mockgen -source=calculator.go -destination=../mocks/calculator_mock.go -package=mocks

import (
	"context"

	"payrollCalc/internal/domain"
)

// ICalculator — контракт клиента удалённого сервиса расчёта зарплаты.
// Ровно один исходящий запрос на вызов, без ретраев. Неуспех приходит
// как *domain.APIError с видом ошибки и сообщением.
type ICalculator interface {
	Calculate(ctx context.Context, in domain.CalculationInput) (*domain.CalculationResult, error)
}
