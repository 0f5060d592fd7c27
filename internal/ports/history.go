package ports

//go:generate mockgen -source=history.go -destination=../mocks/history_mock.go -package=mocks

import (
	"context"

	"payrollCalc/internal/domain"
)

// IHistoryStore — контракт хранилища истории расчётов: упорядоченный список
// записей с жёстким лимитом размера. Append/Remove/Clear возвращают false,
// если изменение не удалось сохранить (деградация, не ошибка вызова).
type IHistoryStore interface {
	Load(ctx context.Context) []domain.HistoryRecord
	Append(ctx context.Context, rec domain.HistoryRecord) bool
	Remove(ctx context.Context, id string) bool
	Clear(ctx context.Context) bool
}
