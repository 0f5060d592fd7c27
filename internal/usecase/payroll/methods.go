package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/history"
)

// Submit — один пользовательский расчёт. Невалидный ввод возвращается как
// ValidationErrors, состояние сессии не трогаем и запрос не шлём. Валидный
// ввод сразу переводит сессию в Loading (прошлый результат/ошибка очищаются
// ещё до завершения нового запроса, чтобы не показывать устаревшее).
// Успех истории не обязан: деградация хранилища логируется и не валит расчёт.
//
// Запросы не отменяются: при повторной отправке до завершения первой
// побеждает тот ответ, который пришёл последним.
func (u *UseCase) Submit(ctx context.Context, in domain.CalculationInput) (*domain.CalculationResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	u.setState(domain.SessionState{Phase: domain.PhaseLoading})

	result, err := u.calc.Calculate(ctx, in)
	if err != nil {
		msg := domain.FallbackErrorMessage
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		u.setState(domain.SessionState{Phase: domain.PhaseFailed, Message: msg})
		return nil, err
	}

	rec := domain.HistoryRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UnixMilli(),
		Input:     in,
		Result:    *result,
	}
	if ok := u.store.Append(ctx, rec); !ok {
		u.log.Warn("history persistence degraded", "id", rec.ID)
	} else {
		u.log.Info("calculation saved", "id", rec.ID, "netPay", result.NetPay)
	}
	u.publish(ctx, rec)

	u.setState(domain.SessionState{Phase: domain.PhaseSuccess, Result: result})
	return result, nil
}

// History возвращает страницу истории (новые сначала) и общее число записей.
// pageSize <= 0 трактуется как размер страницы по умолчанию.
func (u *UseCase) History(ctx context.Context, page, pageSize int) ([]domain.HistoryRecord, int) {
	if pageSize <= 0 {
		pageSize = history.DefaultPageSize
	}
	records := u.store.Load(ctx)
	return history.Paginate(records, page, pageSize), len(records)
}

// Rehydrate — мост регидрации: по id записи возвращает сохранённый ввод для
// заполнения формы и сбрасывает сессию в Idle (показанный результат/ошибка
// очищаются, нового запроса нет). Саму историю не трогает.
func (u *UseCase) Rehydrate(ctx context.Context, id string) (*domain.CalculationInput, error) {
	for _, rec := range u.store.Load(ctx) {
		if rec.ID == id {
			u.setState(domain.Idle())
			in := rec.Input
			return &in, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

// DeleteEntry удаляет одну запись истории; отсутствие записи — no-op.
func (u *UseCase) DeleteEntry(ctx context.Context, id string) {
	if ok := u.store.Remove(ctx, id); !ok {
		u.log.Warn("history remove degraded", "id", id)
	}
}

// ClearHistory удаляет всю историю.
func (u *UseCase) ClearHistory(ctx context.Context) {
	if ok := u.store.Clear(ctx); !ok {
		u.log.Warn("history clear degraded")
	}
}

// HandleCalculationEvent вызывается консьюмером при получении записи из
// топика calculations: пишет её в аналитическое хранилище.
func (u *UseCase) HandleCalculationEvent(ctx context.Context, rec domain.HistoryRecord) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteCalculation(ctx, rec); err != nil {
		u.log.Warn("analytics write", "id", rec.ID, "error", err)
		return err
	}
	u.log.Info("calculation stored to analytics", "id", rec.ID, "grossPay", rec.Result.GrossPay, "netPay", rec.Result.NetPay)
	return nil
}

// publish отправляет запись в брокер (best effort: ошибка только логируется).
func (u *UseCase) publish(ctx context.Context, rec domain.HistoryRecord) {
	if u.broker == nil {
		return
	}
	value, err := json.Marshal(rec)
	if err != nil {
		u.log.Warn("broker marshal", "id", rec.ID, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(rec.ID), value); err != nil {
		u.log.Warn("broker send", "id", rec.ID, "error", err)
	} else {
		u.log.Info("calculation published", "id", rec.ID)
	}
}
