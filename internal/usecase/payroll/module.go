package payroll

import (
	"log/slog"
	"sync"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/ports"
)

// UseCase — контроллер сессии расчёта: владеет единственным SessionState,
// гоняет клиент удалённого сервиса и складывает успешные расчёты в историю.
// broker и analytics опциональны (nil — события не публикуются).
type UseCase struct {
	calc      ports.ICalculator
	store     ports.IHistoryStore
	broker    ports.IProducer
	analytics ports.ICalculationAnalytics
	log       *slog.Logger

	mu    sync.Mutex
	state domain.SessionState
	subs  []func(domain.SessionState)
}

// New создаёт контроллер сессии в состоянии Idle.
func New(calc ports.ICalculator, store ports.IHistoryStore, broker ports.IProducer, analytics ports.ICalculationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{
		calc:      calc,
		store:     store,
		broker:    broker,
		analytics: analytics,
		log:       log,
		state:     domain.Idle(),
	}
}

var _ ports.IPayrollUseCase = (*UseCase)(nil)

// Subscribe регистрирует наблюдателя смены состояния. Вместо неявного
// ререндера UI — явная подписка: колбэк зовётся на каждом переходе.
func (u *UseCase) Subscribe(fn func(domain.SessionState)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.subs = append(u.subs, fn)
}

// State возвращает снимок текущего состояния сессии.
func (u *UseCase) State() domain.SessionState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// setState меняет состояние и уведомляет подписчиков уже без блокировки.
func (u *UseCase) setState(st domain.SessionState) {
	u.mu.Lock()
	u.state = st
	subs := make([]func(domain.SessionState), len(u.subs))
	copy(subs, u.subs)
	u.mu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}
