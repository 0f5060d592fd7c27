package domain

// Phase — фаза жизненного цикла текущего расчёта. Активна ровно одна.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailed  Phase = "failed"
)

// SessionState — состояние сессии расчёта, отдаётся презентационному слою.
// Result заполнен только в Success, Message — только в Failed.
type SessionState struct {
	Phase   Phase              `json:"phase"`
	Result  *CalculationResult `json:"result,omitempty"`
	Message string             `json:"message,omitempty"`
}

// Idle возвращает пустое состояние (нет результата, нет ошибки).
func Idle() SessionState {
	return SessionState{Phase: PhaseIdle}
}
