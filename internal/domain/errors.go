package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRecordNotFound возвращается, когда запись истории с таким id отсутствует.
var ErrRecordNotFound = errors.New("history record not found")

// FallbackErrorMessage — запасной текст ошибки расчёта, когда сервер
// не прислал message. Показывается пользователю как есть (pt-BR, как на фронте).
const FallbackErrorMessage = "Erro ao calcular salário"

// ValidationError — нарушение ограничения одного поля формы.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors — набор полевых ошибок; до сети такой ввод не доходит.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrorKind — вид ошибки обращения к удалённому сервису расчёта.
type ErrorKind string

const (
	// KindNetworkError — транспортный сбой, ответа не было вовсе.
	KindNetworkError ErrorKind = "network_error"
	// KindRemoteCalculationFailed — сервер ответил не-2xx; Message показываем дословно.
	KindRemoteCalculationFailed ErrorKind = "remote_calculation_failed"
	// KindMalformedResponse — статус успешный, но тело не разобрать.
	KindMalformedResponse ErrorKind = "malformed_response"
)

// APIError — нормализованный исход неудачного вызова удалённого сервиса.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("payroll api: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("payroll api: %s: %s", e.Kind, e.Message)
}
