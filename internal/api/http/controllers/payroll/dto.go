package payroll

import "payrollCalc/internal/domain"

// CalculateRequest — запрос на расчёт (POST /api/v1/payroll/calculate).
// Нули допустимы во всех полях, кроме grossPay, поэтому binding-теги не
// используются: границы проверяет domain-валидация с полевыми ошибками.
type CalculateRequest struct {
	GrossPay            float64 `json:"grossPay"`
	NumberOfDependents  int     `json:"numberOfDependents"`
	FixedAmountDiscount float64 `json:"fixedAmountDiscount"`
	PercentageDiscount  float64 `json:"percentangeDiscount"`
	SimplifiedDeduction bool    `json:"simplifiedDeduction"`
}

// ToDomain переводит DTO в доменный ввод расчёта.
func (r CalculateRequest) ToDomain() domain.CalculationInput {
	return domain.CalculationInput{
		GrossPay:            r.GrossPay,
		NumberOfDependents:  r.NumberOfDependents,
		FixedAmountDiscount: r.FixedAmountDiscount,
		PercentageDiscount:  r.PercentageDiscount,
		SimplifiedDeduction: r.SimplifiedDeduction,
	}
}

// ErrorResponse — ответ с сессионной ошибкой (сеть, отказ сервера, битый ответ).
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationResponse — ответ с полевыми ошибками валидации формы.
type ValidationResponse struct {
	Errors []domain.ValidationError `json:"errors"`
}

// HistoryResponse — страница истории (GET /api/v1/payroll/history).
type HistoryResponse struct {
	Items      []domain.HistoryRecord `json:"items"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"totalPages"`
}

// RehydrateResponse — значения формы из записи истории плюс указание
// презентационному слою прокрутить страницу к форме.
type RehydrateResponse struct {
	FormData    domain.CalculationInput `json:"formData"`
	ScrollToTop bool                    `json:"scrollToTop"`
}
