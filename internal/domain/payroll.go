package domain

// CalculationInput — параметры расчёта, введённые в форму.
// JSON-теги совпадают с форматом истории фронтенда (поле percentangeDiscount —
// историческая опечатка в контракте, менять нельзя: старая история перестанет читаться).
type CalculationInput struct {
	GrossPay            float64 `json:"grossPay"`
	NumberOfDependents  int     `json:"numberOfDependents"`
	FixedAmountDiscount float64 `json:"fixedAmountDiscount"`
	PercentageDiscount  float64 `json:"percentangeDiscount"` // целые проценты 0–100, НЕ доля
	SimplifiedDeduction bool    `json:"simplifiedDeduction"`
}

// Validate проверяет границы всех полей и возвращает ValidationErrors
// со списком нарушений (по одному на поле). Невалидный ввод не должен
// доходить до удалённого сервиса.
func (in CalculationInput) Validate() error {
	var errs ValidationErrors
	if in.GrossPay <= 0 {
		errs = append(errs, ValidationError{Field: "grossPay", Message: "gross pay must be positive"})
	}
	if in.NumberOfDependents < 0 {
		errs = append(errs, ValidationError{Field: "numberOfDependents", Message: "number of dependents must not be negative"})
	}
	if in.FixedAmountDiscount < 0 {
		errs = append(errs, ValidationError{Field: "fixedAmountDiscount", Message: "fixed amount discount must not be negative"})
	}
	if in.PercentageDiscount < 0 || in.PercentageDiscount > 100 {
		errs = append(errs, ValidationError{Field: "percentangeDiscount", Message: "percentage discount must be between 0 and 100"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DiscountLine — одна строка разбивки удержаний. Приходит от удалённого
// сервиса как есть; мы её не пересчитываем, только храним и отдаём.
type DiscountLine struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CalculationResult — ответ удалённого сервиса расчёта.
// netPay = grossPay - totalDiscount гарантирует сервер, не мы.
type CalculationResult struct {
	GrossPay      float64        `json:"grossPay"`
	NetPay        float64        `json:"netPay"`
	TotalDiscount float64        `json:"totalDiscount"`
	Discounts     []DiscountLine `json:"discounts"`
}

// HistoryRecord — снимок одного успешного расчёта: ввод + результат.
// Неизменяем после создания, единственная мутация — удаление.
// CreatedAt — unix-миллисекунды (формат timestamp фронтенда).
type HistoryRecord struct {
	ID        string            `json:"id"`
	CreatedAt int64             `json:"timestamp"`
	Input     CalculationInput  `json:"formData"`
	Result    CalculationResult `json:"result"`
}
