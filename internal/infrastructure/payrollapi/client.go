package payrollapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"payrollCalc/internal/domain"
)

// errorBody — тело не-2xx ответа сервиса: message опционален.
type errorBody struct {
	Message string `json:"message"`
}

// resultBody — тело успешного ответа. Указатели отличают отсутствующее поле
// от легального нуля: `{}` — это не расчёт с нулевой зарплатой, а битый ответ.
type resultBody struct {
	GrossPay      *float64              `json:"grossPay"`
	NetPay        *float64              `json:"netPay"`
	TotalDiscount *float64              `json:"totalDiscount"`
	Discounts     []domain.DiscountLine `json:"discounts"`
}

// Calculate строит GET-запрос из провалидированного ввода, выполняет ровно
// один вызов и нормализует исход. Процент пересылается долей (10 → 0.1):
// форма собирает целые проценты, провод ждёт дробь.
func (c *Client) Calculate(ctx context.Context, in domain.CalculationInput) (*domain.CalculationResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+buildQuery(in), nil)
	if err != nil {
		return nil, &domain.APIError{Kind: domain.KindNetworkError, Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("payroll api request failed", "error", err)
		return nil, &domain.APIError{Kind: domain.KindNetworkError, Message: domain.FallbackErrorMessage}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("payroll api body read failed", "error", err)
		return nil, &domain.APIError{Kind: domain.KindNetworkError, Message: domain.FallbackErrorMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := domain.FallbackErrorMessage
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
			msg = eb.Message
		}
		c.log.Warn("payroll api rejected request", "status", resp.StatusCode, "message", msg)
		return nil, &domain.APIError{Kind: domain.KindRemoteCalculationFailed, Status: resp.StatusCode, Message: msg}
	}

	var rb resultBody
	if err := json.Unmarshal(body, &rb); err != nil {
		c.log.Warn("payroll api malformed response", "error", err)
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse, Status: resp.StatusCode, Message: domain.FallbackErrorMessage}
	}
	if err := checkShape(rb); err != nil {
		c.log.Warn("payroll api unexpected response shape", "error", err)
		return nil, &domain.APIError{Kind: domain.KindMalformedResponse, Status: resp.StatusCode, Message: domain.FallbackErrorMessage}
	}
	return &domain.CalculationResult{
		GrossPay:      *rb.GrossPay,
		NetPay:        *rb.NetPay,
		TotalDiscount: *rb.TotalDiscount,
		Discounts:     rb.Discounts,
	}, nil
}

// buildQuery собирает query-параметры контракта. Имя percentangeDiscount —
// историческое, сервер знает только его.
func buildQuery(in domain.CalculationInput) string {
	q := url.Values{}
	q.Set("grossPay", formatDecimal(in.GrossPay))
	q.Set("numberOfDependents", strconv.Itoa(in.NumberOfDependents))
	q.Set("fixedAmountDiscount", formatDecimal(in.FixedAmountDiscount))
	q.Set("percentangeDiscount", formatDecimal(in.PercentageDiscount/100))
	q.Set("simplifiedDeduction", strconv.FormatBool(in.SimplifiedDeduction))
	return q.Encode()
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// checkShape отсекает формально валидный JSON, не похожий на ответ расчёта:
// дальше такие данные попали бы в историю и в графики. Суммы обязаны
// присутствовать и быть неотрицательными, строки разбивки — именованными.
func checkShape(r resultBody) error {
	if r.GrossPay == nil || r.NetPay == nil || r.TotalDiscount == nil {
		return errMissingAmounts
	}
	if *r.GrossPay < 0 || *r.NetPay < 0 || *r.TotalDiscount < 0 {
		return errNegativeAmounts
	}
	for _, d := range r.Discounts {
		if d.Name == "" {
			return errUnnamedDiscount
		}
	}
	return nil
}

var (
	errMissingAmounts  = &domain.APIError{Kind: domain.KindMalformedResponse, Message: "required amounts missing in response"}
	errNegativeAmounts = &domain.APIError{Kind: domain.KindMalformedResponse, Message: "negative amounts in response"}
	errUnnamedDiscount = &domain.APIError{Kind: domain.KindMalformedResponse, Message: "discount line without name"}
)
