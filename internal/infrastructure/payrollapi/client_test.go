package payrollapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payrollCalc/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(url string) *Client {
	return New(&Config{URL: url, Timeout: 5 * time.Second}, newTestLogger())
}

func sampleInput() domain.CalculationInput {
	return domain.CalculationInput{
		GrossPay:            3000,
		NumberOfDependents:  2,
		FixedAmountDiscount: 150.50,
		PercentageDiscount:  10,
		SimplifiedDeduction: true,
	}
}

func TestCalculate_Success(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"grossPay": 3000,
			"netPay": 2450.70,
			"totalDiscount": 549.30,
			"discounts": [
				{"name": "INSS", "value": 258.80},
				{"name": "Desconto fixo", "value": 150.50},
				{"name": "Desconto percentual", "value": 140.00}
			]
		}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	require.NoError(t, err)
	assert.Equal(t, 3000.0, result.GrossPay)
	assert.Equal(t, 2450.70, result.NetPay)
	assert.Equal(t, 549.30, result.TotalDiscount)
	require.Len(t, result.Discounts, 3)
	assert.Equal(t, "INSS", result.Discounts[0].Name)

	// Контракт запроса: все пять параметров, процент — долей (10 → 0.1),
	// имя percentangeDiscount именно с опечаткой.
	assert.Equal(t, "3000", gotQuery["grossPay"])
	assert.Equal(t, "2", gotQuery["numberOfDependents"])
	assert.Equal(t, "150.5", gotQuery["fixedAmountDiscount"])
	assert.Equal(t, "0.1", gotQuery["percentangeDiscount"])
	assert.Equal(t, "true", gotQuery["simplifiedDeduction"])
}

func TestCalculate_ServerErrorWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "grossPay inválido"}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	assert.Nil(t, result)
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindRemoteCalculationFailed, apiErr.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	// Сообщение сервера доходит до пользователя как есть.
	assert.Equal(t, "grossPay inválido", apiErr.Message)
}

func TestCalculate_ServerErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindRemoteCalculationFailed, apiErr.Kind)
	// Нечитаемое тело ошибки — подставляется запасное сообщение.
	assert.Equal(t, domain.FallbackErrorMessage, apiErr.Message)
}

func TestCalculate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	assert.Nil(t, result)
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindMalformedResponse, apiErr.Kind)
	assert.Equal(t, domain.FallbackErrorMessage, apiErr.Message)
}

func TestCalculate_UnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Формально валидный JSON, но суммы отрицательные.
		_, _ = w.Write([]byte(`{"grossPay": -1, "netPay": -2, "totalDiscount": 0, "discounts": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindMalformedResponse, apiErr.Kind)
}

func TestCalculate_EmptyObjectRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Валидный JSON без единого поля расчёта: не нулевой результат, а битый ответ.
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	assert.Nil(t, result, "нулевой «успех» не должен попадать в историю")
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindMalformedResponse, apiErr.Kind)
	assert.Equal(t, domain.FallbackErrorMessage, apiErr.Message)
}

func TestCalculate_UnknownFieldsOnlyRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"foo": 1, "bar": "baz"}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	assert.Nil(t, result)
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindMalformedResponse, apiErr.Kind)
}

func TestCalculate_PartialAmountsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// netPay и totalDiscount отсутствуют, не равны нулю.
		_, _ = w.Write([]byte(`{"grossPay": 3000, "discounts": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindMalformedResponse, apiErr.Kind)
}

func TestCalculate_ZeroAmountsPresentAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Явные нули — легальный ответ (зарплата целиком ушла в удержания).
		_, _ = w.Write([]byte(`{"grossPay": 3000, "netPay": 0, "totalDiscount": 3000, "discounts": [{"name": "INSS", "value": 3000}]}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.NetPay)
	assert.Equal(t, 3000.0, result.TotalDiscount)
}

func TestCalculate_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // закрываем сразу: запрос упадёт на уровне соединения

	result, err := newTestClient(srv.URL).Calculate(context.Background(), sampleInput())

	assert.Nil(t, result)
	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.KindNetworkError, apiErr.Kind)
	assert.Equal(t, domain.FallbackErrorMessage, apiErr.Message)
}

func TestBuildQuery_ZeroValues(t *testing.T) {
	q := buildQuery(domain.CalculationInput{GrossPay: 1000})

	// Нулевые скидки тоже сериализуются явно: сервер ждёт все параметры.
	assert.Contains(t, q, "grossPay=1000")
	assert.Contains(t, q, "numberOfDependents=0")
	assert.Contains(t, q, "fixedAmountDiscount=0")
	assert.Contains(t, q, "percentangeDiscount=0")
	assert.Contains(t, q, "simplifiedDeduction=false")
}
