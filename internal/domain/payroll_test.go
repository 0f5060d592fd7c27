package domain

import (
	"errors"
	"testing"
)

func TestCalculationInputValidate(t *testing.T) {
	tests := []struct {
		name       string
		in         CalculationInput
		wantFields []string
	}{
		{
			name: "валидный ввод без скидок",
			in:   CalculationInput{GrossPay: 3000},
		},
		{
			name: "валидный ввод со всеми полями",
			in: CalculationInput{
				GrossPay:            5000,
				NumberOfDependents:  2,
				FixedAmountDiscount: 150.50,
				PercentageDiscount:  10,
				SimplifiedDeduction: true,
			},
		},
		{
			name: "граничные проценты 0 и 100 валидны",
			in:   CalculationInput{GrossPay: 1, PercentageDiscount: 100},
		},
		{
			name:       "нулевая зарплата",
			in:         CalculationInput{GrossPay: 0},
			wantFields: []string{"grossPay"},
		},
		{
			name:       "отрицательная зарплата",
			in:         CalculationInput{GrossPay: -100},
			wantFields: []string{"grossPay"},
		},
		{
			name:       "отрицательные иждивенцы",
			in:         CalculationInput{GrossPay: 3000, NumberOfDependents: -1},
			wantFields: []string{"numberOfDependents"},
		},
		{
			name:       "отрицательная фиксированная скидка",
			in:         CalculationInput{GrossPay: 3000, FixedAmountDiscount: -10},
			wantFields: []string{"fixedAmountDiscount"},
		},
		{
			name:       "процент больше 100",
			in:         CalculationInput{GrossPay: 3000, PercentageDiscount: 101},
			wantFields: []string{"percentangeDiscount"},
		},
		{
			name:       "отрицательный процент",
			in:         CalculationInput{GrossPay: 3000, PercentageDiscount: -5},
			wantFields: []string{"percentangeDiscount"},
		},
		{
			name: "несколько нарушений сразу — по ошибке на поле",
			in: CalculationInput{
				GrossPay:            -1,
				NumberOfDependents:  -1,
				FixedAmountDiscount: -1,
				PercentageDiscount:  200,
			},
			wantFields: []string{"grossPay", "numberOfDependents", "fixedAmountDiscount", "percentangeDiscount"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() = %v, want ValidationErrors", err)
			}
			if len(verrs) != len(tt.wantFields) {
				t.Fatalf("got %d errors (%v), want %d", len(verrs), verrs, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if verrs[i].Field != field {
					t.Errorf("error %d: field = %q, want %q", i, verrs[i].Field, field)
				}
			}
		})
	}
}
