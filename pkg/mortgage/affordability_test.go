package mortgage

import (
	"errors"
	"math"
	"testing"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"go.uber.org/zap"
)

func TestCalculateAffordability(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Comfortable income", func(t *testing.T) {
		result, err := CalculateAffordability(logger, 120000, 500, 40000, 6.5, 30)
		if err != nil {
			t.Fatalf("CalculateAffordability() error = %v", err)
		}

		// Front-end cap: 10000 * 0.28 = 2800, which binds here since the
		// back-end cap leaves 3100 after debts.
		if math.Abs(result.RecommendedPayment-2800) > constants.CurrencyTolerance {
			t.Errorf("RecommendedPayment = %.2f, expected 2800", result.RecommendedPayment)
		}

		// A 2800 payment at 6.5% over 30 years services roughly $443K.
		if result.MaxLoanAmount < 430000 || result.MaxLoanAmount > 455000 {
			t.Errorf("MaxLoanAmount = %.2f, expected range [430000, 455000]", result.MaxLoanAmount)
		}

		if math.Abs(result.MaxHomePrice-(result.MaxLoanAmount+40000)) > constants.CurrencyTolerance {
			t.Errorf("MaxHomePrice = %.2f, expected MaxLoanAmount plus down payment", result.MaxHomePrice)
		}

		// DTI: (500 + 2800) / 10000 * 100 = 33%.
		if math.Abs(result.DebtToIncomeRatio-33.0) > 0.01 {
			t.Errorf("DebtToIncomeRatio = %.2f, expected 33.0", result.DebtToIncomeRatio)
		}

		if !result.IsAffordable {
			t.Errorf("IsAffordable = false, expected true")
		}
	})

	t.Run("Debts consume the entire budget", func(t *testing.T) {
		// Back-end cap: 5000 * 0.36 = 1800, entirely absorbed by 2000 in debts.
		result, err := CalculateAffordability(logger, 60000, 2000, 10000, 6.5, 30)
		if err != nil {
			t.Fatalf("CalculateAffordability() error = %v", err)
		}

		if result.RecommendedPayment != 0 {
			t.Errorf("RecommendedPayment = %.2f, expected clamp to 0", result.RecommendedPayment)
		}
		if result.MaxLoanAmount != 0 {
			t.Errorf("MaxLoanAmount = %.2f, expected 0", result.MaxLoanAmount)
		}
		if result.MaxHomePrice != 10000 {
			t.Errorf("MaxHomePrice = %.2f, expected the down payment alone", result.MaxHomePrice)
		}
		if result.IsAffordable {
			t.Errorf("IsAffordable = true, expected false with no mortgage budget")
		}
	})

	t.Run("Zero-rate inversion is linear", func(t *testing.T) {
		result, err := CalculateAffordability(logger, 120000, 0, 0, 0, 30)
		if err != nil {
			t.Fatalf("CalculateAffordability() error = %v", err)
		}

		// At zero interest the maximum loan is simply payment * periods.
		expected := result.RecommendedPayment * 360
		if math.Abs(result.MaxLoanAmount-expected) > constants.CurrencyTolerance {
			t.Errorf("MaxLoanAmount = %.2f, expected %.2f", result.MaxLoanAmount, expected)
		}
	})
}

func TestCalculateAffordabilityInvalidArguments(t *testing.T) {
	tests := []struct {
		name         string
		annualIncome float64
		monthlyDebts float64
		downPayment  float64
		ratePercent  float64
		termYears    int
	}{
		{
			name:         "Zero income",
			annualIncome: 0,
			ratePercent:  6.5,
			termYears:    30,
		},
		{
			name:         "Negative debts",
			annualIncome: 120000,
			monthlyDebts: -1,
			ratePercent:  6.5,
			termYears:    30,
		},
		{
			name:         "Negative down payment",
			annualIncome: 120000,
			downPayment:  -1,
			ratePercent:  6.5,
			termYears:    30,
		},
		{
			name:         "Zero term",
			annualIncome: 120000,
			ratePercent:  6.5,
			termYears:    0,
		},
		{
			name:         "Infinite income",
			annualIncome: math.Inf(1),
			ratePercent:  6.5,
			termYears:    30,
		},
		{
			name:         "NaN down payment",
			annualIncome: 120000,
			downPayment:  math.NaN(),
			ratePercent:  6.5,
			termYears:    30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateAffordability(nil, tt.annualIncome, tt.monthlyDebts, tt.downPayment, tt.ratePercent, tt.termYears)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("CalculateAffordability() error = %v, expected ErrInvalidArgument", err)
			}
		})
	}
}
