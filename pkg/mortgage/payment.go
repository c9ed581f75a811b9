// Package mortgage implements the mortgage calculation engine: loan payment
// and amortization math, refinance economics, affordability limits,
// pre-approval eligibility, and rent-versus-buy comparison. Every function is
// deterministic and side-effect free; identical inputs always produce
// identical outputs.
package mortgage

import (
	"math"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"github.com/lendwell/mortgage-engine/pkg/mathutil"
)

// MonthlyPayment calculates the fixed monthly payment for an amortizing loan
// using the standard annuity formula. The payment covers principal and
// interest only; escrowed amounts such as taxes and insurance are added by
// callers as separate line items.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) (float64, error) {
	if err := validateLoanTerms(principal, annualRatePercent, termYears); err != nil {
		return 0, err
	}

	periods := float64(termYears * constants.MonthsPerYear)
	periodicRate := monthlyRate(annualRatePercent)
	if periodicRate == 0 {
		// The annuity formula degenerates to 0/0 at zero interest; a
		// zero-rate loan amortizes straight-line.
		return principal / periods, nil
	}

	power := math.Pow(1.0+periodicRate, periods)
	payment := principal * periodicRate * power / (power - 1.0)
	if !mathutil.IsFinite(payment) {
		return 0, overflowf("monthly payment is not finite for rate %.2f%% over %d years", annualRatePercent, termYears)
	}
	return payment, nil
}

// TotalInterest calculates the total interest paid over the life of a loan.
// It agrees with the sum of the interest portions of the generated
// amortization schedule to within rounding tolerance.
func TotalInterest(principal, annualRatePercent float64, termYears int) (float64, error) {
	payment, err := MonthlyPayment(principal, annualRatePercent, termYears)
	if err != nil {
		return 0, err
	}
	return payment*float64(termYears*constants.MonthsPerYear) - principal, nil
}

// monthlyRate converts an annual percentage rate to a monthly fractional
// rate. The conversion happens before any rounding.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

func validateLoanTerms(principal, annualRatePercent float64, termYears int) error {
	if termYears <= 0 {
		return invalidArgumentf("term must be positive, got %d years", termYears)
	}
	if principal < 0 {
		return invalidArgumentf("principal must be non-negative, got %.2f", principal)
	}
	if annualRatePercent < 0 {
		return invalidArgumentf("interest rate must be non-negative, got %.2f", annualRatePercent)
	}
	if !mathutil.IsFinite(principal) || !mathutil.IsFinite(annualRatePercent) {
		return invalidArgumentf("principal and rate must be finite")
	}
	return nil
}
