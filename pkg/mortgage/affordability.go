package mortgage

import (
	"fmt"
	"math"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"github.com/lendwell/mortgage-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// AffordabilityResult holds the outcome of an affordability analysis. All
// monetary fields are clamped to be non-negative.
type AffordabilityResult struct {
	MaxLoanAmount      float64
	MaxHomePrice       float64
	RecommendedPayment float64
	DebtToIncomeRatio  float64 // percent
	IsAffordable       bool
}

// CalculateAffordability derives the maximum affordable loan from income and
// existing debt obligations, using the standard front-end (housing) and
// back-end (total debt) underwriting ratios.
func CalculateAffordability(logger *zap.Logger, annualIncome, monthlyDebts, downPayment, ratePercent float64, termYears int) (AffordabilityResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if annualIncome <= 0 || !mathutil.IsFinite(annualIncome) {
		return AffordabilityResult{}, invalidArgumentf("annual income must be positive and finite, got %.2f", annualIncome)
	}
	if monthlyDebts < 0 || !mathutil.IsFinite(monthlyDebts) {
		return AffordabilityResult{}, invalidArgumentf("monthly debts must be non-negative and finite, got %.2f", monthlyDebts)
	}
	if downPayment < 0 || !mathutil.IsFinite(downPayment) {
		return AffordabilityResult{}, invalidArgumentf("down payment must be non-negative and finite, got %.2f", downPayment)
	}
	if err := validateLoanTerms(0, ratePercent, termYears); err != nil {
		return AffordabilityResult{}, err
	}

	monthlyIncome := annualIncome / constants.MonthsPerYear
	maxHousingPayment := monthlyIncome * constants.FrontEndRatio
	maxTotalPayment := monthlyIncome * constants.BackEndRatio

	availableForMortgage := mathutil.Min(maxHousingPayment, maxTotalPayment-monthlyDebts)
	availableForMortgage = mathutil.ClampNonNegative(availableForMortgage)

	maxLoanAmount, err := maxPrincipalForPayment(availableForMortgage, ratePercent, termYears)
	if err != nil {
		return AffordabilityResult{}, err
	}

	result := AffordabilityResult{
		MaxLoanAmount:      maxLoanAmount,
		MaxHomePrice:       maxLoanAmount + downPayment,
		RecommendedPayment: availableForMortgage,
		DebtToIncomeRatio:  (monthlyDebts + availableForMortgage) / monthlyIncome * constants.PercentageMultiplier,
		IsAffordable:       false,
	}
	result.IsAffordable = result.DebtToIncomeRatio <= constants.MaxDebtToIncomePercent && availableForMortgage > 0

	logger.Debug(fmt.Sprintf("affordability: max loan %.2f at DTI %.1f%%, affordable %t",
		result.MaxLoanAmount, result.DebtToIncomeRatio, result.IsAffordable),
		zap.String("op", "mortgage.CalculateAffordability"),
	)

	return result, nil
}

// maxPrincipalForPayment inverts the annuity formula, solving for the
// principal a fixed monthly payment can service over the given term.
func maxPrincipalForPayment(monthlyPayment, annualRatePercent float64, termYears int) (float64, error) {
	if monthlyPayment <= 0 {
		return 0, nil
	}

	periods := float64(termYears * constants.MonthsPerYear)
	periodicRate := monthlyRate(annualRatePercent)
	if periodicRate == 0 {
		return monthlyPayment * periods, nil
	}

	power := math.Pow(1.0+periodicRate, periods)
	principal := monthlyPayment * (power - 1.0) / (periodicRate * power)
	if !mathutil.IsFinite(principal) {
		return 0, overflowf("principal is not finite for rate %.2f%% over %d years", annualRatePercent, termYears)
	}
	return principal, nil
}
