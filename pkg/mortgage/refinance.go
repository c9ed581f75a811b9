package mortgage

import (
	"fmt"
	"math"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"github.com/lendwell/mortgage-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// RefinanceResult holds the outcome of a refinance comparison.
type RefinanceResult struct {
	CurrentPayment  float64
	NewPayment      float64
	MonthlySavings  float64
	BreakEvenMonths int
	TotalSavings    float64
	IsRecommended   bool
	Recommendation  string
}

// Recommendation texts. Exactly one applies to any result.
const (
	recommendationRefinance = "Refinancing is recommended: the monthly savings repay the closing costs within %d months."
	recommendationNoSavings = "Refinancing is not recommended: the new payment does not reduce your monthly cost."
	recommendationSlowBreak = "Refinancing is not recommended: it would take %d months to recover the closing costs."
)

// AnalyzeRefinance compares the payment on an existing loan against a
// hypothetical new loan taken out for the current outstanding balance. Savings
// are only counted over the shorter of the two remaining horizons; past that
// point the comparison is no longer like-for-like.
func AnalyzeRefinance(logger *zap.Logger, currentBalance, currentRatePercent float64, currentRemainingYears int,
	newRatePercent float64, newTermYears int, closingCosts float64) (RefinanceResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if closingCosts < 0 || !mathutil.IsFinite(closingCosts) {
		return RefinanceResult{}, invalidArgumentf("closing costs must be non-negative and finite, got %.2f", closingCosts)
	}

	currentPayment, err := MonthlyPayment(currentBalance, currentRatePercent, currentRemainingYears)
	if err != nil {
		return RefinanceResult{}, err
	}
	newPayment, err := MonthlyPayment(currentBalance, newRatePercent, newTermYears)
	if err != nil {
		return RefinanceResult{}, err
	}

	result := RefinanceResult{
		CurrentPayment: currentPayment,
		NewPayment:     newPayment,
		MonthlySavings: currentPayment - newPayment,
	}

	// Savings below one cent are rounding noise, not savings.
	if mathutil.IsPositive(result.MonthlySavings) {
		result.BreakEvenMonths = int(math.Ceil(closingCosts / result.MonthlySavings))
	}

	horizonYears := currentRemainingYears
	if newTermYears < horizonYears {
		horizonYears = newTermYears
	}
	result.TotalSavings = result.MonthlySavings*float64(horizonYears*constants.MonthsPerYear) - closingCosts

	result.IsRecommended = mathutil.IsPositive(result.MonthlySavings) &&
		result.TotalSavings > 0 && result.BreakEvenMonths <= constants.MaxBreakEvenMonths

	switch {
	case !mathutil.IsPositive(result.MonthlySavings):
		result.Recommendation = recommendationNoSavings
	case result.IsRecommended:
		result.Recommendation = fmt.Sprintf(recommendationRefinance, result.BreakEvenMonths)
	default:
		result.Recommendation = fmt.Sprintf(recommendationSlowBreak, result.BreakEvenMonths)
	}

	logger.Debug(fmt.Sprintf("refinance analysis: monthly savings %.2f, break-even %d months, recommended %t",
		result.MonthlySavings, result.BreakEvenMonths, result.IsRecommended),
		zap.String("op", "mortgage.AnalyzeRefinance"),
	)

	return result, nil
}
