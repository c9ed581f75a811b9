package mortgage

import (
	"fmt"
	"math"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"github.com/lendwell/mortgage-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// RentVsBuyInput holds the parameters for a rent-versus-buy comparison.
type RentVsBuyInput struct {
	HomePrice        float64
	DownPayment      float64
	RatePercent      float64
	LoanTermYears    int
	MonthlyRent      float64
	PropertyTaxRate  float64 // percent of home price per year
	AnnualInsurance  float64
	MaintenanceRate  float64 // percent of home price per year
	RentIncreaseRate float64 // percent per year
	AppreciationRate float64 // percent per year
	YearsToAnalyze   int
}

// RentVsBuyResult holds the outcome of a rent-versus-buy comparison.
// BreakEvenYear is the first year in which the cumulative cost of buying
// drops below the cumulative cost of renting; zero means buying never
// overtakes renting within the analysis horizon.
type RentVsBuyResult struct {
	CumulativeBuyingCost  float64
	CumulativeRentingCost float64
	BreakEvenYear         int
}

// CompareRentVsBuy runs a year-by-year cash-flow simulation of buying versus
// renting. A closed form does not apply: rent escalates compoundingly while
// home appreciation offsets the cost of ownership, so both paths are
// path-dependent. The down payment counts against buying as a sunk cost at
// year zero.
func CompareRentVsBuy(logger *zap.Logger, in RentVsBuyInput) (RentVsBuyResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validateRentVsBuyInput(in); err != nil {
		return RentVsBuyResult{}, err
	}

	monthlyPayment, err := MonthlyPayment(in.HomePrice-in.DownPayment, in.RatePercent, in.LoanTermYears)
	if err != nil {
		return RentVsBuyResult{}, err
	}

	annualOwnershipCost := float64(constants.MonthsPerYear)*monthlyPayment +
		mathutil.ApplyPercentage(in.HomePrice, in.PropertyTaxRate) +
		in.AnnualInsurance +
		mathutil.ApplyPercentage(in.HomePrice, in.MaintenanceRate)

	result := RentVsBuyResult{
		CumulativeBuyingCost: in.DownPayment,
	}
	currentRent := in.MonthlyRent
	previousAppreciation := 0.0

	for year := 1; year <= in.YearsToAnalyze; year++ {
		appreciation := in.HomePrice*math.Pow(1.0+in.AppreciationRate/constants.PercentageMultiplier, float64(year)) - in.HomePrice
		if !mathutil.IsFinite(appreciation) {
			return RentVsBuyResult{}, overflowf("appreciation is not finite at year %d", year)
		}

		result.CumulativeBuyingCost += annualOwnershipCost - (appreciation - previousAppreciation)
		previousAppreciation = appreciation

		result.CumulativeRentingCost += float64(constants.MonthsPerYear) * currentRent
		currentRent *= 1.0 + in.RentIncreaseRate/constants.PercentageMultiplier

		// First crossing only; later years never update it again.
		if result.BreakEvenYear == 0 && result.CumulativeBuyingCost < result.CumulativeRentingCost {
			result.BreakEvenYear = year
			logger.Debug(fmt.Sprintf("buying overtakes renting in year %d", year),
				zap.String("op", "mortgage.CompareRentVsBuy"),
			)
		}
	}

	return result, nil
}

func validateRentVsBuyInput(in RentVsBuyInput) error {
	if in.YearsToAnalyze <= 0 {
		return invalidArgumentf("analysis horizon must be positive, got %d years", in.YearsToAnalyze)
	}
	for _, v := range []float64{
		in.HomePrice, in.DownPayment, in.MonthlyRent, in.AnnualInsurance,
		in.PropertyTaxRate, in.MaintenanceRate, in.RentIncreaseRate, in.AppreciationRate,
	} {
		if !mathutil.IsFinite(v) {
			return invalidArgumentf("inputs must be finite")
		}
	}
	if in.HomePrice < 0 {
		return invalidArgumentf("home price must be non-negative, got %.2f", in.HomePrice)
	}
	if in.DownPayment < 0 || in.DownPayment > in.HomePrice {
		return invalidArgumentf("down payment must be between 0 and the home price, got %.2f", in.DownPayment)
	}
	if in.MonthlyRent < 0 {
		return invalidArgumentf("monthly rent must be non-negative, got %.2f", in.MonthlyRent)
	}
	if in.AnnualInsurance < 0 {
		return invalidArgumentf("annual insurance must be non-negative, got %.2f", in.AnnualInsurance)
	}
	if in.PropertyTaxRate < 0 || in.MaintenanceRate < 0 || in.RentIncreaseRate < 0 || in.AppreciationRate < 0 {
		return invalidArgumentf("rates must be non-negative")
	}
	return nil
}
