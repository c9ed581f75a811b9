package mortgage

import (
	"fmt"
	"strings"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"github.com/lendwell/mortgage-engine/pkg/mathutil"
	"go.uber.org/zap"
)

// EmploymentStatusUnemployed is the employment status that disqualifies an
// applicant from pre-approval.
const EmploymentStatusUnemployed = "Unemployed"

// PreApprovalResult holds the outcome of a pre-approval evaluation.
type PreApprovalResult struct {
	IsEligible    bool
	MaxLoanAmount float64
	EstimatedRate float64 // percent
	Message       string
}

// CheckPreApproval evaluates pre-approval eligibility as the conjunction of
// four independent checks: debt-to-income ratio, credit score, down payment,
// and employment status. When the applicant is ineligible the message
// enumerates every failing reason, not just the first.
func CheckPreApproval(logger *zap.Logger, annualIncome, monthlyDebts, downPayment float64, creditScore int, employmentStatus string) (PreApprovalResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if annualIncome <= 0 || !mathutil.IsFinite(annualIncome) {
		return PreApprovalResult{}, invalidArgumentf("annual income must be positive and finite, got %.2f", annualIncome)
	}
	if monthlyDebts < 0 || !mathutil.IsFinite(monthlyDebts) {
		return PreApprovalResult{}, invalidArgumentf("monthly debts must be non-negative and finite, got %.2f", monthlyDebts)
	}
	if downPayment < 0 || !mathutil.IsFinite(downPayment) {
		return PreApprovalResult{}, invalidArgumentf("down payment must be non-negative and finite, got %.2f", downPayment)
	}

	monthlyIncome := annualIncome / constants.MonthsPerYear
	debtToIncome := monthlyDebts / monthlyIncome * constants.PercentageMultiplier

	var reasons []string
	if debtToIncome > constants.MaxDebtToIncomePercent {
		reasons = append(reasons, fmt.Sprintf("your debt-to-income ratio of %.1f%% exceeds the %.0f%% limit",
			debtToIncome, constants.MaxDebtToIncomePercent))
	}
	if creditScore < constants.MinCreditScore {
		reasons = append(reasons, fmt.Sprintf("your credit score of %d is below the minimum of %d",
			creditScore, constants.MinCreditScore))
	}
	if downPayment < constants.MinDownPayment {
		reasons = append(reasons, fmt.Sprintf("your down payment of $%.2f is below the minimum of $%.2f",
			downPayment, constants.MinDownPayment))
	}
	if employmentStatus == EmploymentStatusUnemployed {
		reasons = append(reasons, "applicants must be employed")
	}

	result := PreApprovalResult{
		EstimatedRate: estimatedRateForScore(creditScore),
	}

	if len(reasons) > 0 {
		result.Message = "Pre-approval denied: " + strings.Join(reasons, "; ") + "."
		logger.Debug(fmt.Sprintf("pre-approval denied for %d reason(s)", len(reasons)),
			zap.String("op", "mortgage.CheckPreApproval"),
		)
		return result, nil
	}

	availableForMortgage := mathutil.ClampNonNegative(mathutil.Min(
		monthlyIncome*constants.FrontEndRatio,
		monthlyIncome*constants.BackEndRatio-monthlyDebts,
	))
	maxLoanAmount, err := maxPrincipalForPayment(availableForMortgage, result.EstimatedRate, constants.PreApprovalTermYears)
	if err != nil {
		return PreApprovalResult{}, err
	}

	result.IsEligible = true
	result.MaxLoanAmount = maxLoanAmount
	result.Message = fmt.Sprintf("Congratulations, you are pre-approved for a loan of up to $%.2f at an estimated rate of %.2f%%.",
		maxLoanAmount, result.EstimatedRate)

	logger.Debug(fmt.Sprintf("pre-approval granted: max loan %.2f at %.2f%%", maxLoanAmount, result.EstimatedRate),
		zap.String("op", "mortgage.CheckPreApproval"),
	)

	return result, nil
}

// estimatedRateForScore maps a credit score onto the tiered-rate policy.
// Boundaries are inclusive.
func estimatedRateForScore(creditScore int) float64 {
	switch {
	case creditScore >= constants.ExcellentCreditScore:
		return constants.ExcellentCreditRatePercent
	case creditScore >= constants.GoodCreditScore:
		return constants.GoodCreditRatePercent
	default:
		return constants.FairCreditRatePercent
	}
}
