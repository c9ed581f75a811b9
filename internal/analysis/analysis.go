// Package analysis turns scenario configurations into computed reports by
// driving the mortgage engine.
package analysis

import (
	"fmt"

	"github.com/lendwell/mortgage-engine/internal/config"
	"github.com/lendwell/mortgage-engine/pkg/mortgage"
	"go.uber.org/zap"
)

// LoanReport pairs the loan inputs with their computed summary so output
// layers can render both.
type LoanReport struct {
	Principal   float64
	RatePercent float64
	TermYears   int
	Summary     mortgage.Summary
}

// Report holds every computed result for one scenario. Only the sections the
// scenario configured are populated.
type Report struct {
	Scenario      string
	Loan          *LoanReport
	Schedule      []mortgage.ScheduleEntry
	Refinance     *mortgage.RefinanceResult
	Affordability *mortgage.AffordabilityResult
	PreApproval   *mortgage.PreApprovalResult
	RentVsBuy     *mortgage.RentVsBuyResult
}

// Run processes the reports for all active scenarios.
func Run(logger *zap.Logger, conf config.Configuration) ([]Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Report
	generator := mortgage.NewScheduleGenerator(logger)

	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "analysis.Run"),
			)
			continue
		}

		report := Report{Scenario: scenario.Name}

		if spec := scenario.Loan; spec != nil {
			summary, err := mortgage.Summarize(spec.Principal, spec.AnnualRatePercent, spec.TermYears)
			if err != nil {
				return results, fmt.Errorf("scenario %s: loan summary: %w", scenario.Name, err)
			}
			report.Loan = &LoanReport{
				Principal:   spec.Principal,
				RatePercent: spec.AnnualRatePercent,
				TermYears:   spec.TermYears,
				Summary:     summary,
			}

			if spec.WithSchedule {
				schedule, err := generator.GenerateSchedule(spec.Principal, spec.AnnualRatePercent, spec.TermYears)
				if err != nil {
					return results, fmt.Errorf("scenario %s: amortization schedule: %w", scenario.Name, err)
				}
				report.Schedule = schedule
			}
		}

		if spec := scenario.Refinance; spec != nil {
			result, err := mortgage.AnalyzeRefinance(logger, spec.CurrentBalance, spec.CurrentRatePercent,
				spec.CurrentRemainingYears, spec.NewRatePercent, spec.NewTermYears, spec.ClosingCosts)
			if err != nil {
				return results, fmt.Errorf("scenario %s: refinance: %w", scenario.Name, err)
			}
			report.Refinance = &result
		}

		if spec := scenario.Affordability; spec != nil {
			result, err := mortgage.CalculateAffordability(logger, spec.AnnualIncome, spec.MonthlyDebts,
				spec.DownPayment, spec.RatePercent, spec.TermYears)
			if err != nil {
				return results, fmt.Errorf("scenario %s: affordability: %w", scenario.Name, err)
			}
			report.Affordability = &result
		}

		if spec := scenario.PreApproval; spec != nil {
			result, err := mortgage.CheckPreApproval(logger, spec.AnnualIncome, spec.MonthlyDebts,
				spec.DownPayment, spec.CreditScore, spec.EmploymentStatus)
			if err != nil {
				return results, fmt.Errorf("scenario %s: pre-approval: %w", scenario.Name, err)
			}
			report.PreApproval = &result
		}

		if spec := scenario.RentVsBuy; spec != nil {
			result, err := mortgage.CompareRentVsBuy(logger, mortgage.RentVsBuyInput{
				HomePrice:        spec.HomePrice,
				DownPayment:      spec.DownPayment,
				RatePercent:      spec.RatePercent,
				LoanTermYears:    spec.LoanTermYears,
				MonthlyRent:      spec.MonthlyRent,
				PropertyTaxRate:  spec.PropertyTaxRate,
				AnnualInsurance:  spec.AnnualInsurance,
				MaintenanceRate:  spec.MaintenanceRate,
				RentIncreaseRate: spec.RentIncreaseRate,
				AppreciationRate: spec.AppreciationRate,
				YearsToAnalyze:   spec.YearsToAnalyze,
			})
			if err != nil {
				return results, fmt.Errorf("scenario %s: rent vs buy: %w", scenario.Name, err)
			}
			report.RentVsBuy = &result
		}

		results = append(results, report)
	}

	return results, nil
}
