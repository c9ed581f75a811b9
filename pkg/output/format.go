// Package output provides utilities for formatting and displaying analysis reports.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lendwell/mortgage-engine/internal/analysis"
	"github.com/lendwell/mortgage-engine/pkg/constants"
	"github.com/lendwell/mortgage-engine/pkg/format"
	"github.com/lendwell/mortgage-engine/pkg/mathutil"
	"gopkg.in/yaml.v3"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(results []analysis.Report) {
	FprettyFormat(os.Stdout, results)
}

// FprettyFormat writes the human-readable report to w.
func FprettyFormat(w io.Writer, results []analysis.Report) {
	for i, result := range results {
		fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Scenario)

		if loan := result.Loan; loan != nil {
			fmt.Fprintf(w, "Loan: %s at %s for %d years\n",
				format.Currency(loan.Principal), format.Percent(loan.RatePercent), loan.TermYears)
			fmt.Fprintf(w, "  Monthly payment: %s\n", format.Currency(loan.Summary.MonthlyPayment))
			fmt.Fprintf(w, "  Total paid:      %s\n", format.Currency(loan.Summary.TotalPaid))
			fmt.Fprintf(w, "  Total interest:  %s\n", format.Currency(loan.Summary.TotalInterest))
		}

		if len(result.Schedule) > 0 {
			fmt.Fprintf(w, "Amortization (annual):\n")
			fmt.Fprintf(w, "  Year | Principal Paid   | Interest Paid    | Balance\n")
			fmt.Fprintf(w, "  ____ | ______________   | _____________    | _______\n")
			for idx, entry := range result.Schedule {
				if entry.Period%constants.MonthsPerYear != 0 && idx != len(result.Schedule)-1 {
					continue
				}
				fmt.Fprintf(w, "  %4d | %16s | %16s | %s\n",
					(entry.Period+constants.MonthsPerYear-1)/constants.MonthsPerYear,
					format.Currency(entry.CumulativePrincipal),
					format.Currency(entry.CumulativeInterest),
					format.Currency(entry.RemainingBalance))
			}
		}

		if ref := result.Refinance; ref != nil {
			fmt.Fprintf(w, "Refinance:\n")
			fmt.Fprintf(w, "  Current payment: %s\n", format.Currency(ref.CurrentPayment))
			fmt.Fprintf(w, "  New payment:     %s\n", format.Currency(ref.NewPayment))
			fmt.Fprintf(w, "  Monthly savings: %s\n", format.Currency(ref.MonthlySavings))
			fmt.Fprintf(w, "  Break-even:      %d months\n", ref.BreakEvenMonths)
			fmt.Fprintf(w, "  Total savings:   %s\n", format.Currency(ref.TotalSavings))
			fmt.Fprintf(w, "  %s\n", ref.Recommendation)
		}

		if aff := result.Affordability; aff != nil {
			fmt.Fprintf(w, "Affordability:\n")
			fmt.Fprintf(w, "  Max loan amount:     %s\n", format.Currency(aff.MaxLoanAmount))
			fmt.Fprintf(w, "  Max home price:      %s\n", format.Currency(aff.MaxHomePrice))
			fmt.Fprintf(w, "  Recommended payment: %s\n", format.Currency(aff.RecommendedPayment))
			fmt.Fprintf(w, "  Debt-to-income:      %s\n", format.Percent(aff.DebtToIncomeRatio))
			fmt.Fprintf(w, "  Affordable:          %t\n", aff.IsAffordable)
		}

		if pre := result.PreApproval; pre != nil {
			fmt.Fprintf(w, "Pre-approval:\n")
			fmt.Fprintf(w, "  Eligible:        %t\n", pre.IsEligible)
			if pre.IsEligible {
				fmt.Fprintf(w, "  Max loan amount: %s\n", format.Currency(pre.MaxLoanAmount))
				fmt.Fprintf(w, "  Estimated rate:  %s\n", format.Percent(pre.EstimatedRate))
			}
			fmt.Fprintf(w, "  %s\n", pre.Message)
		}

		if rvb := result.RentVsBuy; rvb != nil {
			fmt.Fprintf(w, "Rent vs buy:\n")
			fmt.Fprintf(w, "  Cumulative buying cost:  %s\n", format.Currency(rvb.CumulativeBuyingCost))
			fmt.Fprintf(w, "  Cumulative renting cost: %s\n", format.Currency(rvb.CumulativeRentingCost))
			if rvb.BreakEvenYear > 0 {
				fmt.Fprintf(w, "  Buying overtakes renting in year %d\n", rvb.BreakEvenYear)
			} else {
				fmt.Fprintf(w, "  Buying does not overtake renting within the horizon\n")
			}
		}

		if i < len(results)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []analysis.Report) error {
	return FcsvFormat(os.Stdout, results)
}

// FcsvFormat writes the CSV report to w. Scalar metrics come first as
// scenario/section/metric/value records; amortization schedules follow with
// their own header since they are per-period tables. Quoting is left to
// encoding/csv so scenario names may contain anything.
func FcsvFormat(w io.Writer, results []analysis.Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"scenario", "section", "metric", "value"}); err != nil {
		return err
	}
	for _, result := range results {
		for _, record := range csvMetricRecords(result) {
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	hasSchedule := false
	for _, result := range results {
		if len(result.Schedule) > 0 {
			hasSchedule = true
			break
		}
	}
	if hasSchedule {
		header := []string{"scenario", "period", "payment", "principal", "interest",
			"remainingBalance", "cumulativeInterest", "cumulativePrincipal"}
		if err := writer.Write(header); err != nil {
			return err
		}
		for _, result := range results {
			for _, entry := range result.Schedule {
				record := []string{
					result.Scenario,
					strconv.Itoa(entry.Period),
					csvMoney(entry.Payment),
					csvMoney(entry.Principal),
					csvMoney(entry.Interest),
					csvMoney(entry.RemainingBalance),
					csvMoney(entry.CumulativeInterest),
					csvMoney(entry.CumulativePrincipal),
				}
				if err := writer.Write(record); err != nil {
					return err
				}
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// csvMoney renders a monetary value to two decimals under the engine's cent
// rounding policy.
func csvMoney(v float64) string {
	return strconv.FormatFloat(mathutil.Round(v), 'f', 2, 64)
}

func csvMetricRecords(result analysis.Report) [][]string {
	var records [][]string
	row := func(section, metric string, value interface{}) {
		var rendered string
		switch v := value.(type) {
		case float64:
			rendered = csvMoney(v)
		default:
			rendered = fmt.Sprintf("%v", v)
		}
		records = append(records, []string{result.Scenario, section, metric, rendered})
	}

	if loan := result.Loan; loan != nil {
		row("loan", "monthlyPayment", loan.Summary.MonthlyPayment)
		row("loan", "totalPaid", loan.Summary.TotalPaid)
		row("loan", "totalInterest", loan.Summary.TotalInterest)
	}
	if ref := result.Refinance; ref != nil {
		row("refinance", "currentPayment", ref.CurrentPayment)
		row("refinance", "newPayment", ref.NewPayment)
		row("refinance", "monthlySavings", ref.MonthlySavings)
		row("refinance", "breakEvenMonths", ref.BreakEvenMonths)
		row("refinance", "totalSavings", ref.TotalSavings)
		row("refinance", "isRecommended", ref.IsRecommended)
	}
	if aff := result.Affordability; aff != nil {
		row("affordability", "maxLoanAmount", aff.MaxLoanAmount)
		row("affordability", "maxHomePrice", aff.MaxHomePrice)
		row("affordability", "recommendedPayment", aff.RecommendedPayment)
		row("affordability", "debtToIncomeRatio", aff.DebtToIncomeRatio)
		row("affordability", "isAffordable", aff.IsAffordable)
	}
	if pre := result.PreApproval; pre != nil {
		row("preApproval", "isEligible", pre.IsEligible)
		row("preApproval", "maxLoanAmount", pre.MaxLoanAmount)
		row("preApproval", "estimatedRate", pre.EstimatedRate)
	}
	if rvb := result.RentVsBuy; rvb != nil {
		row("rentVsBuy", "cumulativeBuyingCost", rvb.CumulativeBuyingCost)
		row("rentVsBuy", "cumulativeRentingCost", rvb.CumulativeRentingCost)
		row("rentVsBuy", "breakEvenYear", rvb.BreakEvenYear)
	}

	return records
}

// YamlFormat outputs the full report as YAML, including every schedule period.
func YamlFormat(results []analysis.Report) error {
	return FyamlFormat(os.Stdout, results)
}

// FyamlFormat writes the YAML report to w.
func FyamlFormat(w io.Writer, results []analysis.Report) error {
	encoded, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode report as YAML, %s", err)
	}
	_, err = w.Write(encoded)
	return err
}
