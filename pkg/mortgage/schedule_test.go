package mortgage

import (
	"math"
	"reflect"
	"testing"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"github.com/lendwell/mortgage-engine/pkg/mathutil"
	"go.uber.org/zap"
)

func TestGenerateSchedule(t *testing.T) {
	generator := NewScheduleGenerator(zap.NewNop())

	principal := 400000.0
	schedule, err := generator.GenerateSchedule(principal, 6.5, 30)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	if len(schedule) != 360 {
		t.Fatalf("GenerateSchedule() produced %d entries, expected 360", len(schedule))
	}

	// Entries are emitted in strict period order with a non-increasing balance.
	previousBalance := principal
	for i, entry := range schedule {
		if entry.Period != i+1 {
			t.Fatalf("entry %d has period %d, expected %d", i, entry.Period, i+1)
		}
		if entry.RemainingBalance > previousBalance {
			t.Errorf("period %d: balance %.2f exceeds previous %.2f", entry.Period, entry.RemainingBalance, previousBalance)
		}
		if entry.RemainingBalance < 0 {
			t.Errorf("period %d: negative balance %.2f", entry.Period, entry.RemainingBalance)
		}
		previousBalance = entry.RemainingBalance
	}

	// The final balance is exactly zero, not merely close.
	last := schedule[len(schedule)-1]
	if last.RemainingBalance != 0 {
		t.Errorf("final balance = %v, expected exactly 0", last.RemainingBalance)
	}

	// The principal portions sum back to the original principal.
	totalPrincipal := 0.0
	totalInterest := 0.0
	for _, entry := range schedule {
		totalPrincipal += entry.Principal
		totalInterest += entry.Interest
	}
	tolerance := constants.CurrencyTolerance * float64(len(schedule))
	if !mathutil.WithinTolerance(totalPrincipal, principal, tolerance) {
		t.Errorf("sum of principal portions = %.2f, expected %.2f", totalPrincipal, principal)
	}

	// The interest portions agree with the closed-form total.
	expectedInterest, err := TotalInterest(principal, 6.5, 30)
	if err != nil {
		t.Fatalf("TotalInterest() error = %v", err)
	}
	if !mathutil.WithinTolerance(totalInterest, expectedInterest, tolerance) {
		t.Errorf("sum of interest portions = %.2f, expected %.2f", totalInterest, expectedInterest)
	}

	// Cumulative fields on the last entry match the running sums.
	if !mathutil.WithinTolerance(last.CumulativeInterest, totalInterest, constants.CurrencyTolerance) {
		t.Errorf("last CumulativeInterest = %.2f, expected %.2f", last.CumulativeInterest, totalInterest)
	}
	if !mathutil.WithinTolerance(last.CumulativePrincipal, totalPrincipal, constants.CurrencyTolerance) {
		t.Errorf("last CumulativePrincipal = %.2f, expected %.2f", last.CumulativePrincipal, totalPrincipal)
	}
}

func TestGenerateScheduleZeroRate(t *testing.T) {
	generator := NewScheduleGenerator(zap.NewNop())

	schedule, err := generator.GenerateSchedule(300000, 0, 15)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	if len(schedule) != 180 {
		t.Fatalf("GenerateSchedule() produced %d entries, expected 180", len(schedule))
	}

	flatPrincipal := 300000.0 / 180.0
	for _, entry := range schedule {
		if entry.Interest != 0 {
			t.Errorf("period %d: interest = %.6f, expected 0", entry.Period, entry.Interest)
		}
		if math.Abs(entry.Principal-flatPrincipal) > 1e-9 {
			t.Errorf("period %d: principal = %.6f, expected flat %.6f", entry.Period, entry.Principal, flatPrincipal)
		}
	}

	if schedule[len(schedule)-1].RemainingBalance != 0 {
		t.Errorf("final balance = %v, expected exactly 0", schedule[len(schedule)-1].RemainingBalance)
	}
}

func TestGenerateScheduleDeterministic(t *testing.T) {
	generator := NewScheduleGenerator(zap.NewNop())

	first, err := generator.GenerateSchedule(250000, 7.25, 20)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}
	second, err := generator.GenerateSchedule(250000, 7.25, 20)
	if err != nil {
		t.Fatalf("GenerateSchedule() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("GenerateSchedule() is not deterministic across identical calls")
	}
}

func TestGenerateScheduleInvalidArguments(t *testing.T) {
	generator := NewScheduleGenerator(nil)

	if _, err := generator.GenerateSchedule(100000, 6.0, 0); err == nil {
		t.Errorf("GenerateSchedule() with zero term expected error but got none")
	}
	if _, err := generator.GenerateSchedule(-1, 6.0, 30); err == nil {
		t.Errorf("GenerateSchedule() with negative principal expected error but got none")
	}
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize(400000, 6.5, 30)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if math.Abs(summary.MonthlyPayment-2528.27) > 0.02 {
		t.Errorf("Summarize() MonthlyPayment = %.2f, expected about 2528.27", summary.MonthlyPayment)
	}
	expectedTotal := summary.MonthlyPayment * 360
	if math.Abs(summary.TotalPaid-expectedTotal) > constants.CurrencyTolerance {
		t.Errorf("Summarize() TotalPaid = %.2f, expected %.2f", summary.TotalPaid, expectedTotal)
	}
	if math.Abs(summary.TotalInterest-(expectedTotal-400000)) > constants.CurrencyTolerance {
		t.Errorf("Summarize() TotalInterest = %.2f, expected %.2f", summary.TotalInterest, expectedTotal-400000)
	}
}
