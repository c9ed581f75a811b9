package mortgage

import (
	"fmt"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"go.uber.org/zap"
)

// ScheduleEntry holds the values for a single amortization period.
type ScheduleEntry struct {
	Period              int
	Payment             float64
	Principal           float64
	Interest            float64
	RemainingBalance    float64
	CumulativeInterest  float64
	CumulativePrincipal float64
}

// Summary aggregates the headline numbers for a loan.
type Summary struct {
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
}

// ScheduleGenerator generates loan amortization schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a loan,
// ordered by period starting at 1. The remaining balance is monotonically
// non-increasing and is exactly zero on the final entry; machine residue on
// the last period is clamped rather than emitted.
func (g *ScheduleGenerator) GenerateSchedule(principal, annualRatePercent float64, termYears int) ([]ScheduleEntry, error) {
	monthlyPayment, err := MonthlyPayment(principal, annualRatePercent, termYears)
	if err != nil {
		return nil, err
	}

	periods := termYears * constants.MonthsPerYear
	periodicRate := monthlyRate(annualRatePercent)

	schedule := make([]ScheduleEntry, 0, periods)
	balance := principal
	cumulativeInterest := 0.0
	cumulativePrincipal := 0.0

	for period := 1; period <= periods; period++ {
		interest := balance * periodicRate
		principalPortion := monthlyPayment - interest
		balance -= principalPortion

		if period == periods || balance < 0 {
			// Floating-point drift on the final payment would otherwise leave
			// a residual balance on the order of machine epsilon.
			balance = 0
		}

		cumulativeInterest += interest
		cumulativePrincipal += principalPortion

		schedule = append(schedule, ScheduleEntry{
			Period:              period,
			Payment:             monthlyPayment,
			Principal:           principalPortion,
			Interest:            interest,
			RemainingBalance:    balance,
			CumulativeInterest:  cumulativeInterest,
			CumulativePrincipal: cumulativePrincipal,
		})
	}

	g.logger.Debug(fmt.Sprintf("generated %d-period schedule for %.2f at %.2f%%",
		periods, principal, annualRatePercent),
		zap.String("op", "mortgage.GenerateSchedule"),
	)

	return schedule, nil
}

// Summarize computes the headline numbers for a loan without materializing
// the full schedule.
func Summarize(principal, annualRatePercent float64, termYears int) (Summary, error) {
	monthlyPayment, err := MonthlyPayment(principal, annualRatePercent, termYears)
	if err != nil {
		return Summary{}, err
	}
	totalPaid := monthlyPayment * float64(termYears*constants.MonthsPerYear)
	return Summary{
		MonthlyPayment: monthlyPayment,
		TotalPaid:      totalPaid,
		TotalInterest:  totalPaid - principal,
	}, nil
}
