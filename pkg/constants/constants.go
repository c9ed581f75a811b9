// Package constants provides shared constants for the mortgage engine.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Underwriting policy constants. These are shared between the affordability
// and pre-approval calculations; both must reference these definitions rather
// than carrying their own copies.
const (
	// FrontEndRatio is the maximum housing-payment share of gross monthly
	// income (the "front-end" underwriting ratio).
	FrontEndRatio = 0.28

	// BackEndRatio is the maximum total-debt share of gross monthly income
	// (the "back-end" underwriting ratio).
	BackEndRatio = 0.36

	// MaxDebtToIncomePercent is the qualifying debt-to-income ceiling.
	MaxDebtToIncomePercent = 43.0

	// MinCreditScore is the minimum qualifying credit score.
	MinCreditScore = 620

	// MinDownPayment is the minimum qualifying down payment.
	MinDownPayment = 10000.0

	// PreApprovalTermYears is the term assumed when back-solving the maximum
	// loan amount during pre-approval.
	PreApprovalTermYears = 30
)

// Tiered-rate policy: the estimated rate offered at pre-approval is a step
// function of credit score. Boundaries are inclusive.
const (
	ExcellentCreditScore = 740
	GoodCreditScore      = 680

	ExcellentCreditRatePercent = 6.5
	GoodCreditRatePercent      = 7.0
	FairCreditRatePercent      = 7.5
)

// Refinance policy constants
const (
	// MaxBreakEvenMonths is the longest acceptable payback period for
	// refinance closing costs. Beyond this a refinance is not recommended
	// even when it saves money overall.
	MaxBreakEvenMonths = 60
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
