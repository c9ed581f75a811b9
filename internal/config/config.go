// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/lendwell/mortgage-engine/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the mortgage engine CLI.
type Configuration struct {
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml
}

// Scenario describes one named set of analyses to run. Any subset of the
// analysis blocks may be present; absent blocks are skipped.
type Scenario struct {
	Name          string
	Active        bool
	Loan          *LoanSpec
	Refinance     *RefinanceSpec
	Affordability *AffordabilitySpec
	PreApproval   *PreApprovalSpec
	RentVsBuy     *RentVsBuySpec
}

// LoanSpec describes a loan to summarize and optionally amortize.
type LoanSpec struct {
	Principal         float64
	AnnualRatePercent float64
	TermYears         int
	WithSchedule      bool
}

// RefinanceSpec describes a refinance comparison.
type RefinanceSpec struct {
	CurrentBalance        float64
	CurrentRatePercent    float64
	CurrentRemainingYears int
	NewRatePercent        float64
	NewTermYears          int
	ClosingCosts          float64
}

// AffordabilitySpec describes an affordability analysis.
type AffordabilitySpec struct {
	AnnualIncome float64
	MonthlyDebts float64
	DownPayment  float64
	RatePercent  float64
	TermYears    int
}

// PreApprovalSpec describes a pre-approval evaluation.
type PreApprovalSpec struct {
	AnnualIncome     float64
	MonthlyDebts     float64
	DownPayment      float64
	CreditScore      int
	EmploymentStatus string
}

// RentVsBuySpec describes a rent-versus-buy comparison.
type RentVsBuySpec struct {
	HomePrice        float64
	DownPayment      float64
	RatePercent      float64
	LoanTermYears    int
	MonthlyRent      float64
	PropertyTaxRate  float64
	AnnualInsurance  float64
	MaintenanceRate  float64
	RentIncreaseRate float64
	AppreciationRate float64
	YearsToAnalyze   int
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input errors are left to the engine, which rejects
// them per call; warnings flag configurations that are legal but probably not
// what the author meant.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	activeCount := 0
	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			continue
		}
		activeCount++

		if scenario.Name == "" {
			warnings = append(warnings, "A scenario has no name; output sections will be hard to tell apart")
		}
		if scenario.Loan == nil && scenario.Refinance == nil && scenario.Affordability == nil &&
			scenario.PreApproval == nil && scenario.RentVsBuy == nil {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' has no analyses configured", scenario.Name))
		}

		if scenario.Loan != nil && scenario.Loan.AnnualRatePercent > 30 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' loan rate %.2f%% is unusually high; rates are percentages, not fractions",
				scenario.Name, scenario.Loan.AnnualRatePercent))
		}
		if scenario.RentVsBuy != nil && scenario.RentVsBuy.YearsToAnalyze > scenario.RentVsBuy.LoanTermYears {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' rent-vs-buy horizon %d years exceeds the %d-year loan term; the simulation assumes payments continue throughout",
				scenario.Name, scenario.RentVsBuy.YearsToAnalyze, scenario.RentVsBuy.LoanTermYears))
		}
		if scenario.PreApproval != nil && scenario.PreApproval.CreditScore > 850 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' credit score %d exceeds the FICO maximum of 850",
				scenario.Name, scenario.PreApproval.CreditScore))
		}
	}

	if activeCount == 0 {
		warnings = append(warnings, "No active scenarios are configured; nothing will be computed")
	}

	return warnings
}

// DefaultOutputFormat resolves the output format from config with a fallback
// to the pretty format.
func (c *Configuration) DefaultOutputFormat() string {
	if c.Output.Format == "" {
		return constants.OutputFormatPretty
	}
	return c.Output.Format
}
