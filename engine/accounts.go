package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChartOfAccounts maps the engine's logical accounts to the display names
// used in emitted journal entries. Deployments with their own account
// naming conventions override the defaults via a YAML file.
type ChartOfAccounts struct {
	RightOfUseAsset         string `yaml:"right_of_use_asset"`
	LeaseLiability          string `yaml:"lease_liability"`
	InterestExpense         string `yaml:"interest_expense"`
	Cash                    string `yaml:"cash"`
	AmortizationExpense     string `yaml:"amortization_expense"`
	AccumulatedAmortization string `yaml:"accumulated_amortization"`
	SubleaseIncome          string `yaml:"sublease_income"`
}

// DefaultChart returns the standard ASC 842 account names.
func DefaultChart() ChartOfAccounts {
	return ChartOfAccounts{
		RightOfUseAsset:         "Right-of-Use Asset",
		LeaseLiability:          "Lease Liability",
		InterestExpense:         "Interest Expense",
		Cash:                    "Cash",
		AmortizationExpense:     "Amortization Expense",
		AccumulatedAmortization: "Accumulated Amortization",
		SubleaseIncome:          "Sublease Income",
	}
}

// LoadChart reads account name overrides from a YAML file. Keys absent
// from the file keep their default names.
func LoadChart(path string) (ChartOfAccounts, error) {
	chart := DefaultChart()

	data, err := os.ReadFile(path)
	if err != nil {
		return chart, fmt.Errorf("failed to read chart of accounts: %w", err)
	}
	if err := yaml.Unmarshal(data, &chart); err != nil {
		return chart, fmt.Errorf("failed to parse chart of accounts: %w", err)
	}
	return chart, nil
}
