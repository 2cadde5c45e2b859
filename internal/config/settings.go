package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the user settings file: which currencies and tickers the
// dashboard tracks, and where reports are written.
type Settings struct {
	// Currencies to fetch rates for, e.g. [USD, EUR]
	Currencies []string `yaml:"currencies,omitempty"`

	// Stocks to fetch the latest close price for
	Stocks []string `yaml:"stocks,omitempty"`

	// Report file names, relative to the working directory
	DashboardFile string `yaml:"dashboard_file,omitempty"`
	SearchFile    string `yaml:"search_file,omitempty"`
	ExpensesFile  string `yaml:"expenses_file,omitempty"`
}

// DefaultSettings mirrors the stock watchlist of the original tool.
func DefaultSettings() *Settings {
	return &Settings{
		Currencies:    []string{"USD", "EUR"},
		Stocks:        []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"},
		DashboardFile: "operations_data.json",
		SearchFile:    "search_results.json",
		ExpensesFile:  "category_expenses.json",
	}
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults; a present but unparsable file is an error. Unset fields fall back
// to their defaults, currency and ticker symbols are upper-cased.
func LoadSettings(path string) (*Settings, error) {
	defaults := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}

	if len(s.Currencies) == 0 {
		s.Currencies = defaults.Currencies
	}
	if len(s.Stocks) == 0 {
		s.Stocks = defaults.Stocks
	}
	if s.DashboardFile == "" {
		s.DashboardFile = defaults.DashboardFile
	}
	if s.SearchFile == "" {
		s.SearchFile = defaults.SearchFile
	}
	if s.ExpensesFile == "" {
		s.ExpensesFile = defaults.ExpensesFile
	}

	for i, c := range s.Currencies {
		s.Currencies[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	for i, t := range s.Stocks {
		s.Stocks[i] = strings.ToUpper(strings.TrimSpace(t))
	}

	return &s, nil
}

// Save writes the settings to path, creating a template the user can edit.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
