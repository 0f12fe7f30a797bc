package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Wolf Journal Configuration

[account]
# Account balance used for drawdown and Calmar scaling
initial_balance = 10000.0
# Risk-free rate per trade for the Sharpe ratio
risk_free_rate = 0.0
# Evaluation period in days for annualizing returns
period_days = 365

[storage]
# Path to the journal database; defaults to journal.db next to this file
# db_path = "/path/to/journal.db"

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "2006-01-02"
# Time format
time_format = "15:04"
`

// WriteDefaultConfig writes the config template to the given directory,
// creating it if needed. Existing files are left alone.
func WriteDefaultConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
