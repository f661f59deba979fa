package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jezen/currencies/pkg/currency"
	"github.com/jezen/currencies/pkg/money"
)

// amountsFile is the batch input for `currencies format --file`.
type amountsFile struct {
	Amounts []amountEntry `yaml:"amounts"`
}

// amountEntry keeps the value as a string so the decimal survives the
// YAML round trip without float truncation.
type amountEntry struct {
	Currency currency.Currency `yaml:"currency"`
	Value    string            `yaml:"value"`
}

// LoadAmounts reads a YAML batch file of amounts, preserving file order.
func LoadAmounts(filename string) ([]money.Amount, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read amounts file %s: %w", filename, err)
	}

	var f amountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse amounts file %s: %w", filename, err)
	}
	if len(f.Amounts) == 0 {
		return nil, fmt.Errorf("no amounts in %s", filename)
	}

	out := make([]money.Amount, 0, len(f.Amounts))
	for i, e := range f.Amounts {
		a, err := money.NewFromString(e.Currency, e.Value)
		if err != nil {
			return nil, fmt.Errorf("amount %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
