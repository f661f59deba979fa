// Package config loads YAML inputs for the currencies CLI: format
// profiles that overlay money.DefaultFormatConfig, and batch files of
// amounts to render.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/jezen/currencies/pkg/money"
)

// formatProfile mirrors money.FormatConfig in YAML form. Pointer fields
// distinguish an absent key from an explicit false, so a profile only
// overrides what it names.
type formatProfile struct {
	ShowDecimals            *bool   `yaml:"show_decimals"`
	CompactFourDigitAmounts *bool   `yaml:"compact_four_digit_amounts"`
	UseCurrencySymbol       *bool   `yaml:"use_currency_symbol"`
	SuffixISOCode           *bool   `yaml:"suffix_iso_code"`
	LargeAmountSeparator    *string `yaml:"large_amount_separator"`
	DecimalSeparator        *string `yaml:"decimal_separator"`
}

// LoadProfile reads a YAML format profile and overlays it on
// money.DefaultFormatConfig. Keys that are absent from the file keep
// their default values.
func LoadProfile(filename string) (money.FormatConfig, error) {
	cfg := money.DefaultFormatConfig

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read profile %s: %w", filename, err)
	}

	var p formatProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return cfg, fmt.Errorf("failed to parse profile %s: %w", filename, err)
	}

	if p.ShowDecimals != nil {
		cfg.ShowDecimals = *p.ShowDecimals
	}
	if p.CompactFourDigitAmounts != nil {
		cfg.CompactFourDigitAmounts = *p.CompactFourDigitAmounts
	}
	if p.UseCurrencySymbol != nil {
		cfg.UseCurrencySymbol = *p.UseCurrencySymbol
	}
	if p.SuffixISOCode != nil {
		cfg.SuffixISOCode = *p.SuffixISOCode
	}
	if p.LargeAmountSeparator != nil {
		r, err := ParseSeparator(*p.LargeAmountSeparator)
		if err != nil {
			return cfg, fmt.Errorf("large_amount_separator: %w", err)
		}
		cfg.LargeAmountSeparator = r
	}
	if p.DecimalSeparator != nil {
		r, err := ParseSeparator(*p.DecimalSeparator)
		if err != nil {
			return cfg, fmt.Errorf("decimal_separator: %w", err)
		}
		cfg.DecimalSeparator = r
	}

	return cfg, nil
}

// ParseSeparator converts a separator entry into a rune. Separators in
// profiles and on the command line must be exactly one character.
func ParseSeparator(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("separator must be exactly one character, got %q", s)
	}
	return r, nil
}
