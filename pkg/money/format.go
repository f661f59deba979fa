package money

import "strings"

// FormatConfig controls how an Amount is rendered. Derive variants from
// DefaultFormatConfig by copying it and overriding fields; the record
// itself is never mutated by the formatter.
//
// Degenerate combinations (a grouping separator equal to the decimal
// separator, or equal to a digit) are not validated: they still produce a
// deterministic string, just one that is ambiguous to read back.
type FormatConfig struct {
	// ShowDecimals renders the fractional part to the currency's decimal
	// digit count. When false the value is rounded to one fractional
	// digit and then truncated to its integer digits.
	ShowDecimals bool

	// CompactFourDigitAmounts suppresses grouping separators when the
	// integer part has four or fewer digits ("1000" rather than "1,000").
	CompactFourDigitAmounts bool

	// UseCurrencySymbol prefixes the symbol instead of the ISO code.
	// It takes priority over SuffixISOCode.
	UseCurrencySymbol bool

	// SuffixISOCode places the ISO code after the number instead of
	// before it.
	SuffixISOCode bool

	// LargeAmountSeparator is inserted between three-digit groups of the
	// integer part.
	LargeAmountSeparator rune

	// DecimalSeparator separates the integer and fractional parts.
	DecimalSeparator rune
}

// DefaultFormatConfig is the baseline configuration: decimals shown,
// four-digit amounts compacted, ISO code prefixed, comma grouping,
// dot decimal separator.
var DefaultFormatConfig = FormatConfig{
	ShowDecimals:            true,
	CompactFourDigitAmounts: true,
	UseCurrencySymbol:       false,
	SuffixISOCode:           false,
	LargeAmountSeparator:    ',',
	DecimalSeparator:        '.',
}

// String renders the amount with DefaultFormatConfig.
func (a Amount) String() string {
	return a.Format(DefaultFormatConfig)
}

// Format renders the amount under cfg. The result is deterministic for a
// given (amount, config) pair and the call has no side effects.
func (a Amount) Format(cfg FormatConfig) string {
	negative := a.value.IsNegative()
	magnitude := a.value.Abs()

	// Fixed-precision rendering, half away from zero. With decimals off
	// the value is first rounded to one fractional digit and only then
	// truncated, so 0.95 renders as "1", not "0".
	var intDigits, fracDigits string
	if cfg.ShowDecimals {
		intDigits, fracDigits = splitFixed(magnitude.StringFixed(int32(a.curr.DecimalDigits())))
	} else {
		intDigits, _ = splitFixed(magnitude.StringFixed(1))
	}

	// A magnitude that rounds away to zero renders unsigned.
	if negative && strings.Trim(intDigits, "0") == "" && strings.Trim(fracDigits, "0") == "" {
		negative = false
	}

	number := groupDigits(intDigits, cfg.LargeAmountSeparator, cfg.CompactFourDigitAmounts)
	if negative {
		number = "-" + number
	}
	if fracDigits != "" {
		number += string(cfg.DecimalSeparator) + fracDigits
	}

	switch {
	case cfg.UseCurrencySymbol:
		return a.curr.Symbol() + " " + number
	case cfg.SuffixISOCode:
		return number + " " + a.curr.Code()
	default:
		return a.curr.Code() + " " + number
	}
}

// splitFixed splits decimal.StringFixed output into its integer and
// fractional digit runs. The fractional run is empty for zero-digit
// renderings.
func splitFixed(s string) (intDigits, fracDigits string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// groupDigits inserts sep between three-digit groups, counted from the
// right. Runs of four or fewer digits stay ungrouped when compact is set.
func groupDigits(digits string, sep rune, compact bool) string {
	if len(digits) <= 3 || (compact && len(digits) <= 4) {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + 2*(len(digits)/3))
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteRune(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
