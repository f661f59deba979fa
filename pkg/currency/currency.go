// Package currency provides a static registry of currencies: for each
// registered currency it exposes the ISO 4217 alphabetic code, a display
// symbol, and the number of decimal digits conventionally used for its
// minor unit. The registry is defined once and never mutated, so values
// are safe to share between goroutines.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Currency identifies a registered currency. It is an index into in-memory
// lookup tables, so copying and comparing values is cheap. The zero value
// is XXX, the ISO placeholder for "no currency".
type Currency uint8

const (
	XXX Currency = iota
	AUD
	BHD
	BRL
	CAD
	CHF
	CNY
	EUR
	GBP
	INR
	JPY
	KRW
	KWD
	MXN
	NOK
	NZD
	OMR
	PLN
	SEK
	TRY
	USD
	ZAR
)

var (
	codes = [...]string{
		XXX: "XXX",
		AUD: "AUD",
		BHD: "BHD",
		BRL: "BRL",
		CAD: "CAD",
		CHF: "CHF",
		CNY: "CNY",
		EUR: "EUR",
		GBP: "GBP",
		INR: "INR",
		JPY: "JPY",
		KRW: "KRW",
		KWD: "KWD",
		MXN: "MXN",
		NOK: "NOK",
		NZD: "NZD",
		OMR: "OMR",
		PLN: "PLN",
		SEK: "SEK",
		TRY: "TRY",
		USD: "USD",
		ZAR: "ZAR",
	}

	symbols = [...]string{
		XXX: "¤",
		AUD: "A$",
		BHD: "BD",
		BRL: "R$",
		CAD: "C$",
		CHF: "Fr",
		CNY: "¥",
		EUR: "€",
		GBP: "£",
		INR: "₹",
		JPY: "¥",
		KRW: "₩",
		KWD: "KD",
		MXN: "$",
		NOK: "kr",
		NZD: "NZ$",
		OMR: "RO",
		PLN: "zł",
		SEK: "kr",
		TRY: "₺",
		USD: "$",
		ZAR: "R",
	}

	// Digits after the decimal point used for the minor unit: 0 for
	// currencies without minor units (JPY, KRW), 3 for the dinar/rial
	// family, 2 for everything else.
	decimalDigits = [...]uint8{
		XXX: 2,
		AUD: 2,
		BHD: 3,
		BRL: 2,
		CAD: 2,
		CHF: 2,
		CNY: 2,
		EUR: 2,
		GBP: 2,
		INR: 2,
		JPY: 0,
		KRW: 0,
		KWD: 3,
		MXN: 2,
		NOK: 2,
		NZD: 2,
		OMR: 3,
		PLN: 2,
		SEK: 2,
		TRY: 2,
		USD: 2,
		ZAR: 2,
	}
)

var byCode = func() map[string]Currency {
	m := make(map[string]Currency, len(codes))
	for i, code := range codes {
		m[code] = Currency(i)
	}
	return m
}()

var errUnknownCurrency = errors.New("unknown currency")

// Parse looks up a currency by its 3-letter ISO code. The lookup is
// case-insensitive. It returns XXX and an error for codes that are not
// in the registry.
func Parse(code string) (Currency, error) {
	c, ok := byCode[strings.ToUpper(code)]
	if !ok {
		return XXX, fmt.Errorf("%w: %q", errUnknownCurrency, code)
	}
	return c, nil
}

// MustParse is like Parse but panics on unknown codes. It exists for
// initialising package-level variables.
func MustParse(code string) Currency {
	c, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return c
}

// index clamps out-of-range values to XXX so that accessor methods stay
// total even for Currency values that were never registered.
func (c Currency) index() int {
	if int(c) >= len(codes) {
		return int(XXX)
	}
	return int(c)
}

// Code returns the 3-letter ISO 4217 code, e.g. "USD".
func (c Currency) Code() string { return codes[c.index()] }

// Symbol returns the display symbol, e.g. "$" for USD.
func (c Currency) Symbol() string { return symbols[c.index()] }

// DecimalDigits returns how many fractional digits the currency's minor
// unit uses. It is 0, 2, or 3 for all registered currencies.
func (c Currency) DecimalDigits() int { return int(decimalDigits[c.index()]) }

// String implements fmt.Stringer and returns the ISO code.
func (c Currency) String() string { return c.Code() }

// MarshalText implements encoding.TextMarshaler, emitting the ISO code.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalYAML decodes a currency from its ISO code in a YAML document.
func (c *Currency) UnmarshalYAML(node *yaml.Node) error {
	var code string
	if err := node.Decode(&code); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(code))
}

// Currencies returns every registered currency in code order, excluding
// the XXX placeholder.
func Currencies() []Currency {
	out := make([]Currency, 0, len(codes)-1)
	for i := int(XXX) + 1; i < len(codes); i++ {
		out = append(out, Currency(i))
	}
	return out
}
