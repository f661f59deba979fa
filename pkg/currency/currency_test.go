package currency

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want Currency
	}{
		{"USD", USD},
		{"usd", USD},
		{"Eur", EUR},
		{"JPY", JPY},
		{"XXX", XXX},
	}
	for _, tt := range tests {
		got, err := Parse(tt.code)
		require.NoError(t, err, "Parse(%q)", tt.code)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.code)
	}
}

func TestParse_Unknown(t *testing.T) {
	got, err := Parse("ZZZ")
	assert.Error(t, err)
	assert.Equal(t, XXX, got)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not-a-code") })
	assert.Equal(t, GBP, MustParse("gbp"))
}

func TestDecimalDigits(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{USD, 2},
		{EUR, 2},
		{JPY, 0},
		{KRW, 0},
		{KWD, 3},
		{BHD, 3},
		{OMR, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.curr.DecimalDigits(), "%s", tt.curr)
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", USD.Symbol())
	assert.Equal(t, "€", EUR.Symbol())
	assert.Equal(t, "£", GBP.Symbol())
	assert.Equal(t, "¤", XXX.Symbol())
}

func TestAccessors_OutOfRange(t *testing.T) {
	// Unregistered index values fall back to the XXX placeholder rather
	// than panicking.
	c := Currency(250)
	assert.Equal(t, "XXX", c.Code())
	assert.Equal(t, "¤", c.Symbol())
	assert.Equal(t, 2, c.DecimalDigits())
}

func TestString(t *testing.T) {
	assert.Equal(t, "USD", USD.String())
	assert.Equal(t, "XXX", Currency(0).String())
}

func TestCurrencies(t *testing.T) {
	all := Currencies()
	require.NotEmpty(t, all)
	assert.NotContains(t, all, XXX)

	codes := make([]string, 0, len(all))
	for _, c := range all {
		codes = append(codes, c.Code())
	}
	assert.True(t, sort.StringsAreSorted(codes), "registry should be in code order: %v", codes)
}

func TestTextRoundTrip(t *testing.T) {
	text, err := EUR.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "EUR", string(text))

	var c Currency
	require.NoError(t, c.UnmarshalText(text))
	assert.Equal(t, EUR, c)

	assert.Error(t, c.UnmarshalText([]byte("??")))
}

func TestUnmarshalYAML(t *testing.T) {
	var doc struct {
		Currency Currency `yaml:"currency"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("currency: eur\n"), &doc))
	assert.Equal(t, EUR, doc.Currency)

	err := yaml.Unmarshal([]byte("currency: nope\n"), &doc)
	assert.Error(t, err)
}
