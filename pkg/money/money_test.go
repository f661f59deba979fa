package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jezen/currencies/pkg/currency"
)

func TestNew(t *testing.T) {
	d := decimal.RequireFromString("2342.20")
	a := New(currency.USD, d)
	assert.Equal(t, currency.USD, a.Currency())
	assert.True(t, a.Value().Equal(d))
}

func TestNewFromString(t *testing.T) {
	a, err := NewFromString(currency.EUR, "-45827.346")
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, a.Currency())
	assert.True(t, a.IsNegative())

	_, err = NewFromString(currency.EUR, "not a number")
	assert.Error(t, err)
}

func TestNewFromFloat(t *testing.T) {
	a, err := NewFromFloat(currency.USD, 25.50)
	require.NoError(t, err)
	assert.True(t, a.Value().Equal(decimal.RequireFromString("25.5")))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := NewFromFloat(currency.USD, v)
		assert.Error(t, err, "value %v", v)
	}
}

func TestPredicates(t *testing.T) {
	zero := New(currency.USD, decimal.Zero)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsNegative())

	neg, err := NewFromString(currency.USD, "-0.01")
	require.NoError(t, err)
	assert.True(t, neg.IsNegative())
	assert.False(t, neg.IsZero())
}
