package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromFloatGuardsNonFinite(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"plain", 12.5, "12.5"},
		{"negative", -3, "-3"},
		{"NaN", math.NaN(), "0"},
		{"+Inf", math.Inf(1), "0"},
		{"-Inf", math.Inf(-1), "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FromFloat(c.in).String())
		})
	}
}

func TestGrowthFactor(t *testing.T) {
	assert.True(t, GrowthFactor(10, 0).Equal(decimal.NewFromInt(1)))
	assert.True(t, GrowthFactor(10, -3).Equal(decimal.NewFromInt(1)))
	assert.True(t, GrowthFactor(10, 2).Equal(decimal.RequireFromString("1.21")))
	assert.True(t, GrowthFactor(0, 40).Equal(decimal.NewFromInt(1)))
}

func TestCompound(t *testing.T) {
	assert.True(t, Compound(100, 10, 2).Equal(decimal.NewFromInt(121)), "100 at 10%% for 2 years")
	assert.True(t, Compound(400, 0, 35).Equal(decimal.NewFromInt(400)))
	assert.True(t, Compound(math.NaN(), 10, 2).IsZero())
}

func TestRates(t *testing.T) {
	assert.True(t, Rate(3.5).Equal(decimal.RequireFromString("0.035")))
	assert.True(t, MonthlyRate(12).Equal(decimal.RequireFromString("0.01")))
	assert.True(t, Annual(8).Equal(decimal.NewFromInt(96)))
}

func TestProrate(t *testing.T) {
	annual := decimal.NewFromInt(120)
	assert.True(t, Prorate(annual, 12).Equal(annual))
	assert.True(t, Prorate(annual, 3).Equal(decimal.NewFromInt(30)))
	assert.True(t, Prorate(annual, 0).IsZero())
}

func TestClampsAndSums(t *testing.T) {
	assert.True(t, NonNegative(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, Min(decimal.NewFromInt(2), decimal.NewFromInt(3)).Equal(decimal.NewFromInt(2)))
	assert.True(t, Max(decimal.NewFromInt(2), decimal.NewFromInt(3)).Equal(decimal.NewFromInt(3)))
	assert.True(t, Sum(decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3)).Equal(decimal.NewFromInt(6)))
	assert.True(t, Sum().IsZero())
}

func TestRoundingHelpers(t *testing.T) {
	assert.Equal(t, "3", RoundUnit(decimal.RequireFromString("2.5")).String())
	assert.Equal(t, "0.3333333333", Settle(decimal.NewFromInt(1).Div(decimal.NewFromInt(3))).String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Format(decimal.Zero))
	assert.Equal(t, "999", Format(decimal.NewFromInt(999)))
	assert.Equal(t, "1,000", Format(decimal.NewFromInt(1000)))
	assert.Equal(t, "1,234,568", Format(decimal.RequireFromString("1234567.6")))
	assert.Equal(t, "-12,000", Format(decimal.NewFromInt(-12000)))
}
