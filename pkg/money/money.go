package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WorkingPrecision is the number of decimal places running balances are
// settled to between simulated months and years.
const WorkingPrecision int32 = 10

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)

	printer = message.NewPrinter(language.English)
)

// FromFloat converts an external float field to a decimal.
// NaN and infinite values are treated as zero so a single bad field
// cannot poison every later year of a projection.
func FromFloat(value float64) decimal.Decimal {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(value)
}

// Rate converts a percentage (e.g. 3.5) to a fraction (0.035).
func Rate(pct float64) decimal.Decimal {
	return FromFloat(pct).Div(hundred)
}

// MonthlyRate converts an annual percentage to a monthly fraction.
func MonthlyRate(annualPct float64) decimal.Decimal {
	return Rate(annualPct).Div(twelve)
}

// GrowthFactor returns (1 + pct/100)^years, or 1 when years <= 0.
func GrowthFactor(pct float64, years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	return one.Add(Rate(pct)).Pow(decimal.NewFromInt(int64(years)))
}

// Compound grows amount by pct for the given number of elapsed years.
func Compound(amount, pct float64, years int) decimal.Decimal {
	return Settle(FromFloat(amount).Mul(GrowthFactor(pct, years)))
}

// Annual converts a monthly amount to an annual one.
func Annual(monthly float64) decimal.Decimal {
	return FromFloat(monthly).Mul(twelve)
}

// Prorate scales an annual amount to the given number of months.
func Prorate(annual decimal.Decimal, months int) decimal.Decimal {
	if months >= 12 {
		return annual
	}
	if months <= 0 {
		return decimal.Zero
	}
	return annual.Mul(decimal.NewFromInt(int64(months))).Div(twelve)
}

// Settle trims a running balance to WorkingPrecision. It is not a
// presentation rounding.
func Settle(d decimal.Decimal) decimal.Decimal {
	return d.Round(WorkingPrecision)
}

// RoundUnit rounds to the nearest whole unit for presentation.
func RoundUnit(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// NonNegative clamps d at zero.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Sum adds all amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Format renders a whole-unit amount with thousands separators.
func Format(d decimal.Decimal) string {
	return printer.Sprintf("%d", RoundUnit(d).IntPart())
}
