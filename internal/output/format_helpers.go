package output

import (
	"strconv"

	"github.com/lifeplan/cashflow/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatAmount formats a money figure rounded to whole units with
// thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatAmount(amount decimal.Decimal) string { return money.Format(amount) }

// FormatUnits formats a money figure rounded to whole units without separators.
func FormatUnits(amount decimal.Decimal) string { return money.RoundUnit(amount).StringFixed(0) }

// FormatAge formats an optional age, using "never" when absent.
func FormatAge(age *int) string {
	if age == nil {
		return "never"
	}
	return strconv.Itoa(*age)
}

func intToString(v int) string { return strconv.Itoa(v) }
