package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/shopspring/decimal"
)

// Summarize derives headline figures from a ledger. It reads only the
// records and returns a zero Summary for an empty ledger.
func Summarize(records []domain.YearRecord) domain.Summary {
	if len(records) == 0 {
		return domain.Summary{}
	}

	first, last := records[0], records[len(records)-1]
	summary := domain.Summary{
		StartAge:        first.Age,
		EndAge:          last.Age,
		FinalNetWorth:   last.TotalNetWorth,
		PeakNetWorth:    first.TotalNetWorth,
		PeakNetWorthAge: first.Age,
		TotalIncome:     decimal.Zero,
		TotalExpense:    decimal.Zero,
	}

	hadInvestments := false
	for _, rec := range records {
		summary.TotalIncome = summary.TotalIncome.Add(rec.Income)
		summary.TotalExpense = summary.TotalExpense.Add(rec.TotalExpense)

		if rec.TotalNetWorth.GreaterThan(summary.PeakNetWorth) {
			summary.PeakNetWorth = rec.TotalNetWorth
			summary.PeakNetWorthAge = rec.Age
		}
		if summary.FirstNegativeCashAge == nil && rec.CashBalance.IsNegative() {
			summary.FirstNegativeCashAge = intPtr(rec.Age)
		}

		if rec.InvestmentBalance.IsPositive() {
			hadInvestments = true
		} else if hadInvestments && summary.AssetsDepletedAge == nil {
			summary.AssetsDepletedAge = intPtr(rec.Age)
		}
	}
	return summary
}

// FindRecord returns the record for age, if the ledger covers it.
func FindRecord(records []domain.YearRecord, age int) (domain.YearRecord, bool) {
	if len(records) == 0 {
		return domain.YearRecord{}, false
	}
	i := age - records[0].Age
	if i < 0 || i >= len(records) || records[i].Age != age {
		return domain.YearRecord{}, false
	}
	return records[i], true
}

func intPtr(v int) *int { return &v }
