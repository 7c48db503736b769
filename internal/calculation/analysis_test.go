package calculation

import (
	"testing"

	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(age int, income, expense, cash, investments int64) domain.YearRecord {
	rec := domain.YearRecord{
		Age:               age,
		Income:            decimal.NewFromInt(income),
		TotalExpense:      decimal.NewFromInt(expense),
		CashBalance:       decimal.NewFromInt(cash),
		InvestmentBalance: decimal.NewFromInt(investments),
	}
	rec.TotalNetWorth = rec.NetWorth()
	return rec
}

func TestSummarize(t *testing.T) {
	records := []domain.YearRecord{
		record(40, 100, 50, 50, 100),
		record(41, 100, 60, 90, 150),
		record(42, 0, 200, -110, 40),
		record(43, 0, 200, -310, 0),
		record(44, 0, 200, -510, 0),
	}

	s := Summarize(records)
	assert.Equal(t, 40, s.StartAge)
	assert.Equal(t, 44, s.EndAge)
	require.NotNil(t, s.FirstNegativeCashAge)
	assert.Equal(t, 42, *s.FirstNegativeCashAge)
	require.NotNil(t, s.AssetsDepletedAge)
	assert.Equal(t, 43, *s.AssetsDepletedAge)
	assert.True(t, s.PeakNetWorth.Equal(decimal.NewFromInt(240)))
	assert.Equal(t, 41, s.PeakNetWorthAge)
	assert.True(t, s.FinalNetWorth.Equal(decimal.NewFromInt(-510)))
	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(200)))
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(710)))
}

func TestSummarizeNeverNegative(t *testing.T) {
	s := Summarize([]domain.YearRecord{record(30, 10, 0, 10, 0), record(31, 10, 0, 20, 0)})
	assert.Nil(t, s.FirstNegativeCashAge)
	assert.Nil(t, s.AssetsDepletedAge, "assets that were never held are not depleted")
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, domain.Summary{}, Summarize(nil))
}

func TestFindRecord(t *testing.T) {
	records := []domain.YearRecord{record(30, 0, 0, 0, 0), record(31, 0, 0, 0, 0)}

	rec, ok := FindRecord(records, 31)
	assert.True(t, ok)
	assert.Equal(t, 31, rec.Age)

	_, ok = FindRecord(records, 29)
	assert.False(t, ok)
	_, ok = FindRecord(records, 32)
	assert.False(t, ok)
	_, ok = FindRecord(nil, 30)
	assert.False(t, ok)
}
