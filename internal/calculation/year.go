package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/money"
	"github.com/shopspring/decimal"
)

// processYear folds every category for one simulated age/year into a
// YearRecord and advances the running state.
func (st *simulationState) processYear(age, year int) domain.YearRecord {
	rec := domain.YearRecord{
		Age:         age,
		Year:        year,
		Events:      []string{},
		Details:     domain.NewBreakdown(),
		Liabilities: []domain.LiabilityBalance{},
	}
	cashBefore := st.cash

	st.foldIncome(&rec, age, year)
	st.foldExpenses(&rec, age, year)
	st.foldHousing(&rec, age)
	st.foldLoans(&rec, age)
	st.foldRealEstate(&rec, age, year)
	st.foldEvents(&rec, age)
	st.foldAssets(&rec, age)
	st.reportHousingLoans(&rec)
	st.reportMortgages(&rec, year)

	rec.TotalExpense = rec.Expense.Steady()
	rec.Balance = money.Settle(rec.Income.
		Add(rec.AssetWithdrawal).
		Add(rec.RealEstateEventIncome).
		Sub(rec.TotalExpense).
		Sub(rec.EventCost).
		Sub(rec.RealEstateEventCost).
		Sub(rec.AssetContribution))

	st.cash = cashBefore.Add(rec.Balance)
	rec.CashBalance = st.cash
	rec.TotalNetWorth = rec.NetWorth()

	if rec.CashBalance.IsNegative() && !st.cashWentNegative {
		st.cashWentNegative = true
		st.logger.Debugf("cash balance first negative at age %d (%d): %s", age, year, rec.CashBalance.StringFixed(2))
	}
	if st.debug {
		st.logger.Debugf("age %d (%d): income=%s expense=%s events=%s balance=%s cash=%s net_worth=%s",
			age, year,
			rec.Income.StringFixed(2), rec.TotalExpense.StringFixed(2),
			rec.EventCost.Add(rec.RealEstateEventCost).Sub(rec.RealEstateEventIncome).StringFixed(2),
			rec.Balance.StringFixed(2), rec.CashBalance.StringFixed(2), rec.TotalNetWorth.StringFixed(2))
	}
	return rec
}

func addIncome(rec *domain.YearRecord, c domain.Category, id, label string, amount decimal.Decimal) {
	rec.Income = rec.Income.Add(amount)
	rec.Details.Add(c, id, label, amount)
}
