package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/dateutil"
	"github.com/lifeplan/cashflow/pkg/money"
	"github.com/shopspring/decimal"
)

// foldRealEstate records each property's steady cash flow for the months it
// is held, the one-time purchase and sale flows, and its holding value.
//
// Steady net = rent - mortgage - tax - maintenance, pro-rated by months
// held. A positive net is income; a negative net is a real-estate expense.
func (st *simulationState) foldRealEstate(rec *domain.YearRecord, age, year int) {
	for _, ms := range st.mortgages {
		re := ms.property

		if re.PurchasedIn(year) {
			outflow := money.FromFloat(re.PurchasePrice).
				Sub(money.FromFloat(re.LoanAmount)).
				Add(money.FromFloat(re.InitialCost))
			label := "Purchase: " + re.Name
			rec.RealEstateEventCost = rec.RealEstateEventCost.Add(outflow)
			rec.Details.Add(domain.CategoryEvent, re.ID, label, outflow)
			rec.Events = append(rec.Events, label)
			st.logger.Debugf("property %q purchased at age %d (%d): outflow %s", re.Name, age, year, outflow.StringFixed(2))
		}

		if months := dateutil.MonthsOwnedInYear(year, re.PurchaseDate, re.SellDate); months > 0 {
			rent := money.Prorate(money.Annual(re.MonthlyRent), months)
			maintenance := money.Prorate(money.Annual(re.MonthlyMaintenance), months)
			tax := money.Prorate(money.FromFloat(re.AnnualTax), months)

			res := AmortizeMonths(ms.balance, ms.monthlyRate, ms.payment, ms.remaining, months)
			ms.balance = res.Balance
			ms.remaining = res.Remaining

			net := money.Settle(rent.Sub(res.Paid).Sub(tax).Sub(maintenance))
			rec.Details.Add(domain.CategoryRealEstate, re.ID, re.Name, net)
			if net.IsPositive() {
				rec.Income = rec.Income.Add(net)
			} else {
				rec.Expense.RealEstate = rec.Expense.RealEstate.Add(net.Neg())
			}
		}

		if re.SoldIn(year) {
			profit := money.FromFloat(re.SellPrice).
				Sub(money.FromFloat(re.SellCost)).
				Sub(ms.balance)
			label := "Sale: " + re.Name
			if profit.IsPositive() {
				rec.RealEstateEventIncome = rec.RealEstateEventIncome.Add(profit)
			} else {
				rec.RealEstateEventCost = rec.RealEstateEventCost.Add(profit.Neg())
			}
			rec.Details.Add(domain.CategoryEvent, re.ID, label, profit.Neg())
			rec.Events = append(rec.Events, label)
			ms.balance = decimal.Zero
			ms.remaining = 0
			st.logger.Debugf("property %q sold at age %d (%d): profit %s", re.Name, age, year, profit.StringFixed(2))
		}

		if re.OwnedAtEndOf(year) {
			rec.RealEstateBalance = rec.RealEstateBalance.Add(money.FromFloat(re.PurchasePrice))
		}
	}
}

// reportMortgages lists mortgage balances for properties bought by year
// and not sold before it.
func (st *simulationState) reportMortgages(rec *domain.YearRecord, year int) {
	for _, ms := range st.mortgages {
		re := ms.property
		if re.LoanAmount <= 0 {
			continue
		}
		if re.PurchaseDate != nil && re.PurchaseDate.Year() > year {
			continue
		}
		if re.SellDate != nil && re.SellDate.Year() < year {
			continue
		}
		rec.Liabilities = append(rec.Liabilities, domain.LiabilityBalance{
			ID:                re.ID,
			Name:              re.Name,
			Kind:              domain.LiabilityMortgage,
			Remaining:         ms.balance,
			RemainingPayments: ms.remaining,
		})
	}
}
