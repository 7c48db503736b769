package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/dateutil"
	"github.com/lifeplan/cashflow/pkg/money"
	"github.com/shopspring/decimal"
)

// foldHousing adds rental and owned housing costs for age. A rental deposit
// is paid in the start year, held as a deposit balance while the lease
// runs, and refunded as income in the end year.
func (st *simulationState) foldHousing(rec *domain.YearRecord, age int) {
	for i, hs := range st.household.Housings {
		switch hs.Type {
		case domain.HousingRental:
			st.rentalCosts(rec, hs, age)
		case domain.HousingOwned:
			st.ownedCosts(rec, st.housingLoans[i], hs, age)
		}
	}
}

func (st *simulationState) rentalCosts(rec *domain.YearRecord, hs domain.Housing, age int) {
	deposit := money.NonNegative(money.FromFloat(hs.Deposit))

	if hs.ActiveAt(age) {
		addHousing(rec, hs.ID, hs.Name+" rent", money.Annual(hs.MonthlyRent))

		if age == hs.StartAge && deposit.IsPositive() {
			addHousing(rec, hs.ID, hs.Name+" deposit", deposit)
		}
		if hs.RenewalInterval > 0 && age > hs.StartAge && (age-hs.StartAge)%hs.RenewalInterval == 0 {
			addHousing(rec, hs.ID, hs.Name+" renewal", money.FromFloat(hs.RenewalFee))
		}
	}

	if !deposit.IsPositive() || (hs.EndAge != nil && *hs.EndAge < hs.StartAge) {
		return
	}
	switch {
	case hs.EndAge != nil && age == *hs.EndAge:
		addIncome(rec, domain.CategoryIncome, hs.ID, hs.Name+" deposit refund", deposit)
	case age >= hs.StartAge && (hs.EndAge == nil || age < *hs.EndAge):
		rec.DepositBalance = rec.DepositBalance.Add(deposit)
	}
}

func (st *simulationState) ownedCosts(rec *domain.YearRecord, hl *housingLoanState, hs domain.Housing, age int) {
	if !hs.ActiveAt(age) {
		return
	}
	addHousing(rec, hs.ID, hs.Name+" property tax", money.FromFloat(hs.PropertyTax))
	addHousing(rec, hs.ID, hs.Name+" maintenance", money.Annual(hs.MonthlyMaintenance))

	if hl == nil || (hs.LoanPayoffAge > 0 && age >= hs.LoanPayoffAge) {
		return
	}
	payment := money.FromFloat(hs.LoanMonthlyPayment)
	paid := payment.Mul(decimal.NewFromInt(dateutil.MonthsPerYear))
	if hl.tracked {
		res := AmortizeMonths(hl.balance, decimal.Zero, payment, dateutil.MonthsPerYear, dateutil.MonthsPerYear)
		hl.balance = res.Balance
		paid = res.Paid
		if res.Paid.IsPositive() && !hl.balance.IsPositive() {
			st.logger.Debugf("housing loan %q paid off at age %d", hs.Name, age)
		}
	}
	addHousing(rec, hs.ID, hs.Name+" loan", paid)
}

// reportHousingLoans lists tracked housing loan balances after payments.
func (st *simulationState) reportHousingLoans(rec *domain.YearRecord) {
	for _, hl := range st.housingLoans {
		if hl == nil || !hl.tracked {
			continue
		}
		remaining := 0
		if payment := money.FromFloat(hl.housing.LoanMonthlyPayment); payment.IsPositive() {
			remaining = int(hl.balance.Div(payment).Ceil().IntPart())
		}
		rec.Liabilities = append(rec.Liabilities, domain.LiabilityBalance{
			ID:                hl.housing.ID,
			Name:              hl.housing.Name,
			Kind:              domain.LiabilityHousingLoan,
			Remaining:         hl.balance,
			RemainingPayments: remaining,
		})
	}
}

func addHousing(rec *domain.YearRecord, id, label string, amount decimal.Decimal) {
	if amount.IsZero() {
		return
	}
	rec.Expense.Housing = rec.Expense.Housing.Add(amount)
	rec.Details.Add(domain.CategoryHousing, id, label, amount)
}
