package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/money"
)

// foldExpenses adds living expenses, education costs keyed to the owner's
// age, and insurance premiums.
func (st *simulationState) foldExpenses(rec *domain.YearRecord, age, year int) {
	for _, ex := range st.household.Expenses {
		if !activeAt(ex.StartAge, ex.EndAge, age) {
			continue
		}
		amount := money.Compound(ex.Amount, ex.InflationRate, age-ex.StartAge)
		rec.Expense.Living = rec.Expense.Living.Add(amount)
		rec.Details.Add(domain.CategoryLiving, ex.ID, ex.Name, amount)
	}

	for _, ed := range st.household.Education {
		owner, ok := st.owner(ed.OwnerID)
		if !ok {
			continue
		}
		ownerAge, ok := memberAge(owner, age, year)
		if !ok || !activeAt(ed.StartAge, ed.EndAge, ownerAge) {
			continue
		}
		amount := money.FromFloat(ed.Amount)
		rec.Expense.Education = rec.Expense.Education.Add(amount)
		rec.Details.Add(domain.CategoryEducation, ed.ID, ed.Name, amount)
	}

	for _, ins := range st.household.Insurances {
		if !activeAt(ins.StartAge, ins.EndAge, age) {
			continue
		}
		premium := money.FromFloat(ins.AnnualPremium)
		rec.Expense.Insurance = rec.Expense.Insurance.Add(premium)
		rec.Details.Add(domain.CategoryInsurance, ins.ID, ins.Name, premium)
	}
}

// foldLoans pays down each consumer loan by up to twelve installments.
// Interest is not modelled for consumer loans.
func (st *simulationState) foldLoans(rec *domain.YearRecord, age int) {
	for _, ls := range st.loans {
		if !ls.paidOff {
			res := RepayLoan(ls.balance, ls.payment, ls.remaining)
			ls.balance = res.Balance
			ls.remaining = res.Remaining
			if res.Paid.IsPositive() {
				rec.Expense.LoanRepayment = rec.Expense.LoanRepayment.Add(res.Paid)
				rec.Details.Add(domain.CategoryLoan, ls.loan.ID, ls.loan.Name, res.Paid)
			}
			if res.PaidOff() {
				ls.paidOff = true
				st.logger.Debugf("loan %q paid off at age %d (remaining balance %s)",
					ls.loan.Name, age, ls.balance.StringFixed(2))
			}
		}

		rec.Liabilities = append(rec.Liabilities, domain.LiabilityBalance{
			ID:                ls.loan.ID,
			Name:              ls.loan.Name,
			Kind:              domain.LiabilityLoan,
			Remaining:         ls.balance,
			RemainingPayments: ls.remaining,
		})
	}
}
