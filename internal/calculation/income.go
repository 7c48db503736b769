package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/money"
)

// foldIncome adds active incomes, compounded from each income's own start
// age, and pensions whose owner has reached the start age while alive.
func (st *simulationState) foldIncome(rec *domain.YearRecord, age, year int) {
	for _, in := range st.household.Incomes {
		if !activeAt(in.StartAge, in.EndAge, age) {
			continue
		}
		amount := money.Compound(in.Amount, in.GrowthRate, age-in.StartAge)
		addIncome(rec, domain.CategoryIncome, in.ID, in.Name, amount)
	}

	for _, p := range st.household.Pensions {
		owner, ok := st.owner(p.OwnerID)
		if !ok {
			continue
		}
		ownerAge, ok := memberAge(owner, age, year)
		if !ok || ownerAge < p.StartAge || !owner.AliveAt(ownerAge) {
			continue
		}
		label := p.Name
		if label == "" {
			label = owner.Name
		}
		addIncome(rec, domain.CategoryPension, p.ID, label, money.FromFloat(p.Amount))
	}
}
