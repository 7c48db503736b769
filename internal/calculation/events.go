package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/money"
)

// foldEvents adds life events triggered at age and insurance payouts, which
// count as negative event cost.
func (st *simulationState) foldEvents(rec *domain.YearRecord, age int) {
	for _, ev := range st.household.LifeEvents {
		if ev.Age != age {
			continue
		}
		cost := money.FromFloat(ev.Cost)
		rec.EventCost = rec.EventCost.Add(cost)
		rec.Details.Add(domain.CategoryEvent, ev.ID, ev.Name, cost)
		rec.Events = append(rec.Events, ev.Name)
	}

	for _, ins := range st.household.Insurances {
		if ins.PayoutAge == nil || *ins.PayoutAge != age {
			continue
		}
		payout := money.FromFloat(ins.PayoutAmount)
		if payout.IsZero() {
			continue
		}
		label := ins.Name + " payout"
		rec.EventCost = rec.EventCost.Sub(payout)
		rec.Details.Add(domain.CategoryEvent, ins.ID, label, payout.Neg())
		rec.Events = append(rec.Events, label)
	}
}
