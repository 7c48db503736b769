package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/dateutil"
)

// Project walks the household forward one year at a time from the owner's
// current age to the end age inclusive and returns one record per age, in
// increasing age order. The household is never modified.
//
// A household without a birth date, or whose end age precedes the current
// age, yields an empty (non-nil) ledger.
func (pe *ProjectionEngine) Project(h *domain.Household) []domain.YearRecord {
	log := pe.logger()
	records := []domain.YearRecord{}

	if h == nil || h.Settings.BirthDate == nil {
		log.Warnf("projection skipped: birth date is required")
		return records
	}

	now := pe.now()()
	currentAge := dateutil.Age(*h.Settings.BirthDate, now)
	endAge := ResolveEndAge(h.Settings)
	if endAge < currentAge {
		log.Warnf("projection skipped: end age %d is before current age %d", endAge, currentAge)
		return records
	}

	log.Debugf("projecting ages %d..%d from %s (savings %.2f, %d incomes, %d expenses, %d assets, %d loans, %d properties)",
		currentAge, endAge, now.Format("2006-01-02"), h.Settings.CurrentSavings,
		len(h.Incomes), len(h.Expenses), len(h.Assets), len(h.Loans), len(h.RealEstates))

	st := newSimulationState(h, log, pe.Debug)
	records = make([]domain.YearRecord, 0, endAge-currentAge+1)
	for age := currentAge; age <= endAge; age++ {
		year := dateutil.YearAtAge(now.Year(), currentAge, age)
		records = append(records, st.processYear(age, year))
	}
	return records
}
