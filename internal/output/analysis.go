package output

import (
	"github.com/lifeplan/cashflow/internal/domain"
)

// Milestone is a notable point in a projected ledger.
type Milestone struct {
	Age   int
	Year  int
	Label string
}

// ExtractMilestones lists named events and liability payoffs in age order.
// Extracted from console rendering for testability.
func ExtractMilestones(records []domain.YearRecord) []Milestone {
	var out []Milestone
	owing := make(map[string]bool)
	for _, rec := range records {
		for _, ev := range rec.Events {
			out = append(out, Milestone{Age: rec.Age, Year: rec.Year, Label: ev})
		}
		for _, l := range rec.Liabilities {
			key := string(l.Kind) + ":" + l.ID
			if l.Remaining.IsPositive() {
				owing[key] = true
				continue
			}
			if owing[key] {
				out = append(out, Milestone{Age: rec.Age, Year: rec.Year, Label: l.Name + " paid off"})
				owing[key] = false
			}
		}
	}
	return out
}
