package output

import (
	"github.com/goccy/go-json"
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/money"
)

// JSONFormatter serializes the rounded ledger and summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	out := domain.ProjectionResult{Records: roundedRecords(result)}
	if out.Records == nil {
		out.Records = []domain.YearRecord{}
	}
	if result != nil {
		out.Summary = roundedSummary(result.Summary)
	}
	return json.MarshalIndent(out, "", "  ")
}

func roundedSummary(s domain.Summary) domain.Summary {
	s.FinalNetWorth = money.RoundUnit(s.FinalNetWorth)
	s.PeakNetWorth = money.RoundUnit(s.PeakNetWorth)
	s.TotalIncome = money.RoundUnit(s.TotalIncome)
	s.TotalExpense = money.RoundUnit(s.TotalExpense)
	return s
}
