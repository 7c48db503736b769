package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lifeplan/cashflow/internal/domain"
)

// ConsoleFormatter renders the ledger as a plain-text table followed by a
// summary and milestones.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CASH FLOW PROJECTION")
	fmt.Fprintln(&buf, "================================")
	if result.IsEmpty() {
		fmt.Fprintln(&buf, "No projection: a birth date is required.")
		return buf.Bytes(), nil
	}

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Age\tYear\tIncome\tExpense\tEvents\tBalance\tCash\tInvestments\tReal estate\tNet worth\t")
	for _, rec := range roundedRecords(result) {
		events := rec.EventCost.Add(rec.RealEstateEventCost).Sub(rec.RealEstateEventIncome)
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			rec.Age, rec.Year,
			FormatAmount(rec.Income),
			FormatAmount(rec.TotalExpense.Add(rec.AssetContribution)),
			FormatAmount(events),
			FormatAmount(rec.Balance),
			FormatAmount(rec.CashBalance),
			FormatAmount(rec.InvestmentBalance),
			FormatAmount(rec.RealEstateBalance),
			FormatAmount(rec.TotalNetWorth),
		)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	s := result.Summary
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, "--------------------------------")
	fmt.Fprintf(&buf, "Ages:                 %d-%d\n", s.StartAge, s.EndAge)
	fmt.Fprintf(&buf, "Total income:         %s\n", FormatAmount(s.TotalIncome))
	fmt.Fprintf(&buf, "Total expense:        %s\n", FormatAmount(s.TotalExpense))
	fmt.Fprintf(&buf, "Final net worth:      %s\n", FormatAmount(s.FinalNetWorth))
	fmt.Fprintf(&buf, "Peak net worth:       %s (age %d)\n", FormatAmount(s.PeakNetWorth), s.PeakNetWorthAge)
	fmt.Fprintf(&buf, "Cash first negative:  %s\n", FormatAge(s.FirstNegativeCashAge))
	fmt.Fprintf(&buf, "Investments depleted: %s\n", FormatAge(s.AssetsDepletedAge))

	if milestones := ExtractMilestones(result.Records); len(milestones) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "MILESTONES")
		fmt.Fprintln(&buf, "--------------------------------")
		for _, m := range milestones {
			fmt.Fprintf(&buf, "%3d (%d)  %s\n", m.Age, m.Year, strings.TrimSpace(m.Label))
		}
	}
	return buf.Bytes(), nil
}
