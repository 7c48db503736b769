package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/lifeplan/cashflow/internal/domain"
)

// CSVFormatter writes one row per simulated year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Age", "Year", "Income",
		"Living", "Education", "Housing", "Insurance", "LoanRepayment", "RealEstate", "AssetContribution",
		"TotalExpense", "EventCost", "Events", "RealEstateEventIncome", "RealEstateEventCost",
		"AssetWithdrawal", "Balance", "CashBalance", "InvestmentBalance", "RealEstateBalance",
		"DepositBalance", "TotalNetWorth",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range roundedRecords(result) {
		row := []string{
			intToString(rec.Age),
			intToString(rec.Year),
			FormatUnits(rec.Income),
			FormatUnits(rec.Expense.Living),
			FormatUnits(rec.Expense.Education),
			FormatUnits(rec.Expense.Housing),
			FormatUnits(rec.Expense.Insurance),
			FormatUnits(rec.Expense.LoanRepayment),
			FormatUnits(rec.Expense.RealEstate),
			FormatUnits(rec.Expense.AssetContribution),
			FormatUnits(rec.TotalExpense),
			FormatUnits(rec.EventCost),
			strings.Join(rec.Events, "; "),
			FormatUnits(rec.RealEstateEventIncome),
			FormatUnits(rec.RealEstateEventCost),
			FormatUnits(rec.AssetWithdrawal),
			FormatUnits(rec.Balance),
			FormatUnits(rec.CashBalance),
			FormatUnits(rec.InvestmentBalance),
			FormatUnits(rec.RealEstateBalance),
			FormatUnits(rec.DepositBalance),
			FormatUnits(rec.TotalNetWorth),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
