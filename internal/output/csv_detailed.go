package output

import (
	"bytes"
	"encoding/csv"

	"github.com/lifeplan/cashflow/internal/domain"
)

// CSVDetailedExporter writes the per-category breakdown and liability
// balances, one row per line item.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "Year", "Section", "Category", "ID", "Label", "Amount", "RemainingPayments"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range roundedRecords(result) {
		age, year := intToString(rec.Age), intToString(rec.Year)
		for _, cat := range domain.Categories() {
			for _, item := range rec.Details[cat] {
				row := []string{age, year, "detail", string(cat), item.ID, item.Label, FormatUnits(item.Amount), ""}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
		for _, l := range rec.Liabilities {
			row := []string{age, year, "liability", string(l.Kind), l.ID, l.Name, FormatUnits(l.Remaining), intToString(l.RemainingPayments)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
