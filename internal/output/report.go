package output

import (
	"fmt"
	"io"

	"github.com/lifeplan/cashflow/internal/domain"
)

// GenerateReport formats result with the named formatter and writes it to w.
func GenerateReport(w io.Writer, result *domain.ProjectionResult, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
