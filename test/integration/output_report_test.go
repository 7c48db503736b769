package integration

import (
	"bytes"
	"testing"

	"github.com/lifeplan/cashflow/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	_, result := loadAndRun(t)

	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(&buf, result, format))
			assert.NotEmpty(t, buf.Bytes())
		})
	}
}
