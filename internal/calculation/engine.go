package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
)

// DefaultEndAge is used when neither a simulation end age nor a life
// expectancy is configured.
const DefaultEndAge = 100

// ProjectionEngine runs deterministic year-by-year cash-flow projections.
// An engine holds no state between runs and may be shared by goroutines
// once configured.
type ProjectionEngine struct {
	Debug  bool // Enable per-year debug output
	Logger Logger
	clock  Clock
}

// NewProjectionEngine creates a projection engine using the system clock
// and a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Logger: NopLogger{},
		clock:  SystemClock,
	}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// SetClock overrides the time provider. If nil is provided, the system clock is used.
func (pe *ProjectionEngine) SetClock(c Clock) {
	if c == nil {
		pe.clock = SystemClock
		return
	}
	pe.clock = c
}

// Run projects the household and summarizes the resulting ledger. An empty
// result means the household lacked the data needed to project.
func (pe *ProjectionEngine) Run(h *domain.Household) *domain.ProjectionResult {
	records := pe.Project(h)
	return &domain.ProjectionResult{
		Records: records,
		Summary: Summarize(records),
	}
}

// ResolveEndAge returns the last simulated age for the settings.
func ResolveEndAge(s domain.UserSettings) int {
	switch {
	case s.SimulationEndAge > 0:
		return s.SimulationEndAge
	case s.LifeExpectancy > 0:
		return s.LifeExpectancy
	default:
		return DefaultEndAge
	}
}

func (pe *ProjectionEngine) logger() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

func (pe *ProjectionEngine) now() Clock {
	if pe.clock == nil {
		return SystemClock
	}
	return pe.clock
}
