package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	h, err := parser.LoadFromFile(filepath.Join("testdata", "household.yaml"))
	require.NoError(t, err)
	require.NotNil(t, h)

	require.NotNil(t, h.Settings.BirthDate)
	assert.Equal(t, time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC), h.Settings.BirthDate.UTC())
	assert.Equal(t, 90, h.Settings.SimulationEndAge)
	assert.Equal(t, 500.0, h.Settings.CurrentSavings)

	assert.Len(t, h.Incomes, 1)
	assert.Len(t, h.Loans, 1)
	assert.Equal(t, "Emergency fund", h.Goals.ShortTerm)
	require.NotNil(t, h.RealEstates[0].PurchaseDate)
	assert.Equal(t, 2031, h.RealEstates[0].PurchaseDate.Year())
}

func TestLoadFromFile_SelfMemberDerivedFromSettings(t *testing.T) {
	h, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "household.yaml"))
	require.NoError(t, err)

	self, ok := h.Self()
	require.True(t, ok)
	assert.Equal(t, "me", self.ID, "existing self ID is kept")
	assert.Equal(t, "Alex Doe", self.Name)
	require.NotNil(t, self.BirthDate)
	assert.Equal(t, 1990, self.BirthDate.Year(), "birth date comes from settings")
	require.NotNil(t, self.LifeExpectancy)
	assert.Equal(t, 88, *self.LifeExpectancy)
}

func TestLoadFromFile_LegacyAliases(t *testing.T) {
	h, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "household.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8.0, h.Insurances[0].AnnualPremium, "yearly_premium is accepted")
	assert.Equal(t, 5.0, h.Insurances[1].AnnualPremium, "annual_premium wins over premium")
	assert.Equal(t, 2, h.Housings[0].RenewalInterval, "interval is accepted")
}

func TestLoadFromFile_AssignsMissingIDs(t *testing.T) {
	h, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "household.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "salary", h.Incomes[0].ID)
	_, err = uuid.Parse(h.Expenses[0].ID)
	assert.NoError(t, err, "missing expense ID should be a UUID, got %q", h.Expenses[0].ID)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	h, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, h)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings: [unclosed\n"), 0644))

	h, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
	assert.Nil(t, h)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_StructuralErrors(t *testing.T) {
	h, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "invalid_relation.yaml"))
	require.Error(t, err)
	assert.Nil(t, h)

	msg := err.Error()
	assert.Contains(t, msg, "household validation failed")
	assert.Contains(t, msg, "family_members[0].relation must be one of")
	assert.Contains(t, msg, `"dog"`)
	assert.Contains(t, msg, "housings[0].type must be one of")
}

func TestValidateHousehold(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name      string
		household *domain.Household
		wantErr   string
	}{
		{
			name:      "nil household",
			household: nil,
			wantErr:   "no household provided",
		},
		{
			name:      "empty household is structurally valid",
			household: &domain.Household{},
		},
		{
			name: "missing relation",
			household: &domain.Household{
				FamilyMembers: []domain.FamilyMember{{ID: "x", Name: "X"}},
			},
			wantErr: "family_members[0].relation is required",
		},
		{
			name: "negative remaining payments",
			household: &domain.Household{
				Loans: []domain.Loan{{ID: "l", RemainingPayments: -1}},
			},
			wantErr: "loans[0].remaining_payments cannot be negative",
		},
		{
			name: "negative end age",
			household: &domain.Household{
				Settings: domain.UserSettings{SimulationEndAge: -5},
			},
			wantErr: "settings.simulation_end_age cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateHousehold(tt.household)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAssignIDsKeepsExisting(t *testing.T) {
	h := &domain.Household{
		Incomes: []domain.Income{{ID: "keep"}, {}},
		Loans:   []domain.Loan{{}},
	}
	AssignIDs(h)

	assert.Equal(t, "keep", h.Incomes[0].ID)
	assert.NotEmpty(t, h.Incomes[1].ID)
	assert.NotEqual(t, h.Incomes[1].ID, h.Loans[0].ID)
}

func TestSaveHouseholdRoundTrip(t *testing.T) {
	original := CreateExampleHousehold()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, SaveHousehold(original, path))

	loaded, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, original.Settings.Name, loaded.Settings.Name)
	assert.True(t, original.Settings.BirthDate.Equal(*loaded.Settings.BirthDate))
	assert.Len(t, loaded.FamilyMembers, len(original.FamilyMembers))
	assert.Equal(t, original.Incomes, loaded.Incomes)
	assert.Equal(t, original.Loans, loaded.Loans)
	assert.Equal(t, original.Housings[0].RenewalInterval, loaded.Housings[0].RenewalInterval)
}

func TestSaveHouseholdUnwritablePath(t *testing.T) {
	err := SaveHousehold(CreateExampleHousehold(), filepath.Join(t.TempDir(), "missing", "dir", "x.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}

func TestCreateExampleHousehold(t *testing.T) {
	h := CreateExampleHousehold()
	require.NotNil(t, h)

	assert.NoError(t, NewInputParser().ValidateHousehold(h))
	assert.Empty(t, Lint(h), "example household should lint clean")

	self, ok := h.Self()
	require.True(t, ok)
	assert.Equal(t, domain.SelfMemberID, self.ID)
}
