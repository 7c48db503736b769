package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAgeCalculation tests the age calculation function with various scenarios
func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name        string
		birthDate   time.Time
		atDate      time.Time
		expectedAge int
	}{
		{
			name:        "Exact birthday",
			birthDate:   time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
		},
		{
			name:        "Day before birthday",
			birthDate:   time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC),
			expectedAge: 59,
		},
		{
			name:        "Month after birthday",
			birthDate:   time.Date(1965, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
		},
		{
			name:        "Leap day birth checked on Feb 28",
			birthDate:   time.Date(1964, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			expectedAge: 60,
		},
		{
			name:        "Born this year",
			birthDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expectedAge: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedAge, Age(tt.birthDate, tt.atDate))
		})
	}
}

func TestAgeInYearAndYearAtAge(t *testing.T) {
	assert.Equal(t, 8, AgeInYear(2017, 2025))
	assert.Equal(t, 2030, YearAtAge(2025, 40, 45))
	assert.Equal(t, 2025, YearAtAge(2025, 40, 40))
}

func TestMonthsOwnedInYear(t *testing.T) {
	date := func(y, m int) *time.Time {
		d := time.Date(y, time.Month(m), 15, 0, 0, 0, 0, time.UTC)
		return &d
	}

	tests := []struct {
		name string
		year int
		from *time.Time
		to   *time.Time
		want int
	}{
		{"no bounds", 2030, nil, nil, 12},
		{"acquired earlier", 2030, date(2020, 6), nil, 12},
		{"acquired later", 2030, date(2031, 1), nil, 0},
		{"acquired in April", 2030, date(2030, 4), nil, 9},
		{"acquired in December", 2030, date(2030, 12), nil, 1},
		{"sold in March", 2030, nil, date(2030, 3), 3},
		{"sold earlier", 2030, nil, date(2029, 3), 0},
		{"bought and sold same year", 2030, date(2030, 4), date(2030, 9), 6},
		{"sold before bought", 2030, date(2030, 9), date(2030, 4), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsOwnedInYear(tt.year, tt.from, tt.to))
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(2100))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(2025))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-04-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("April 1st")
	assert.Error(t, err)
}
