package config

import (
	"testing"
	"time"

	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLint(t *testing.T) {
	birth := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	purchase := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	sale := time.Date(2029, time.January, 1, 0, 0, 0, 0, time.UTC)
	endAge := 30

	tests := []struct {
		name      string
		household *domain.Household
		contains  string
	}{
		{
			name:      "missing birth date",
			household: &domain.Household{},
			contains:  "settings.birth_date is missing",
		},
		{
			name: "inverted income window",
			household: &domain.Household{
				Settings: domain.UserSettings{BirthDate: &birth},
				Incomes:  []domain.Income{{Name: "Bonus", StartAge: 50, EndAge: 40}},
			},
			contains: `income "Bonus": end_age 40 is before start_age 50`,
		},
		{
			name: "unknown pension owner",
			household: &domain.Household{
				Settings: domain.UserSettings{BirthDate: &birth},
				Pensions: []domain.Pension{{Name: "Widow", OwnerID: "nobody"}},
			},
			contains: `pension "Widow" refers to unknown family member "nobody"`,
		},
		{
			name: "member without birth year",
			household: &domain.Household{
				Settings:      domain.UserSettings{BirthDate: &birth},
				FamilyMembers: []domain.FamilyMember{{ID: "p", Name: "Parent", Relation: domain.RelationParent}},
			},
			contains: `family member "Parent" has no birth date or birth year`,
		},
		{
			name: "housing ends before it starts",
			household: &domain.Household{
				Settings: domain.UserSettings{BirthDate: &birth},
				Housings: []domain.Housing{{Name: "Flat", Type: domain.HousingRental, StartAge: 35, EndAge: &endAge}},
			},
			contains: `housing "Flat": end_age 30 is before start_age 35`,
		},
		{
			name: "sale before purchase",
			household: &domain.Household{
				Settings:    domain.UserSettings{BirthDate: &birth},
				RealEstates: []domain.RealEstate{{Name: "Lot", PurchaseDate: &purchase, SellDate: &sale}},
			},
			contains: `real estate "Lot" is sold before it is purchased`,
		},
		{
			name: "loan never repaid",
			household: &domain.Household{
				Settings: domain.UserSettings{BirthDate: &birth},
				Loans:    []domain.Loan{{Name: "Card", Balance: 1000, MonthlyPayment: 10, RemainingPayments: 12}},
			},
			contains: `loan "Card": 12 payments of 10.00 do not repay the balance 1000.00`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := Lint(tt.household)
			assert.Contains(t, warnings, tt.contains)
		})
	}
}

func TestLintSelfOwnerIsKnown(t *testing.T) {
	birth := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	h := &domain.Household{
		Settings: domain.UserSettings{BirthDate: &birth},
		Pensions: []domain.Pension{{Name: "Mine", OwnerID: domain.SelfMemberID}, {Name: "Implicit"}},
	}
	assert.Empty(t, Lint(h))
}
