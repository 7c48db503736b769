package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lifeplan/cashflow/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of household snapshot files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &InputParser{validate: v}
}

// LoadFromFile loads a household snapshot from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Household, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, validates and normalizes a YAML household snapshot. The
// returned household carries exactly one self member and an ID on every
// entity.
func (ip *InputParser) Parse(data []byte) (*domain.Household, error) {
	var household domain.Household
	if err := yaml.Unmarshal(data, &household); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateHousehold(&household); err != nil {
		return nil, fmt.Errorf("household validation failed: %w", err)
	}

	normalized := household.WithSelfMember()
	AssignIDs(normalized)
	return normalized, nil
}

// ValidateHousehold checks the structural shape of a household: enum
// values and non-negative counts. Logical inconsistencies are reported by
// Lint instead.
func (ip *InputParser) ValidateHousehold(h *domain.Household) error {
	if h == nil {
		return fmt.Errorf("no household provided")
	}

	err := ip.validate.Struct(h)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Household.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "gte":
		return fmt.Sprintf("%s cannot be negative", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// AssignIDs fills every missing entity ID with a random UUID.
func AssignIDs(h *domain.Household) {
	fill := func(id *string) {
		if *id == "" {
			*id = uuid.NewString()
		}
	}

	for i := range h.FamilyMembers {
		fill(&h.FamilyMembers[i].ID)
	}
	for i := range h.Incomes {
		fill(&h.Incomes[i].ID)
	}
	for i := range h.Expenses {
		fill(&h.Expenses[i].ID)
	}
	for i := range h.Pensions {
		fill(&h.Pensions[i].ID)
	}
	for i := range h.Education {
		fill(&h.Education[i].ID)
	}
	for i := range h.Insurances {
		fill(&h.Insurances[i].ID)
	}
	for i := range h.Housings {
		fill(&h.Housings[i].ID)
	}
	for i := range h.Assets {
		fill(&h.Assets[i].ID)
	}
	for i := range h.RealEstates {
		fill(&h.RealEstates[i].ID)
	}
	for i := range h.Loans {
		fill(&h.Loans[i].ID)
	}
	for i := range h.LifeEvents {
		fill(&h.LifeEvents[i].ID)
	}
}

// SaveHousehold writes a household snapshot as YAML.
func SaveHousehold(h *domain.Household, filename string) error {
	b, err := yaml.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to encode household: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleHousehold creates an example household snapshot
func CreateExampleHousehold() *domain.Household {
	birthDate, _ := time.Parse("2006-01-02", "1990-04-12")
	spouseBirth, _ := time.Parse("2006-01-02", "1991-09-03")
	apartmentPurchase, _ := time.Parse("2006-01-02", "2030-04-01")

	spouseLE := 90
	payoutAge := 60
	contributionEnd := 60
	withdrawalAge := 65
	leaseEnd := 40

	h := &domain.Household{
		Settings: domain.UserSettings{
			Name:             "Alex",
			BirthDate:        &birthDate,
			LifeExpectancy:   90,
			SimulationEndAge: 90,
			CurrentSavings:   600,
		},
		FamilyMembers: []domain.FamilyMember{
			{ID: "spouse", Name: "Sam", Relation: domain.RelationSpouse, BirthDate: &spouseBirth, LifeExpectancy: &spouseLE},
			{ID: "child-1", Name: "Robin", Relation: domain.RelationChild, BirthYear: 2022},
		},
		Incomes: []domain.Income{
			{ID: "salary", Name: "Salary", StartAge: 30, EndAge: 64, Amount: 550, GrowthRate: 1.5},
			{ID: "spouse-salary", Name: "Spouse salary", StartAge: 30, EndAge: 62, Amount: 300, GrowthRate: 1},
		},
		Expenses: []domain.Expense{
			{ID: "living", Name: "Living costs", StartAge: 30, EndAge: 90, Amount: 360, InflationRate: 1},
		},
		Pensions: []domain.Pension{
			{ID: "state-pension", Name: "State pension", OwnerID: domain.SelfMemberID, StartAge: 65, Amount: 180},
			{ID: "spouse-pension", Name: "Spouse pension", OwnerID: "spouse", StartAge: 65, Amount: 90},
		},
		Education: []domain.Education{
			{ID: "primary", OwnerID: "child-1", Name: "Primary school", StartAge: 6, EndAge: 11, Amount: 30},
			{ID: "university", OwnerID: "child-1", Name: "University", StartAge: 18, EndAge: 21, Amount: 150},
		},
		Insurances: []domain.Insurance{
			{ID: "endowment", Name: "Endowment policy", AnnualPremium: 12, StartAge: 30, EndAge: 59, PayoutAge: &payoutAge, PayoutAmount: 400},
		},
		Housings: []domain.Housing{
			{ID: "flat", Name: "Rented flat", Type: domain.HousingRental, StartAge: 30, EndAge: &leaseEnd,
				MonthlyRent: 12, Deposit: 24, RenewalFee: 12, RenewalInterval: 2},
		},
		Assets: []domain.Asset{
			{ID: "index-fund", Name: "Index fund", CurrentValue: 300, ReturnRate: 4, AnnualContribution: 60,
				ContributionEndAge: &contributionEnd, WithdrawalAge: &withdrawalAge, WithdrawalAmount: 80},
		},
		RealEstates: []domain.RealEstate{
			{ID: "apartment", Name: "Apartment", PurchasePrice: 4500, PurchaseDate: &apartmentPurchase, InitialCost: 250,
				LoanAmount: 3800, LoanRate: 1.2, LoanTerm: 420, MonthlyMaintenance: 3, AnnualTax: 15},
		},
		Loans: []domain.Loan{
			{ID: "car-loan", Name: "Car loan", Balance: 150, MonthlyPayment: 5, RemainingPayments: 30},
		},
		LifeEvents: []domain.LifeEvent{
			{ID: "wedding-anniversary-trip", Name: "Anniversary trip", Age: 45, Cost: 80},
			{ID: "car-replacement", Name: "Car replacement", Age: 50, Cost: 250},
		},
		Goals: domain.Goals{
			ShortTerm:  "Build a six month emergency fund",
			MidTerm:    "Buy an apartment",
			LongTerm:   "Fund university for Robin",
			Retirement: "Retire at 65 without drawing down the apartment",
		},
	}
	return h.WithSelfMember()
}
