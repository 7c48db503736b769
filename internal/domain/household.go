package domain

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Relation is a family member's relation to the planning household's owner.
type Relation string

const (
	RelationSelf   Relation = "self"
	RelationSpouse Relation = "spouse"
	RelationChild  Relation = "child"
	RelationParent Relation = "parent"
	RelationOther  Relation = "other"
)

// SelfMemberID is the ID given to a derived self member when none exists.
const SelfMemberID = "self"

// HousingType distinguishes rented from owned housing.
type HousingType string

const (
	HousingRental HousingType = "rental"
	HousingOwned  HousingType = "owned"
)

// Household is the immutable snapshot a projection runs against.
// Monetary fields are plain floats in a shared unit; the engine never
// mutates a Household.
type Household struct {
	Settings      UserSettings   `yaml:"settings" json:"settings"`
	FamilyMembers []FamilyMember `yaml:"family_members,omitempty" json:"family_members,omitempty" validate:"dive"`
	Incomes       []Income       `yaml:"incomes,omitempty" json:"incomes,omitempty"`
	Expenses      []Expense      `yaml:"expenses,omitempty" json:"expenses,omitempty"`
	Pensions      []Pension      `yaml:"pensions,omitempty" json:"pensions,omitempty"`
	Education     []Education    `yaml:"education,omitempty" json:"education,omitempty"`
	Insurances    []Insurance    `yaml:"insurances,omitempty" json:"insurances,omitempty"`
	Housings      []Housing      `yaml:"housings,omitempty" json:"housings,omitempty" validate:"dive"`
	Assets        []Asset        `yaml:"assets,omitempty" json:"assets,omitempty"`
	RealEstates   []RealEstate   `yaml:"real_estates,omitempty" json:"real_estates,omitempty" validate:"dive"`
	Loans         []Loan         `yaml:"loans,omitempty" json:"loans,omitempty" validate:"dive"`
	LifeEvents    []LifeEvent    `yaml:"life_events,omitempty" json:"life_events,omitempty"`
	Goals         Goals          `yaml:"goals,omitempty" json:"goals,omitempty"`
}

// UserSettings holds the household owner's top-level planning settings.
type UserSettings struct {
	Name             string     `yaml:"name,omitempty" json:"name,omitempty"`
	BirthDate        *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	LifeExpectancy   int        `yaml:"life_expectancy" json:"life_expectancy" validate:"gte=0"`
	SimulationEndAge int        `yaml:"simulation_end_age" json:"simulation_end_age" validate:"gte=0"`
	CurrentSavings   float64    `yaml:"current_savings" json:"current_savings"`
}

// FamilyMember is anyone whose age gates a pension or education cost.
type FamilyMember struct {
	ID             string     `yaml:"id" json:"id"`
	Name           string     `yaml:"name" json:"name"`
	Relation       Relation   `yaml:"relation" json:"relation" validate:"required,oneof=self spouse child parent other"`
	BirthDate      *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	BirthYear      int        `yaml:"birth_year,omitempty" json:"birth_year,omitempty" validate:"gte=0"`
	LifeExpectancy *int       `yaml:"life_expectancy,omitempty" json:"life_expectancy,omitempty" validate:"omitempty,gte=0"`
}

// KnownBirthYear returns the member's birth year, preferring the full birth date.
func (m FamilyMember) KnownBirthYear() (int, bool) {
	if m.BirthDate != nil {
		return m.BirthDate.Year(), true
	}
	if m.BirthYear > 0 {
		return m.BirthYear, true
	}
	return 0, false
}

// AliveAt reports whether the member is alive at age.
func (m FamilyMember) AliveAt(age int) bool {
	return m.LifeExpectancy == nil || age <= *m.LifeExpectancy
}

// Income is a recurring inflow compounding from its own start age.
type Income struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	StartAge   int     `yaml:"start_age" json:"start_age"`
	EndAge     int     `yaml:"end_age" json:"end_age"`
	Amount     float64 `yaml:"amount" json:"amount"`
	GrowthRate float64 `yaml:"growth_rate" json:"growth_rate"`
}

// Expense is a recurring outflow inflating from its own start age.
type Expense struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	StartAge      int     `yaml:"start_age" json:"start_age"`
	EndAge        int     `yaml:"end_age" json:"end_age"`
	Amount        float64 `yaml:"amount" json:"amount"`
	InflationRate float64 `yaml:"inflation_rate" json:"inflation_rate"`
}

// Pension pays Amount every year once its owner reaches StartAge, while alive.
// An empty OwnerID refers to the self member.
type Pension struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name,omitempty" json:"name,omitempty"`
	OwnerID  string  `yaml:"owner_id,omitempty" json:"owner_id,omitempty"`
	StartAge int     `yaml:"start_age" json:"start_age"`
	Amount   float64 `yaml:"amount" json:"amount"`
}

// Education is a cost incurred while its owner's age is within range.
type Education struct {
	ID       string  `yaml:"id" json:"id"`
	OwnerID  string  `yaml:"owner_id" json:"owner_id"`
	Name     string  `yaml:"name" json:"name"`
	StartAge int     `yaml:"start_age" json:"start_age"`
	EndAge   int     `yaml:"end_age" json:"end_age"`
	Amount   float64 `yaml:"amount" json:"amount"`
}

// Insurance is an annual premium with an optional one-time payout.
type Insurance struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	AnnualPremium float64 `yaml:"annual_premium" json:"annual_premium"`
	StartAge      int     `yaml:"start_age" json:"start_age"`
	EndAge        int     `yaml:"end_age" json:"end_age"`
	PayoutAge     *int    `yaml:"payout_age,omitempty" json:"payout_age,omitempty"`
	PayoutAmount  float64 `yaml:"payout_amount,omitempty" json:"payout_amount,omitempty"`
}

// UnmarshalYAML accepts the legacy premium keys when annual_premium is absent.
func (in *Insurance) UnmarshalYAML(value *yaml.Node) error {
	type plain Insurance
	type Alias struct {
		plain         `yaml:",inline"`
		Premium       *float64 `yaml:"premium,omitempty"`
		YearlyPremium *float64 `yaml:"yearly_premium,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	*in = Insurance(aux.plain)
	if !hasKey(value, "annual_premium") {
		switch {
		case aux.YearlyPremium != nil:
			in.AnnualPremium = *aux.YearlyPremium
		case aux.Premium != nil:
			in.AnnualPremium = *aux.Premium
		}
	}
	return nil
}

// Housing is a rented or owned residence.
type Housing struct {
	ID       string      `yaml:"id" json:"id"`
	Name     string      `yaml:"name" json:"name"`
	Type     HousingType `yaml:"type" json:"type" validate:"required,oneof=rental owned"`
	StartAge int         `yaml:"start_age" json:"start_age"`
	EndAge   *int        `yaml:"end_age,omitempty" json:"end_age,omitempty"`

	// Rental
	MonthlyRent     float64 `yaml:"monthly_rent,omitempty" json:"monthly_rent,omitempty"`
	Deposit         float64 `yaml:"deposit,omitempty" json:"deposit,omitempty"`
	RenewalFee      float64 `yaml:"renewal_fee,omitempty" json:"renewal_fee,omitempty"`
	RenewalInterval int     `yaml:"renewal_interval,omitempty" json:"renewal_interval,omitempty" validate:"gte=0"`

	// Owned
	MonthlyMaintenance float64 `yaml:"monthly_maintenance,omitempty" json:"monthly_maintenance,omitempty"`
	PropertyTax        float64 `yaml:"property_tax,omitempty" json:"property_tax,omitempty"`
	LoanBalance        float64 `yaml:"loan_balance,omitempty" json:"loan_balance,omitempty"`
	LoanMonthlyPayment float64 `yaml:"loan_monthly_payment,omitempty" json:"loan_monthly_payment,omitempty"`
	LoanPayoffAge      int     `yaml:"loan_payoff_age,omitempty" json:"loan_payoff_age,omitempty" validate:"gte=0"`
}

// UnmarshalYAML accepts the legacy interval key when renewal_interval is absent.
func (h *Housing) UnmarshalYAML(value *yaml.Node) error {
	type plain Housing
	type Alias struct {
		plain    `yaml:",inline"`
		Interval *int `yaml:"interval,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	*h = Housing(aux.plain)
	if aux.Interval != nil && !hasKey(value, "renewal_interval") {
		h.RenewalInterval = *aux.Interval
	}
	return nil
}

// ActiveAt reports whether the housing costs apply at age.
func (h Housing) ActiveAt(age int) bool {
	return age >= h.StartAge && (h.EndAge == nil || age <= *h.EndAge)
}

// Asset is an investment account with growth, contributions and withdrawals.
type Asset struct {
	ID                 string  `yaml:"id" json:"id"`
	Name               string  `yaml:"name" json:"name"`
	CurrentValue       float64 `yaml:"current_value" json:"current_value"`
	ReturnRate         float64 `yaml:"return_rate" json:"return_rate"`
	AnnualContribution float64 `yaml:"annual_contribution,omitempty" json:"annual_contribution,omitempty"`
	ContributionEndAge *int    `yaml:"contribution_end_age,omitempty" json:"contribution_end_age,omitempty"`
	WithdrawalAge      *int    `yaml:"withdrawal_age,omitempty" json:"withdrawal_age,omitempty"`
	WithdrawalAmount   float64 `yaml:"withdrawal_amount,omitempty" json:"withdrawal_amount,omitempty"`
}

// ContributesAt reports whether the contribution window is open at age.
func (a Asset) ContributesAt(age int) bool {
	if a.ContributionEndAge != nil && age > *a.ContributionEndAge {
		return false
	}
	return !a.WithdrawsAt(age)
}

// WithdrawsAt reports whether withdrawals have started by age.
func (a Asset) WithdrawsAt(age int) bool {
	return a.WithdrawalAge != nil && age >= *a.WithdrawalAge
}

// RealEstate is a property held as an investment or residence with an
// optional amortizing mortgage.
type RealEstate struct {
	ID                 string     `yaml:"id" json:"id"`
	Name               string     `yaml:"name" json:"name"`
	PurchasePrice      float64    `yaml:"purchase_price" json:"purchase_price"`
	PurchaseDate       *time.Time `yaml:"purchase_date,omitempty" json:"purchase_date,omitempty"`
	InitialCost        float64    `yaml:"initial_cost,omitempty" json:"initial_cost,omitempty"`
	LoanAmount         float64    `yaml:"loan_amount,omitempty" json:"loan_amount,omitempty"`
	LoanRate           float64    `yaml:"loan_rate,omitempty" json:"loan_rate,omitempty"`
	LoanTerm           int        `yaml:"loan_term,omitempty" json:"loan_term,omitempty" validate:"gte=0"`
	MonthlyRent        float64    `yaml:"monthly_rent,omitempty" json:"monthly_rent,omitempty"`
	MonthlyMaintenance float64    `yaml:"monthly_maintenance,omitempty" json:"monthly_maintenance,omitempty"`
	AnnualTax          float64    `yaml:"annual_tax,omitempty" json:"annual_tax,omitempty"`
	SellDate           *time.Time `yaml:"sell_date,omitempty" json:"sell_date,omitempty"`
	SellPrice          float64    `yaml:"sell_price,omitempty" json:"sell_price,omitempty"`
	SellCost           float64    `yaml:"sell_cost,omitempty" json:"sell_cost,omitempty"`
}

// SoldBeforePurchase reports whether the holding window is inverted. Such a
// property is never held and never produces purchase or sale flows.
func (r RealEstate) SoldBeforePurchase() bool {
	return r.PurchaseDate != nil && r.SellDate != nil && r.SellDate.Before(*r.PurchaseDate)
}

// PurchasedIn reports whether the property is bought during year.
func (r RealEstate) PurchasedIn(year int) bool {
	return r.PurchaseDate != nil && r.PurchaseDate.Year() == year && !r.SoldBeforePurchase()
}

// SoldIn reports whether the property is sold during year.
func (r RealEstate) SoldIn(year int) bool {
	return r.SellDate != nil && r.SellDate.Year() == year && !r.SoldBeforePurchase()
}

// OwnedAtEndOf reports whether the property is still held after year.
func (r RealEstate) OwnedAtEndOf(year int) bool {
	if r.PurchaseDate != nil && r.PurchaseDate.Year() > year {
		return false
	}
	return r.SellDate == nil || r.SellDate.Year() > year
}

// Loan is a consumer loan paid down by a fixed monthly payment.
type Loan struct {
	ID                string  `yaml:"id" json:"id"`
	Name              string  `yaml:"name" json:"name"`
	Balance           float64 `yaml:"balance" json:"balance"`
	MonthlyPayment    float64 `yaml:"monthly_payment" json:"monthly_payment"`
	RemainingPayments int     `yaml:"remaining_payments" json:"remaining_payments" validate:"gte=0"`
}

// LifeEvent is a one-time cost (positive) or inflow (negative) at Age.
type LifeEvent struct {
	ID   string  `yaml:"id" json:"id"`
	Name string  `yaml:"name" json:"name"`
	Age  int     `yaml:"age" json:"age"`
	Cost float64 `yaml:"cost" json:"cost"`
}

// Goals are free-text planning goals. The projection engine ignores them.
type Goals struct {
	ShortTerm  string `yaml:"short_term,omitempty" json:"short_term,omitempty"`
	MidTerm    string `yaml:"mid_term,omitempty" json:"mid_term,omitempty"`
	LongTerm   string `yaml:"long_term,omitempty" json:"long_term,omitempty"`
	Retirement string `yaml:"retirement,omitempty" json:"retirement,omitempty"`
}

// Self returns the member with relation self, if any.
func (h *Household) Self() (FamilyMember, bool) {
	for _, m := range h.FamilyMembers {
		if m.Relation == RelationSelf {
			return m, true
		}
	}
	return FamilyMember{}, false
}

// WithSelfMember returns a copy of the household whose family list holds
// exactly one self entry built from the user settings. An existing self
// entry keeps its ID and name; its birth date and life expectancy are taken
// from the settings. The receiver is not modified.
func (h *Household) WithSelfMember() *Household {
	out := *h
	self := FamilyMember{
		ID:        SelfMemberID,
		Name:      h.Settings.Name,
		Relation:  RelationSelf,
		BirthDate: h.Settings.BirthDate,
	}
	if h.Settings.LifeExpectancy > 0 {
		le := h.Settings.LifeExpectancy
		self.LifeExpectancy = &le
	}

	members := make([]FamilyMember, 0, len(h.FamilyMembers)+1)
	found := false
	for _, m := range h.FamilyMembers {
		if m.Relation != RelationSelf {
			members = append(members, m)
			continue
		}
		if found {
			continue
		}
		found = true
		if m.ID != "" {
			self.ID = m.ID
		}
		if m.Name != "" {
			self.Name = m.Name
		}
		members = append(members, self)
	}
	if !found {
		members = append([]FamilyMember{self}, members...)
	}
	out.FamilyMembers = members
	return &out
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
