package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/money"
	"github.com/shopspring/decimal"
)

type assetState struct {
	asset domain.Asset
	value decimal.Decimal
}

type loanState struct {
	loan      domain.Loan
	balance   decimal.Decimal
	payment   decimal.Decimal
	remaining int
	paidOff   bool
}

// housingLoanState tracks the simplified loan of an owned Housing. A loan
// without a starting balance is not tracked and is paid in full each year
// until the payoff age.
type housingLoanState struct {
	housing domain.Housing
	balance decimal.Decimal
	tracked bool
}

type mortgageState struct {
	property    domain.RealEstate
	monthlyRate decimal.Decimal
	payment     decimal.Decimal
	balance     decimal.Decimal
	remaining   int
}

// simulationState is the working copy of a Household threaded through every
// simulated year of one run.
type simulationState struct {
	household *domain.Household
	logger    Logger
	debug     bool

	cash         decimal.Decimal
	assets       []*assetState
	loans        []*loanState
	housingLoans []*housingLoanState // parallel to household.Housings
	mortgages    []*mortgageState

	members map[string]domain.FamilyMember
	self    domain.FamilyMember

	cashWentNegative bool
}

func newSimulationState(h *domain.Household, logger Logger, debug bool) *simulationState {
	st := &simulationState{
		household:    h,
		logger:       logger,
		debug:        debug,
		cash:         money.FromFloat(h.Settings.CurrentSavings),
		assets:       make([]*assetState, 0, len(h.Assets)),
		loans:        make([]*loanState, 0, len(h.Loans)),
		housingLoans: make([]*housingLoanState, len(h.Housings)),
		mortgages:    make([]*mortgageState, 0, len(h.RealEstates)),
		members:      make(map[string]domain.FamilyMember, len(h.FamilyMembers)),
		self:         domain.FamilyMember{ID: domain.SelfMemberID, Relation: domain.RelationSelf},
	}

	selfFound := false
	for _, m := range h.FamilyMembers {
		if m.ID != "" {
			st.members[m.ID] = m
		}
		if m.Relation == domain.RelationSelf && !selfFound {
			st.self = m
			selfFound = true
		}
	}
	if st.self.LifeExpectancy == nil && h.Settings.LifeExpectancy > 0 {
		le := h.Settings.LifeExpectancy
		st.self.LifeExpectancy = &le
	}

	for _, a := range h.Assets {
		st.assets = append(st.assets, &assetState{
			asset: a,
			value: money.NonNegative(money.FromFloat(a.CurrentValue)),
		})
	}

	for _, l := range h.Loans {
		balance := money.NonNegative(money.FromFloat(l.Balance))
		st.loans = append(st.loans, &loanState{
			loan:      l,
			balance:   balance,
			payment:   money.FromFloat(l.MonthlyPayment),
			remaining: l.RemainingPayments,
			paidOff:   !balance.IsPositive() || l.RemainingPayments <= 0,
		})
	}

	for i, hs := range h.Housings {
		if hs.Type != domain.HousingOwned || hs.LoanMonthlyPayment <= 0 {
			continue
		}
		balance := money.NonNegative(money.FromFloat(hs.LoanBalance))
		st.housingLoans[i] = &housingLoanState{
			housing: hs,
			balance: balance,
			tracked: balance.IsPositive(),
		}
	}

	for _, re := range h.RealEstates {
		principal := money.NonNegative(money.FromFloat(re.LoanAmount))
		rate := money.MonthlyRate(re.LoanRate)
		ms := &mortgageState{
			property:    re,
			monthlyRate: rate,
			balance:     principal,
			remaining:   re.LoanTerm,
		}
		ms.payment = AmortizedPayment(principal, rate, re.LoanTerm)
		st.mortgages = append(st.mortgages, ms)
	}

	return st
}
