package domain

import (
	"github.com/lifeplan/cashflow/pkg/money"
	"github.com/shopspring/decimal"
)

// Category names a fixed drill-down bucket of a YearRecord.
type Category string

const (
	CategoryIncome            Category = "income"
	CategoryPension           Category = "pension"
	CategoryLiving            Category = "living"
	CategoryEducation         Category = "education"
	CategoryHousing           Category = "housing"
	CategoryInsurance         Category = "insurance"
	CategoryLoan              Category = "loan"
	CategoryRealEstate        Category = "real_estate"
	CategoryEvent             Category = "event"
	CategoryAssetContribution Category = "asset_contribution"
	CategoryAssetWithdrawal   Category = "asset_withdrawal"
)

// Categories lists every breakdown category in display order.
func Categories() []Category {
	return []Category{
		CategoryIncome,
		CategoryPension,
		CategoryLiving,
		CategoryEducation,
		CategoryHousing,
		CategoryInsurance,
		CategoryLoan,
		CategoryRealEstate,
		CategoryEvent,
		CategoryAssetContribution,
		CategoryAssetWithdrawal,
	}
}

// LineItem is one labelled contribution to a category.
type LineItem struct {
	ID     string          `json:"id,omitempty"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown maps every Category to its line items for one year.
type Breakdown map[Category][]LineItem

// NewBreakdown returns a Breakdown holding every category.
func NewBreakdown() Breakdown {
	b := make(Breakdown, len(Categories()))
	for _, c := range Categories() {
		b[c] = []LineItem{}
	}
	return b
}

// Add appends a line item to category c.
func (b Breakdown) Add(c Category, id, label string, amount decimal.Decimal) {
	b[c] = append(b[c], LineItem{ID: id, Label: label, Amount: amount})
}

// Total sums the line items of category c.
func (b Breakdown) Total(c Category) decimal.Decimal {
	total := decimal.Zero
	for _, item := range b[c] {
		total = total.Add(item.Amount)
	}
	return total
}

// LiabilityKind identifies which amortization path a balance follows.
type LiabilityKind string

const (
	LiabilityLoan        LiabilityKind = "loan"
	LiabilityHousingLoan LiabilityKind = "housing_loan"
	LiabilityMortgage    LiabilityKind = "mortgage"
)

// LiabilityBalance is a remaining loan or mortgage balance at year end.
type LiabilityBalance struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Kind              LiabilityKind   `json:"kind"`
	Remaining         decimal.Decimal `json:"remaining"`
	RemainingPayments int             `json:"remaining_payments"`
}

// ExpenseBreakdown holds the per-category expense subtotals for a year.
type ExpenseBreakdown struct {
	Living            decimal.Decimal `json:"living"`
	Education         decimal.Decimal `json:"education"`
	Housing           decimal.Decimal `json:"housing"`
	Insurance         decimal.Decimal `json:"insurance"`
	LoanRepayment     decimal.Decimal `json:"loan_repayment"`
	RealEstate        decimal.Decimal `json:"real_estate"`
	AssetContribution decimal.Decimal `json:"asset_contribution"`
}

// Steady returns the recurring expense total, excluding asset contributions.
func (e ExpenseBreakdown) Steady() decimal.Decimal {
	return e.Living.Add(e.Education).Add(e.Housing).Add(e.Insurance).
		Add(e.LoanRepayment).Add(e.RealEstate)
}

// YearRecord is one row of the projected ledger. Values are unrounded;
// use Rounded for presentation.
type YearRecord struct {
	Age  int `json:"age"`
	Year int `json:"year"`

	Income       decimal.Decimal  `json:"income"`
	Expense      ExpenseBreakdown `json:"expense"`
	TotalExpense decimal.Decimal  `json:"total_expense"`

	EventCost             decimal.Decimal `json:"event_cost"`
	Events                []string        `json:"events"`
	RealEstateEventIncome decimal.Decimal `json:"real_estate_event_income"`
	RealEstateEventCost   decimal.Decimal `json:"real_estate_event_cost"`

	AssetContribution decimal.Decimal `json:"asset_contribution"`
	AssetWithdrawal   decimal.Decimal `json:"asset_withdrawal"`

	Balance           decimal.Decimal `json:"balance"`
	CashBalance       decimal.Decimal `json:"cash_balance"`
	InvestmentBalance decimal.Decimal `json:"investment_balance"`
	RealEstateBalance decimal.Decimal `json:"real_estate_balance"`
	DepositBalance    decimal.Decimal `json:"deposit_balance"`
	TotalNetWorth     decimal.Decimal `json:"total_net_worth"`

	Details     Breakdown          `json:"details"`
	Liabilities []LiabilityBalance `json:"liabilities"`
}

// NetWorth recomputes the grand total from its components.
func (yr *YearRecord) NetWorth() decimal.Decimal {
	return yr.CashBalance.Add(yr.InvestmentBalance).Add(yr.RealEstateBalance).Add(yr.DepositBalance)
}

// Rounded returns a presentation copy with every money figure rounded to
// whole units. The receiver is left unrounded.
func (yr YearRecord) Rounded() YearRecord {
	r := money.RoundUnit

	out := yr
	out.Income = r(yr.Income)
	out.Expense = ExpenseBreakdown{
		Living:            r(yr.Expense.Living),
		Education:         r(yr.Expense.Education),
		Housing:           r(yr.Expense.Housing),
		Insurance:         r(yr.Expense.Insurance),
		LoanRepayment:     r(yr.Expense.LoanRepayment),
		RealEstate:        r(yr.Expense.RealEstate),
		AssetContribution: r(yr.Expense.AssetContribution),
	}
	out.TotalExpense = r(yr.TotalExpense)
	out.EventCost = r(yr.EventCost)
	out.RealEstateEventIncome = r(yr.RealEstateEventIncome)
	out.RealEstateEventCost = r(yr.RealEstateEventCost)
	out.AssetContribution = r(yr.AssetContribution)
	out.AssetWithdrawal = r(yr.AssetWithdrawal)
	out.Balance = r(yr.Balance)
	out.CashBalance = r(yr.CashBalance)
	out.InvestmentBalance = r(yr.InvestmentBalance)
	out.RealEstateBalance = r(yr.RealEstateBalance)
	out.DepositBalance = r(yr.DepositBalance)
	out.TotalNetWorth = r(yr.TotalNetWorth)

	out.Events = append([]string(nil), yr.Events...)
	out.Details = make(Breakdown, len(yr.Details))
	for c, items := range yr.Details {
		rounded := make([]LineItem, len(items))
		for i, item := range items {
			rounded[i] = LineItem{ID: item.ID, Label: item.Label, Amount: r(item.Amount)}
		}
		out.Details[c] = rounded
	}
	out.Liabilities = make([]LiabilityBalance, len(yr.Liabilities))
	for i, l := range yr.Liabilities {
		l.Remaining = r(l.Remaining)
		out.Liabilities[i] = l
	}
	return out
}

// Summary condenses a ledger into headline figures.
type Summary struct {
	StartAge             int             `json:"start_age"`
	EndAge               int             `json:"end_age"`
	FirstNegativeCashAge *int            `json:"first_negative_cash_age,omitempty"`
	AssetsDepletedAge    *int            `json:"assets_depleted_age,omitempty"`
	FinalNetWorth        decimal.Decimal `json:"final_net_worth"`
	PeakNetWorth         decimal.Decimal `json:"peak_net_worth"`
	PeakNetWorthAge      int             `json:"peak_net_worth_age"`
	TotalIncome          decimal.Decimal `json:"total_income"`
	TotalExpense         decimal.Decimal `json:"total_expense"`
}

// ProjectionResult is a ledger together with its summary.
type ProjectionResult struct {
	Records []YearRecord `json:"records"`
	Summary Summary      `json:"summary"`
}

// IsEmpty reports whether the projection could not run (for example because
// no birth date was supplied).
func (pr *ProjectionResult) IsEmpty() bool {
	return pr == nil || len(pr.Records) == 0
}
