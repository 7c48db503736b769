package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/money"
)

// foldAssets grows each asset by its return rate, then adds the annual
// contribution while the contribution window is open, then withdraws up to
// the configured amount once withdrawals have started. Asset values never
// go negative.
func (st *simulationState) foldAssets(rec *domain.YearRecord, age int) {
	for _, as := range st.assets {
		a := as.asset
		as.value = money.NonNegative(money.Settle(as.value.Mul(money.GrowthFactor(a.ReturnRate, 1))))

		contribution := money.FromFloat(a.AnnualContribution)
		if contribution.IsPositive() && a.ContributesAt(age) {
			as.value = as.value.Add(contribution)
			rec.AssetContribution = rec.AssetContribution.Add(contribution)
			rec.Details.Add(domain.CategoryAssetContribution, a.ID, a.Name, contribution)
		}

		if a.WithdrawsAt(age) {
			withdrawal := money.Min(money.NonNegative(money.FromFloat(a.WithdrawalAmount)), as.value)
			if withdrawal.IsPositive() {
				as.value = as.value.Sub(withdrawal)
				rec.AssetWithdrawal = rec.AssetWithdrawal.Add(withdrawal)
				rec.Details.Add(domain.CategoryAssetWithdrawal, a.ID, a.Name, withdrawal)
			}
		}

		rec.InvestmentBalance = rec.InvestmentBalance.Add(as.value)
	}
	rec.Expense.AssetContribution = rec.AssetContribution
}
