package calculation

import (
	"math"

	"github.com/lifeplan/cashflow/pkg/money"
	"github.com/shopspring/decimal"
)

// AmortizationResult describes the installments applied to a balance.
type AmortizationResult struct {
	Paid         decimal.Decimal
	Interest     decimal.Decimal
	Principal    decimal.Decimal
	Balance      decimal.Decimal
	Remaining    int
	Installments int
}

// PaidOff reports whether the balance or the payment count is exhausted.
func (ar AmortizationResult) PaidOff() bool {
	return !ar.Balance.IsPositive() || ar.Remaining <= 0
}

// AmortizedPayment returns the fixed monthly payment that retires principal
// over n installments at monthlyRate:
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// With a zero rate the payment is straight-line, P / n.
func AmortizedPayment(principal, monthlyRate decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}
	if !monthlyRate.IsPositive() {
		return money.Settle(principal.Div(decimal.NewFromInt(int64(n))))
	}

	// (1+r)^n at large n explodes decimal precision; the factor is computed
	// once per mortgage so float precision is sufficient here.
	r := monthlyRate.InexactFloat64()
	growth := math.Pow(1+r, float64(n))
	factor := decimal.NewFromFloat(r * growth / (growth - 1))
	return money.Settle(principal.Mul(factor))
}

// AmortizeMonths applies up to months installments of payment against
// balance. Each installment pays interest of balance*monthlyRate first and
// the rest reduces principal; the last installment is shortened so the
// balance never goes negative. Amortization stops once the balance or the
// remaining installment count reaches zero.
func AmortizeMonths(balance, monthlyRate, payment decimal.Decimal, remaining, months int) AmortizationResult {
	res := AmortizationResult{
		Paid:      decimal.Zero,
		Interest:  decimal.Zero,
		Principal: decimal.Zero,
		Balance:   balance,
		Remaining: remaining,
	}
	if !payment.IsPositive() {
		return res
	}

	for i := 0; i < months; i++ {
		if !res.Balance.IsPositive() || res.Remaining <= 0 {
			break
		}
		interest := money.Settle(res.Balance.Mul(monthlyRate))
		principal := money.NonNegative(payment.Sub(interest))
		if principal.GreaterThan(res.Balance) {
			principal = res.Balance
		}

		res.Interest = res.Interest.Add(interest)
		res.Principal = res.Principal.Add(principal)
		res.Paid = res.Paid.Add(interest).Add(principal)
		res.Balance = res.Balance.Sub(principal)
		res.Remaining--
		res.Installments++
	}

	res.Balance = money.NonNegative(res.Balance)
	return res
}

// RepayLoan pays down a consumer loan for one simulated year. Interest is not
// modelled: every monthly payment reduces the balance in full.
func RepayLoan(balance, monthlyPayment decimal.Decimal, remaining int) AmortizationResult {
	return AmortizeMonths(balance, decimal.Zero, monthlyPayment, remaining, 12)
}
