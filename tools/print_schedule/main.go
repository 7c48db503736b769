// Command print_schedule prints a yearly mortgage amortization schedule.
//
//	go run ./tools/print_schedule -principal 3500 -rate 1.2 -term 420
package main

import (
	"flag"
	"fmt"

	"github.com/lifeplan/cashflow/internal/calculation"
	"github.com/lifeplan/cashflow/pkg/money"
)

func main() {
	principal := flag.Float64("principal", 3000, "loan amount")
	rate := flag.Float64("rate", 1.5, "annual interest rate in percent")
	term := flag.Int("term", 360, "number of monthly payments")
	firstMonths := flag.Int("first-months", 12, "months held in the first year")
	flag.Parse()

	balance := money.FromFloat(*principal)
	monthlyRate := money.MonthlyRate(*rate)
	payment := calculation.AmortizedPayment(balance, monthlyRate, *term)
	remaining := *term

	fmt.Printf("Monthly payment: %s\n\n", payment.StringFixed(4))
	fmt.Printf("%4s %12s %12s %12s %12s %5s\n", "Year", "Paid", "Interest", "Principal", "Balance", "Left")

	months := *firstMonths
	for year := 1; remaining > 0 && balance.IsPositive(); year++ {
		res := calculation.AmortizeMonths(balance, monthlyRate, payment, remaining, months)
		balance, remaining = res.Balance, res.Remaining
		fmt.Printf("%4d %12s %12s %12s %12s %5d\n", year,
			res.Paid.StringFixed(2), res.Interest.StringFixed(2), res.Principal.StringFixed(2),
			balance.StringFixed(2), remaining)
		months = 12
	}
}
