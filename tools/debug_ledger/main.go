package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lifeplan/cashflow/internal/calculation"
	"github.com/lifeplan/cashflow/internal/config"
	"github.com/lifeplan/cashflow/internal/domain"
)

func main() {
	file := flag.String("config", "example_household.yaml", "household snapshot")
	age := flag.Int("age", 0, "age to inspect")
	now := flag.String("now", "", "YYYY-MM-DD date treated as today")
	flag.Parse()

	household, err := config.NewInputParser().LoadFromFile(*file)
	if err != nil {
		log.Fatal(err)
	}

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(calculation.NewWriterLogger(os.Stderr, true))
	if *now != "" {
		t, err := time.Parse("2006-01-02", *now)
		if err != nil {
			log.Fatal(err)
		}
		engine.SetClock(calculation.FixedClock(t))
	}

	records := engine.Project(household)
	rec, ok := calculation.FindRecord(records, *age)
	if !ok {
		log.Fatalf("age %d is outside the projected range", *age)
	}

	fmt.Printf("=== AGE %d (%d) ===\n", rec.Age, rec.Year)
	for _, cat := range domain.Categories() {
		items := rec.Details[cat]
		if len(items) == 0 {
			continue
		}
		fmt.Printf("%s  total=%s\n", cat, rec.Details.Total(cat).StringFixed(2))
		for _, item := range items {
			fmt.Printf("  %-30s %14s\n", item.Label, item.Amount.StringFixed(2))
		}
	}
	fmt.Println("liabilities:")
	for _, l := range rec.Liabilities {
		fmt.Printf("  %-30s %14s  %d payments left\n", l.Name, l.Remaining.StringFixed(2), l.RemainingPayments)
	}
	fmt.Printf("balance=%s cash=%s investments=%s real_estate=%s deposits=%s net_worth=%s\n",
		rec.Balance.StringFixed(2), rec.CashBalance.StringFixed(2), rec.InvestmentBalance.StringFixed(2),
		rec.RealEstateBalance.StringFixed(2), rec.DepositBalance.StringFixed(2), rec.TotalNetWorth.StringFixed(2))
}
