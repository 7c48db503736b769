package config

import (
	"fmt"

	"github.com/lifeplan/cashflow/internal/domain"
)

// Lint reports logical inconsistencies the projection tolerates silently,
// such as inverted age windows or unknown owners. Entities flagged here are
// simply never active during a projection.
func Lint(h *domain.Household) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if h.Settings.BirthDate == nil {
		warn("settings.birth_date is missing; no projection can be run")
	}
	if h.Settings.SimulationEndAge > 0 && h.Settings.LifeExpectancy > 0 &&
		h.Settings.SimulationEndAge > h.Settings.LifeExpectancy+20 {
		warn("settings.simulation_end_age %d is far beyond life_expectancy %d",
			h.Settings.SimulationEndAge, h.Settings.LifeExpectancy)
	}

	members := make(map[string]domain.FamilyMember, len(h.FamilyMembers))
	selfCount := 0
	for _, m := range h.FamilyMembers {
		members[m.ID] = m
		if m.Relation == domain.RelationSelf {
			selfCount++
			continue
		}
		if _, ok := m.KnownBirthYear(); !ok {
			warn("family member %q has no birth date or birth year; pensions and education it owns never apply", m.Name)
		}
	}
	if selfCount > 1 {
		warn("%d family members have relation self; only the first is used", selfCount)
	}

	owned := func(kind, name, ownerID string) {
		if ownerID == "" || ownerID == domain.SelfMemberID {
			return
		}
		if _, ok := members[ownerID]; !ok {
			warn("%s %q refers to unknown family member %q", kind, name, ownerID)
		}
	}
	window := func(kind, name string, start, end int) {
		if end < start {
			warn("%s %q: end_age %d is before start_age %d", kind, name, end, start)
		}
	}

	for _, in := range h.Incomes {
		window("income", in.Name, in.StartAge, in.EndAge)
	}
	for _, ex := range h.Expenses {
		window("expense", ex.Name, ex.StartAge, ex.EndAge)
	}
	for _, p := range h.Pensions {
		owned("pension", p.Name, p.OwnerID)
	}
	for _, ed := range h.Education {
		owned("education", ed.Name, ed.OwnerID)
		window("education", ed.Name, ed.StartAge, ed.EndAge)
	}
	for _, ins := range h.Insurances {
		window("insurance", ins.Name, ins.StartAge, ins.EndAge)
		if ins.PayoutAmount != 0 && ins.PayoutAge == nil {
			warn("insurance %q has a payout_amount but no payout_age", ins.Name)
		}
	}
	for _, hs := range h.Housings {
		if hs.EndAge != nil && *hs.EndAge < hs.StartAge {
			warn("housing %q: end_age %d is before start_age %d", hs.Name, *hs.EndAge, hs.StartAge)
		}
		if hs.Type == domain.HousingRental && hs.RenewalFee > 0 && hs.RenewalInterval == 0 {
			warn("housing %q has a renewal_fee but no renewal_interval", hs.Name)
		}
	}
	for _, a := range h.Assets {
		if a.WithdrawalAmount > 0 && a.WithdrawalAge == nil {
			warn("asset %q has a withdrawal_amount but no withdrawal_age", a.Name)
		}
	}
	for _, re := range h.RealEstates {
		if re.LoanAmount > 0 && re.LoanTerm == 0 {
			warn("real estate %q has a loan_amount but no loan_term", re.Name)
		}
		if re.LoanAmount > re.PurchasePrice {
			warn("real estate %q: loan_amount exceeds purchase_price", re.Name)
		}
		if re.SoldBeforePurchase() {
			warn("real estate %q is sold before it is purchased", re.Name)
		}
	}
	for _, l := range h.Loans {
		if l.MonthlyPayment*float64(l.RemainingPayments) < l.Balance {
			warn("loan %q: %d payments of %.2f do not repay the balance %.2f",
				l.Name, l.RemainingPayments, l.MonthlyPayment, l.Balance)
		}
	}

	return warnings
}
