package calculation

import (
	"github.com/lifeplan/cashflow/internal/domain"
	"github.com/lifeplan/cashflow/pkg/dateutil"
)

// owner resolves a pension or education owner. An empty ID, or the
// reserved self ID when no member carries it, is the self member.
func (st *simulationState) owner(id string) (domain.FamilyMember, bool) {
	if id == "" {
		return st.self, true
	}
	if m, ok := st.members[id]; ok {
		return m, true
	}
	if id == domain.SelfMemberID {
		return st.self, true
	}
	return domain.FamilyMember{}, false
}

// memberAge returns a member's age in the simulated year. The self member
// tracks the simulation age directly; everyone else is aged from birth year.
func memberAge(m domain.FamilyMember, age, year int) (int, bool) {
	if m.Relation == domain.RelationSelf {
		return age, true
	}
	birthYear, ok := m.KnownBirthYear()
	if !ok {
		return 0, false
	}
	return dateutil.AgeInYear(birthYear, year), true
}

// activeAt tests an inclusive [start, end] activation window.
func activeAt(start, end, age int) bool {
	return start <= age && age <= end
}
