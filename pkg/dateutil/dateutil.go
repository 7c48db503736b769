package dateutil

import (
	"time"
)

// MonthsPerYear is the number of monthly installments in a simulated year.
const MonthsPerYear = 12

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AgeInYear returns the age a person born in birthYear reaches during year.
func AgeInYear(birthYear, year int) int {
	return year - birthYear
}

// YearAtAge returns the calendar year in which someone currently aged
// currentAge (in currentYear) reaches age.
func YearAtAge(currentYear, currentAge, age int) int {
	return currentYear + (age - currentAge)
}

// MonthsOwnedInYear returns how many months of year an item acquired at
// from and disposed of at to is held. A nil bound means the item was held
// before (or after) the year. The acquisition month counts as held, and so
// does the disposal month.
func MonthsOwnedInYear(year int, from, to *time.Time) int {
	first, last := 1, MonthsPerYear
	if from != nil {
		switch {
		case from.Year() > year:
			return 0
		case from.Year() == year:
			first = int(from.Month())
		}
	}
	if to != nil {
		switch {
		case to.Year() < year:
			return 0
		case to.Year() == year:
			last = int(to.Month())
		}
	}
	if last < first {
		return 0
	}
	return last - first + 1
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
