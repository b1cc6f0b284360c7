// Package calendar converts fractional (decimal) years into calendar-like
// labels for the ruler, the range indicator and the detail views.
//
// The conversion is an estimate: a year is twelve equal months and a month
// is 30.44 days. There is no leap-year or month-length logic, so a label such
// as "Feb 30, 2020" is possible near month boundaries.
package calendar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DaysPerMonth is the average month length used by ToCalendar.
const DaysPerMonth = 30.44

// BCESuffix is appended to labels for negative years.
const BCESuffix = " BCE"

// Precision selects how much of a date a label shows.
type Precision int

const (
	// Year renders "2020" or "500 BCE".
	Year Precision = iota
	// Month renders "Jul 2020".
	Month
	// Day renders "Jul 15, 2020".
	Day
)

var precisionNames = [...]string{
	Year:  "year",
	Month: "month",
	Day:   "day",
}

// String returns the lowercase name of the precision.
func (p Precision) String() string {
	if p >= 0 && int(p) < len(precisionNames) {
		return precisionNames[p]
	}
	return "unknown"
}

// ParsePrecision maps "year", "month" or "day" to a Precision.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "":
		return Year, nil
	case "month":
		return Month, nil
	case "day":
		return Day, nil
	default:
		return Year, fmt.Errorf("calendar: unknown precision %q", s)
	}
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthName returns the short English month name for any index. The index
// is reduced modulo 12 into [0,11] first, so negative values are safe.
func MonthName(i int) string {
	return monthNames[normalizeMonth(i)]
}

// Date is the approximate calendar position of a decimal year.
type Date struct {
	Year       int
	MonthIndex int // 0 = January
	Day        int // 1-31
}

// ToCalendar splits a decimal year into year, month and day.
//
// Year is floor(decimalYear). The fractional remainder f becomes f*12
// months; the whole part is the month index and the rest is scaled by
// DaysPerMonth into a 1-based day. For -2000.5 this yields year -2001,
// month Jul: halfway through the year that runs from -2001 to -2000.
func ToCalendar(decimalYear float64) Date {
	year := math.Floor(decimalYear)
	fraction := decimalYear - year

	totalMonths := fraction * 12
	monthIndex := math.Floor(totalMonths)
	day := math.Floor((totalMonths-monthIndex)*DaysPerMonth) + 1

	return Date{
		Year:       int(year),
		MonthIndex: normalizeMonth(int(monthIndex)),
		Day:        int(day),
	}
}

// Format renders decimalYear at the requested precision. Non-finite input
// renders as "?".
func Format(decimalYear float64, p Precision) string {
	if math.IsNaN(decimalYear) || math.IsInf(decimalYear, 0) {
		return "?"
	}

	d := ToCalendar(decimalYear)
	year := yearLabel(d.Year)

	switch p {
	case Day:
		return fmt.Sprintf("%s %d, %s", MonthName(d.MonthIndex), d.Day, year)
	case Month:
		return MonthName(d.MonthIndex) + " " + year
	default:
		return year
	}
}

// FormatYear renders a whole dataset year such as -24000 as "24000 BCE".
// Fractional input is floored first, so it agrees with Format at Year
// precision.
func FormatYear(year float64) string {
	if math.IsNaN(year) || math.IsInf(year, 0) {
		return "?"
	}
	return yearLabel(int(math.Floor(year)))
}

// FormatSpan renders "start – end" using FormatYear for both ends.
func FormatSpan(start, end float64) string {
	return FormatYear(start) + " – " + FormatYear(end)
}

func yearLabel(year int) string {
	if year < 0 {
		return strconv.Itoa(-year) + BCESuffix
	}
	return strconv.Itoa(year)
}

func normalizeMonth(i int) int {
	return ((i % 12) + 12) % 12
}
