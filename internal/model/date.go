package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MinYear is the earliest year accepted by Date.IsValid.
	MinYear = 1900

	quadrennial      = 4
	centennial       = 100
	quatercentennial = 400
)

// Date is a calendar date without a time component.
//
// Date is a plain value: construction never validates it. Callers that
// need a real calendar date check IsValid before using it, which is how
// the command dispatcher rejects bad release and birth dates.
//
// Example:
//
//	d := Date{Year: 2000, Month: 2, Day: 29}
//	d.IsValid() // true, 2000 is a leap year
//	d.String()  // "02/29/2000"
type Date struct {
	Year  int
	Month int // 1-12
	Day   int
}

// NewDate creates a Date from its components.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date written as m/d/yyyy.
//
// Only the syntax is checked here. A result such as 2/30/2001 parses
// fine and is rejected later by IsValid.
//
// Example:
//
//	d, err := ParseDate("7/4/1976")
//	// d = Date{Year: 1976, Month: 7, Day: 4}
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: date %q is not m/d/yyyy", ErrInvalidArgument, s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("%w: date %q is not m/d/yyyy", ErrInvalidArgument, s)
		}
		nums[i] = n
	}

	return Date{Year: nums[2], Month: nums[0], Day: nums[1]}, nil
}

// IsValid reports whether d is a real calendar date between 1900 and the
// current year.
func (d Date) IsValid() bool {
	return d.IsValidAt(time.Now())
}

// IsValidAt is IsValid with an explicit clock; the upper year bound is
// now's year.
func (d Date) IsValidAt(now time.Time) bool {
	if d.Year < MinYear || d.Year > now.Year() {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day > 0 && d.Day <= daysInMonth(d.Year, d.Month)
}

// IsZero reports whether d is the zero Date, as carried by lookup keys.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare orders dates by year, then month, then day. It returns a
// negative number, zero or a positive number like strings.Compare.
func (d Date) Compare(other Date) int {
	if d.Year != other.Year {
		return d.Year - other.Year
	}
	if d.Month != other.Month {
		return d.Month - other.Month
	}
	return d.Day - other.Day
}

// String formats the date as MM/DD/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.Month, d.Day, d.Year)
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%quadrennial == 0 && year%centennial != 0) || year%quatercentennial == 0
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
