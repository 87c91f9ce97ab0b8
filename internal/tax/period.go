package tax

import (
	"fmt"
	"strconv"
	"time"
)

// Period is an AEAT settlement period code: quarterly "1T".."4T",
// monthly "01".."12", or annual "0A".
type Period string

// PeriodAnnual covers the whole fiscal year.
const PeriodAnnual Period = "0A"

// Range resolves the period to its inclusive date range within a
// fiscal year.
func (p Period) Range(year int) (from, to time.Time, err error) {
	s := string(p)
	if len(s) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q", p)
	}

	startMonth, months := 0, 0
	switch {
	case p == PeriodAnnual:
		startMonth, months = 1, 12
	case s[1] == 'T':
		q := int(s[0] - '0')
		if q < 1 || q > 4 {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid quarter %q", p)
		}
		startMonth, months = (q-1)*3+1, 3
	default:
		m, convErr := strconv.Atoi(s)
		if convErr != nil || m < 1 || m > 12 {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q", p)
		}
		startMonth, months = m, 1
	}

	from = time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, months, 0).AddDate(0, 0, -1)
	return from, to, nil
}

// Valid reports whether the period code is recognized.
func (p Period) Valid() bool {
	_, _, err := p.Range(2000)
	return err == nil
}
